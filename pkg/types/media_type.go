package types

// Reserved media type identifiers. Directories and symlinks are not
// content-sniffable, so they carry fixed inode types; files whose leading
// bytes match no known signature fall back to the generic binary type.
const (
	MimeDirectory = "inode/directory"
	MimeSymlink   = "inode/symlink"
	MimeUnknown   = "application/octet-stream"
)

// MediaType is a canonical content classification for a filesystem entry.
// Two media types are equal iff their MIME identifier strings are equal;
// the extension hint is informational only and never participates in
// equality.
type MediaType struct {
	MIME      string `json:"mime"`
	Extension string `json:"extension,omitempty"`
}

// Sentinel media types shared process-wide. Read-only by convention.
var (
	MediaTypeDirectory = MediaType{MIME: MimeDirectory}
	MediaTypeSymlink   = MediaType{MIME: MimeSymlink}
	MediaTypeUnknown   = MediaType{MIME: MimeUnknown}
)

// Equal reports whether the two media types share a canonical identifier.
func (m MediaType) Equal(other MediaType) bool {
	return m.MIME == other.MIME
}

// IsUnknown reports whether the media type is the undetected-content
// sentinel.
func (m MediaType) IsUnknown() bool {
	return m.MIME == "" || m.MIME == MimeUnknown
}

func (m MediaType) String() string {
	if m.MIME == "" {
		return MimeUnknown
	}
	return m.MIME
}
