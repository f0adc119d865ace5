// Package types holds the shared vocabulary of the comparison core: media
// types, entry kinds, classified entries and flattened subtrees. Everything
// here is an immutable value snapshot; the packages under internal/ produce
// these values, consumers (UI, sessions) only read them.
package types

import (
	"fmt"
	"os"
)

// Kind is the logical type of a filesystem entry. The set of kinds is
// closed: exactly the four variants below implement it, and the unexported
// marker method keeps anything outside this package from adding a fifth.
// Whatever the filesystem reports that is none of directory, regular file
// or symlink is captured as KindInvalid, never as a new shape.
type Kind interface {
	// Mime returns the media type identifier representing this kind.
	Mime() string
	fmt.Stringer

	kind()
}

// KindDirectory marks a directory entry.
type KindDirectory struct{}

// KindFile marks a regular file together with its detected media type.
type KindFile struct {
	Media MediaType
}

// KindSymLink marks a symbolic link together with its immediate (one hop,
// unresolved) target path.
type KindSymLink struct {
	Target string
}

// KindInvalid marks an entry that exists in a directory listing but could
// not be classified. Cause names the underlying failure.
type KindInvalid struct {
	Cause error
}

func (KindDirectory) kind() {}
func (KindFile) kind()      {}
func (KindSymLink) kind()   {}
func (KindInvalid) kind()   {}

func (KindDirectory) Mime() string { return MimeDirectory }

func (k KindFile) Mime() string {
	if k.Media.MIME == "" {
		return MimeUnknown
	}
	return k.Media.MIME
}

func (KindSymLink) Mime() string { return MimeSymlink }

// Mime returns the empty string: an invalid entry has no media type, not
// even a sentinel one, so it can never collide with a classified entry.
func (KindInvalid) Mime() string { return "" }

func (KindDirectory) String() string { return "Directory" }

func (k KindFile) String() string { return fmt.Sprintf("File(%s)", k.Mime()) }

func (k KindSymLink) String() string { return fmt.Sprintf("SymLink(%s)", k.Target) }

func (k KindInvalid) String() string { return fmt.Sprintf("Invalid(%v)", k.Cause) }

// Entry is an immutable snapshot of one filesystem object at classification
// time. The kind is determined once, from a single lstat-style read, so a
// symlink is always represented as a symlink and never silently as its
// target. The filesystem changing afterwards does not invalidate the value.
type Entry struct {
	// Name is the base name, the last path component.
	Name string
	// Path is the entry's path as given to the classifier.
	Path string
	// Kind is the classified logical type.
	Kind Kind
	// Info is the raw stat metadata snapshot. Nil when Kind is KindInvalid.
	Info os.FileInfo
}

// Mime returns the media type identifier of the entry's kind.
func (e Entry) Mime() string { return e.Kind.Mime() }

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	_, ok := e.Kind.(KindDirectory)
	return ok
}

// IsFile reports whether the entry is a regular file.
func (e Entry) IsFile() bool {
	_, ok := e.Kind.(KindFile)
	return ok
}

// IsLink reports whether the entry is a symbolic link.
func (e Entry) IsLink() bool {
	_, ok := e.Kind.(KindSymLink)
	return ok
}

// IsInvalid reports whether the entry could not be classified.
func (e Entry) IsInvalid() bool {
	_, ok := e.Kind.(KindInvalid)
	return ok
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}
