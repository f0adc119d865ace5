// Package classify turns filesystem paths into typed entries. It is the
// leaf component of the comparison core: every other part of the system
// gets its type information from here and never re-derives it.
package classify

import (
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"dircomp/internal/config"
	serr "dircomp/internal/errors"
	log "dircomp/internal/log"
	"dircomp/pkg/types"
)

// maxLinkHops bounds transitive symlink resolution. 40 matches the loop
// limit common Unix kernels apply before returning ELOOP.
const maxLinkHops = 40

// Engine classifies filesystem entries and resolves symlinks.
type Engine struct {
	logger log.Logging
}

// New creates a classification engine with default settings.
func New() *Engine {
	return &Engine{logger: log.LogWithFields()}
}

// NewWithConfig creates a classification engine honoring config settings.
// The sniff limit caps how many leading bytes the media type detector reads.
func NewWithConfig(cfg *config.Config) *Engine {
	if cfg.Scan.SniffLimit > 0 {
		mimetype.SetLimit(uint32(cfg.Scan.SniffLimit))
	}
	return New()
}

// Classify produces the typed entry for path. It never fails: any error
// while reading metadata, the link target or the leading file bytes is
// captured inside the entry as KindInvalid, so callers can treat every path
// uniformly. The metadata read is lstat-style, so a symlink classifies as a
// symlink, never as its target.
func (e *Engine) Classify(path string) types.Entry {
	entry := types.Entry{
		Name: filepath.Base(path),
		Path: path,
	}

	fi, err := os.Lstat(path)
	if err != nil {
		entry.Kind = types.KindInvalid{
			Cause: serr.NewEntryError("cannot stat entry", path, serr.CategorizeOsError(err), err),
		}
		return entry
	}

	switch mode := fi.Mode(); {
	case mode.IsDir():
		entry.Kind = types.KindDirectory{}

	case mode.IsRegular():
		media, err := detectMediaType(path)
		if err != nil {
			e.logger.With(log.F("path", path), log.F("error", err)).Debug("media type detection failed")
			entry.Kind = types.KindInvalid{
				Cause: serr.NewEntryError("cannot detect media type", path, serr.CategorizeOsError(err), err),
			}
			return entry
		}
		entry.Kind = types.KindFile{Media: media}

	case mode&os.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			entry.Kind = types.KindInvalid{
				Cause: serr.NewEntryError("cannot read link target", path, serr.CategorizeOsError(err), err),
			}
			return entry
		}
		entry.Kind = types.KindSymLink{Target: target}

	default:
		// Sockets, device nodes, FIFOs and whatever else the filesystem
		// reports stay out of the closed kind set.
		entry.Kind = types.KindInvalid{
			Cause: serr.NewEntryError("unsupported object type", path, serr.UnsupportedObjectType, nil),
		}
		return entry
	}

	entry.Info = fi
	return entry
}

// detectMediaType sniffs the leading bytes of the file at path. Detection
// itself cannot miss: unmatched content comes back as the generic binary
// type. Only opening or reading the file can fail.
func detectMediaType(path string) (types.MediaType, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return types.MediaType{}, err
	}
	return types.MediaType{MIME: mt.String(), Extension: mt.Extension()}, nil
}

// Resolve follows a symlink entry transitively until a non-link object is
// reached and returns that object re-classified. Directory, file and
// invalid entries resolve to themselves.
//
// Relative link targets are interpreted against the directory containing
// the link that names them. The chain is bounded at maxLinkHops; exceeding
// the bound fails with SymlinkLoop, a missing or unreadable target with
// BrokenLink.
func (e *Engine) Resolve(entry types.Entry) (types.Entry, error) {
	link, ok := entry.Kind.(types.KindSymLink)
	if !ok {
		return entry, nil
	}

	current := entry.Path
	target := link.Target
	for hops := 0; hops < maxLinkHops; hops++ {
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}

		fi, err := os.Lstat(target)
		if err != nil {
			return types.Entry{}, serr.NewEntryError("link target unreachable", target, serr.BrokenLink, err)
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			return e.Classify(target), nil
		}

		next, err := os.Readlink(target)
		if err != nil {
			return types.Entry{}, serr.NewEntryError("cannot read link target", target, serr.BrokenLink, err)
		}
		current = target
		target = next
	}

	return types.Entry{}, serr.NewEntryError("symlink chain exceeds hop limit", entry.Path, serr.SymlinkLoop, nil)
}

// KindComparable reports whether two already-resolved kinds may be paired
// as the same slot across two trees under comparison: directories always
// pair with directories, files pair iff their media types are equal, and
// nothing else pairs. Symlink and invalid kinds are never comparable here;
// links must be resolved first (see Comparable).
func KindComparable(a, b types.Kind) bool {
	switch ak := a.(type) {
	case types.KindDirectory:
		_, ok := b.(types.KindDirectory)
		return ok
	case types.KindFile:
		bk, ok := b.(types.KindFile)
		return ok && ak.Mime() == bk.Mime()
	default:
		return false
	}
}

// Comparable reports whether the two entries may be paired for comparison.
// Symlink operands are resolved first, so a link ultimately designating a
// directory is comparable with a directory. An entry whose resolution fails
// (broken or cyclic link) is not comparable to anything, including another
// broken link.
func (e *Engine) Comparable(a, b types.Entry) bool {
	ra, err := e.Resolve(a)
	if err != nil {
		e.logger.With(log.F("path", a.Path), log.F("error", err)).Debug("resolution failed, not comparable")
		return false
	}
	rb, err := e.Resolve(b)
	if err != nil {
		e.logger.With(log.F("path", b.Path), log.F("error", err)).Debug("resolution failed, not comparable")
		return false
	}
	return KindComparable(ra.Kind, rb.Kind)
}
