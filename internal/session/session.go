// Package session pairs two classified roots for comparison. A session is
// the unit the UI layer works on: a name, a left entry and a right entry
// whose kinds have been verified comparable at construction.
package session

import (
	"dircomp/internal/classify"
	serr "dircomp/internal/errors"
	"dircomp/internal/tree"
	"dircomp/pkg/types"
)

// ErrIncomparable is returned when the two roots cannot be paired.
var ErrIncomparable = serr.New("entries are not comparable")

// DefaultName names sessions created without an explicit one.
const DefaultName = "unnamed"

// Session holds the two sides of a comparison.
type Session struct {
	Name  string
	Left  types.Entry
	Right types.Entry

	engine *classify.Engine
}

// New creates a session over two classified entries. The entries must be
// comparable under the engine's policy: both directories, both files of the
// same media type, or symlinks resolving to either. Fails with
// ErrIncomparable otherwise.
func New(name string, left, right types.Entry, engine *classify.Engine) (*Session, error) {
	if engine == nil {
		engine = classify.New()
	}
	if !engine.Comparable(left, right) {
		return nil, serr.Wrapf(ErrIncomparable, "%s vs %s", left.Kind, right.Kind)
	}
	if name == "" {
		name = DefaultName
	}
	return &Session{
		Name:   name,
		Left:   left,
		Right:  right,
		engine: engine,
	}, nil
}

// Type returns the shared kind of the session, taken from the left side.
func (s *Session) Type() types.Kind {
	return s.Left.Kind
}

// Flatten produces the flattened views of both sides of a directory
// session. Fails for non-directory sessions and propagates any traversal
// failure of either side.
func (s *Session) Flatten(opts ...tree.Option) (left, right *types.FlattenedTree, err error) {
	if !s.Left.IsDir() || !s.Right.IsDir() {
		return nil, nil, serr.Newf("session %q does not compare directories", s.Name)
	}

	opts = append([]tree.Option{tree.WithEngine(s.engine)}, opts...)
	walker := tree.New(opts...)

	left, err = walker.Flatten(s.Left.Path)
	if err != nil {
		return nil, nil, err
	}
	right, err = walker.Flatten(s.Right.Path)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
