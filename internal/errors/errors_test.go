package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryErrorMessage(t *testing.T) {
	inner := stderrors.New("underlying failure")
	err := NewEntryError("cannot stat entry", "/some/path", NotFound, inner)

	assert.Contains(t, err.Error(), "cannot stat entry")
	assert.Contains(t, err.Error(), "/some/path")
	assert.Contains(t, err.Error(), "underlying failure")
	assert.Equal(t, "/some/path", err.Path())
	assert.Equal(t, NotFound, err.Kind())
	assert.Equal(t, inner, Unwrap(err))
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		pred func(error) bool
	}{
		{NotFound, IsNotFound},
		{PermissionDenied, IsPermissionDenied},
		{UnsupportedObjectType, IsUnsupportedObjectType},
		{BrokenLink, IsBrokenLink},
		{SymlinkLoop, IsSymlinkLoop},
		{RootUnreadable, IsRootUnreadable},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			err := NewEntryError("boom", "/p", tc.kind, nil)
			assert.True(t, tc.pred(err))
			// A predicate must match only its own kind.
			other := NewEntryError("boom", "/p", Unknown, nil)
			assert.False(t, tc.pred(other))
			assert.False(t, tc.pred(stderrors.New("plain")))
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := NewEntryError("cannot list directory", "/root/dir", RootUnreadable, nil)
	wrapped := Wrap(err, "flatten failed")

	assert.True(t, IsRootUnreadable(wrapped))
	assert.Equal(t, RootUnreadable, KindOf(wrapped))
}

func TestCategorizeOsError(t *testing.T) {
	assert.Equal(t, NotFound, CategorizeOsError(os.ErrNotExist))
	assert.Equal(t, PermissionDenied, CategorizeOsError(os.ErrPermission))
	assert.Equal(t, IoError, CategorizeOsError(stderrors.New("disk on fire")))
	assert.Equal(t, Unknown, CategorizeOsError(nil))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid ignore pattern", "[", InvalidConfig, nil)
	assert.True(t, IsInvalidConfig(err))
	assert.Equal(t, "[", err.Param())
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "broken-link", BrokenLink.String())
	assert.Equal(t, "symlink-loop", SymlinkLoop.String())
	assert.Equal(t, "unknown", ErrorKind(999).String())
}
