package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serr "dircomp/internal/errors"
	"dircomp/pkg/testutils"
	"dircomp/pkg/types"
)

// flatNames extracts the (depth, name) shape of a flattened tree.
func flatNames(flat *types.FlattenedTree) [][2]interface{} {
	out := make([][2]interface{}, 0, len(flat.Items))
	for _, item := range flat.Items {
		out = append(out, [2]interface{}{item.Depth, item.Entry.Name})
	}
	return out
}

func TestFlattenByteOrder(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"b": "x",
		"a": "x",
		"C": "x",
	})

	flat, err := Flatten(dir)
	require.NoError(t, err)

	// Bytewise, not case-insensitive: uppercase sorts before lowercase.
	assert.Equal(t, [][2]interface{}{
		{0, "C"},
		{0, "a"},
		{0, "b"},
	}, flatNames(flat))

	// Repeated runs produce the identical sequence.
	again, err := Flatten(dir)
	require.NoError(t, err)
	assert.Equal(t, flatNames(flat), flatNames(again))
}

func TestFlattenDepths(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTree(t, dir, map[string]string{
		"alpha/inner/deep.txt": "1",
		"alpha/mid.txt":        "2",
		"beta.txt":             "3",
	})

	flat, err := Flatten(dir)
	require.NoError(t, err)

	// Pre-order with subdirectory contents interleaved immediately after
	// their parent; depth steps by exactly one.
	assert.Equal(t, [][2]interface{}{
		{0, "alpha"},
		{1, "inner"},
		{2, "deep.txt"},
		{1, "mid.txt"},
		{0, "beta.txt"},
	}, flatNames(flat))
}

func TestFlattenIdenticalTreesMatch(t *testing.T) {
	shape := map[string]string{
		"sub/one.txt": "same",
		"sub/two.txt": "same",
		"top.txt":     "same",
	}
	left := t.TempDir()
	right := t.TempDir()
	testutils.CreateTree(t, left, shape)
	testutils.CreateTree(t, right, shape)

	flatLeft, err := Flatten(left)
	require.NoError(t, err)
	flatRight, err := Flatten(right)
	require.NoError(t, err)

	// Structurally identical trees flatten to the same (depth, name)
	// sequence regardless of where they are rooted.
	assert.Equal(t, flatNames(flatLeft), flatNames(flatRight))
}

func TestFlattenNeverExpandsSymlinkedDirectories(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTree(t, dir, map[string]string{
		"real/file.txt": "x",
	})
	testutils.MakeSymlink(t, "real", filepath.Join(dir, "linked"))

	flat, err := Flatten(dir)
	require.NoError(t, err)

	assert.Equal(t, [][2]interface{}{
		{0, "linked"},
		{0, "real"},
		{1, "file.txt"},
	}, flatNames(flat))

	linked := flat.Items[0].Entry
	assert.True(t, linked.IsLink())
}

func TestFlattenCyclicSymlinkStaysLeaf(t *testing.T) {
	dir := t.TempDir()
	// A link pointing back at the root would recurse forever if followed.
	testutils.MakeSymlink(t, dir, filepath.Join(dir, "self"))

	flat, err := Flatten(dir)
	require.NoError(t, err)
	require.Equal(t, 1, flat.Len())
	assert.True(t, flat.Items[0].Entry.IsLink())
}

func TestFlattenUnreadableChildDegrades(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a.txt":      "readable",
		"locked.txt": "unreadable",
		"z.txt":      "readable",
	})
	testutils.DenyAccess(t, filepath.Join(dir, "locked.txt"))

	flat, err := Flatten(dir)
	require.NoError(t, err)
	require.Equal(t, 3, flat.Len())

	assert.True(t, flat.Items[0].Entry.IsFile())
	assert.True(t, flat.Items[1].Entry.IsInvalid(), "unreadable child becomes an Invalid leaf")
	assert.True(t, flat.Items[2].Entry.IsFile())
}

func TestFlattenRootNotADirectory(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"file.txt": "x"})

	_, err := Flatten(filepath.Join(dir, "file.txt"))
	require.Error(t, err)
	assert.True(t, serr.IsRootUnreadable(err))

	_, err = Flatten(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, serr.IsRootUnreadable(err))
}

func TestFlattenUnlistableDirectoryAborts(t *testing.T) {
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.MkdirAll(locked, 0755))
	testutils.DenyAccess(t, locked)

	_, err := Flatten(dir)
	require.Error(t, err)
	assert.True(t, serr.IsRootUnreadable(err))
}

func TestFlattenIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTree(t, dir, map[string]string{
		".git/HEAD": "ref",
		"a.txt":     "keep",
		"b.tmp":     "skip",
	})

	walker := New(WithIgnore(glob.MustCompile(".git"), glob.MustCompile("*.tmp")))
	flat, err := walker.Flatten(dir)
	require.NoError(t, err)

	assert.Equal(t, [][2]interface{}{
		{0, "a.txt"},
	}, flatNames(flat))
}

func TestFlattenEmptyDirectory(t *testing.T) {
	flat, err := Flatten(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, flat.Len())
}
