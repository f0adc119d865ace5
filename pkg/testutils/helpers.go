package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTree creates a nested fixture tree under dir. Keys are
// slash-separated relative paths; a value is the file content, and keys
// ending in "/" create empty directories.
func CreateTree(t *testing.T, dir string, entries map[string]string) {
	t.Helper()
	for rel, content := range entries {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// MakeSymlink creates a symlink at link pointing to target, skipping the
// test on platforms where symlink creation is not permitted.
func MakeSymlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}
}

// DenyAccess removes all permission bits from path and restores them during
// cleanup so the temp dir can still be removed. Skips the test when running
// as root, which bypasses permission checks entirely.
func DenyAccess(t *testing.T, path string) {
	t.Helper()
	SkipIfRoot(t)
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(path, 0000))
	t.Cleanup(func() {
		_ = os.Chmod(path, info.Mode().Perm())
	})
}

// SkipIfRoot skips permission-dependent tests when running with euid 0.
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}
}
