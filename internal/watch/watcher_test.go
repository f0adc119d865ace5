package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRejectsNonDirectories(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.Error(t, w.Add(file))
	assert.Error(t, w.Add(filepath.Join(dir, "missing")))
	assert.NoError(t, w.Add(dir))
	assert.Equal(t, []string{dir}, w.Roots())
}

func TestStartStop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "second start must be rejected")

	w.Stop()
	assert.False(t, w.IsRunning())
	// Stop is idempotent.
	w.Stop()
}

func TestChangeDelivery(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Add(dir))
	require.NoError(t, w.Start())
	defer w.Stop()

	path := filepath.Join(dir, "created.txt")
	require.NoError(t, os.WriteFile(path, []byte("fresh"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case change := <-w.Changes():
			if change.Path == path {
				assert.False(t, change.Timestamp.IsZero())
				return
			}
		case <-deadline:
			t.Fatal("no change event received for created file")
		}
	}
}
