package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.mmd")
	other := filepath.Join(dir, "other.mmd")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	w, err := New(path, 20*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			changes <- struct{}{}
			return errors.New("render failures are logged only")
		})
	}()

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("two\n"), 0644))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "doc.mmd"), 0, zerolog.Nop())
	assert.Error(t, err)
}
