package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "docsite.yaml")
	require.NoError(t, os.WriteFile(p, []byte("primary_color: '#000'\n"), 0o600))

	var reloads atomic.Int32
	w, err := New(p, 20*time.Millisecond, func(context.Context) error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// let the watch register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(p, []byte("primary_color: '#111'\n"), 0o600))
	require.NoError(t, os.WriteFile(p, []byte("primary_color: '#222'\n"), 0o600))

	require.Eventually(t, func() bool { return reloads.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nope", "docsite.yaml"), 0, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.Equal(t, DefaultDebounce, w.debounce)

	require.Error(t, w.Run(context.Background()))
}
