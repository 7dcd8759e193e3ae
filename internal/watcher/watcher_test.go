package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmpl.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	fw, err := New(path, 50*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan string, 1)
	go func() {
		_ = fw.Watch(ctx, func(p string) error {
			select {
			case fired <- p:
			default:
			}
			return nil
		})
	}()

	// Give the watch loop a moment to start before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	select {
	case p := <-fired:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-ctx.Done():
		t.Fatal("watcher never fired")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmpl.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	fw, err := New(path, 30*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	fired := make(chan struct{}, 1)
	go func() {
		_ = fw.Watch(ctx, func(string) error {
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-fired:
		t.Fatal("watcher fired for an unrelated file")
	case <-ctx.Done():
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmpl.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	fw, err := New(path, 30*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- fw.Watch(ctx, func(string) error { return nil })
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "tmpl.txt"), 0, nil)
	assert.Error(t, err)
}
