package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfDeleteHonorsKeepEnv(t *testing.T) {
	t.Setenv(KeepSelfEnv, "1")
	dir := filepath.Join(t.TempDir(), "templates")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	SelfDelete(context.Background(), nil, dir)

	_, err := os.Stat(dir)
	assert.NoError(t, err, "template directory must survive when the keep env is set")
}

func TestSelfDeleteRemovesTemplateDir(t *testing.T) {
	t.Setenv(KeepSelfEnv, "")
	dir := filepath.Join(t.TempDir(), "templates")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.tmpl"), []byte("hi"), 0o644))

	// Removing the running test binary is harmless on this platform;
	// the inode stays alive until the process exits.
	SelfDelete(context.Background(), nil, dir)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
