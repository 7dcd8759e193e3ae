package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgstrap/pkgstrap/internal/config"
	"github.com/pkgstrap/pkgstrap/internal/pkgmanager"
)

// stubRunner implements pkgmanager.Runner for scaffold tests.
type stubRunner struct {
	calls []string
	err   error
}

func (s *stubRunner) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	return "", s.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Project.Name = "widget"
	cfg.Project.Module = "github.com/acme/widget"
	cfg.Project.Author = "Ada Lovelace"
	cfg.Scaffold.OutputDir = t.TempDir()
	cfg.Scaffold.VCS = false
	cfg.Tools.Install = false
	return cfg
}

func fixedScaffolder(cfg *config.Config, mgr *pkgmanager.Manager) *Scaffolder {
	s := New(cfg, nil, mgr)
	s.now = func() time.Time { return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestRunWritesProject(t *testing.T) {
	cfg := testConfig(t)
	s := fixedScaffolder(cfg, nil)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Scaffold.OutputDir, "widget"), result.ProjectDir)
	assert.Empty(t, result.Warnings)

	manifest, err := os.ReadFile(filepath.Join(result.ProjectDir, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, "module github.com/acme/widget\n\ngo 1.24\n", string(manifest))

	license, err := os.ReadFile(filepath.Join(result.ProjectDir, "LICENSE"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(license), "MIT License"))
	assert.Contains(t, string(license), "Copyright (c) 2026 Ada Lovelace")

	// Library projects get no command directory.
	_, err = os.Stat(filepath.Join(result.ProjectDir, "cmd"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunBinaryProject(t *testing.T) {
	cfg := testConfig(t)
	cfg.Project.Binary = true
	s := fixedScaffolder(cfg, nil)

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	main, err := os.ReadFile(filepath.Join(result.ProjectDir, "cmd", "widget", "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "package main")
}

func TestRunDryRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scaffold.DryRun = true
	s := fixedScaffolder(cfg, nil)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Files)

	_, err = os.Stat(result.ProjectDir)
	assert.True(t, os.IsNotExist(err), "dry run must not create the project directory")
}

func TestRunRefusesExistingDirectory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Scaffold.OutputDir, "widget"), 0o755))
	s := fixedScaffolder(cfg, nil)

	_, err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRunRequiresNameAndModule(t *testing.T) {
	cfg := testConfig(t)
	cfg.Project.Name = ""
	_, err := fixedScaffolder(cfg, nil).Run(context.Background())
	assert.ErrorContains(t, err, "project name is required")

	cfg = testConfig(t)
	cfg.Project.Module = ""
	_, err = fixedScaffolder(cfg, nil).Run(context.Background())
	assert.ErrorContains(t, err, "module path is required")
}

func TestRunCollectsVCSWarning(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scaffold.VCS = true
	runner := &stubRunner{err: errors.New("git not found")}
	s := fixedScaffolder(cfg, pkgmanager.NewManager(runner, nil))

	result, err := s.Run(context.Background())
	require.NoError(t, err, "a failed git init must not abort the scaffold")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "vcs", result.Warnings[0].Step)
}

func TestRunInstallsTools(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tools.Install = true
	runner := &stubRunner{}
	s := fixedScaffolder(cfg, pkgmanager.NewManager(runner, nil))

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	// govet ships with the toolchain, so only three installs happen.
	var installs int
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "go install") {
			installs++
		}
	}
	assert.Equal(t, 3, installs)
}

func TestRunCustomTemplateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NOTES.md"), []byte("# <%= display %>\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "intro.md"), []byte("<%= description %>\n"), 0o644))

	cfg := testConfig(t)
	cfg.Scaffold.TemplateDir = dir
	s := fixedScaffolder(cfg, nil)

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	notes, err := os.ReadFile(filepath.Join(result.ProjectDir, "NOTES.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Widget\n", string(notes))

	intro, err := os.ReadFile(filepath.Join(result.ProjectDir, "docs", "intro.md"))
	require.NoError(t, err)
	assert.Equal(t, "A Go package.\n", string(intro))
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no templates found")
}
