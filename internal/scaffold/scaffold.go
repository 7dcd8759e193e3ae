package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"

	"github.com/pkgstrap/pkgstrap/internal/config"
	"github.com/pkgstrap/pkgstrap/internal/errors"
	"github.com/pkgstrap/pkgstrap/internal/logging"
	"github.com/pkgstrap/pkgstrap/internal/pkgmanager"
	"github.com/pkgstrap/pkgstrap/internal/template"
)

// defaultDescription fills READMEs and doc comments when the user gave
// none.
const defaultDescription = "A Go package."

// toolModules maps a linter name from the configuration to the module
// path "go install" needs. govet ships with the toolchain and has no
// entry.
var toolModules = map[string]string{
	"staticcheck": "honnef.co/go/tools/cmd/staticcheck@latest",
	"errcheck":    "github.com/kisielk/errcheck@latest",
	"revive":      "github.com/mgechev/revive@latest",
}

// Result describes what a scaffold run produced.
type Result struct {
	ProjectDir string
	Files      []string
	Warnings   []errors.ScaffoldError
}

// Scaffolder renders the template set into a new project directory and
// runs the follow-up steps (vcs init, tool installs).
type Scaffolder struct {
	cfg       *config.Config
	log       logging.Logger
	manager   *pkgmanager.Manager
	collector *errors.Collector
	now       func() time.Time
}

// New creates a Scaffolder. A nil manager disables the vcs and tools
// steps; a nil logger discards output.
func New(cfg *config.Config, log logging.Logger, manager *pkgmanager.Manager) *Scaffolder {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Scaffolder{
		cfg:       cfg,
		log:       log.WithComponent("scaffold"),
		manager:   manager,
		collector: errors.NewCollector(),
		now:       time.Now,
	}
}

// Run executes the full bootstrap: render every template into the
// project directory, then initialize version control and install tools.
// Failures in the follow-up steps are collected as warnings; only
// rendering and writing failures abort the run.
func (s *Scaffolder) Run(ctx context.Context) (*Result, error) {
	p := s.cfg.Project
	if p.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if p.Module == "" {
		return nil, fmt.Errorf("module path is required")
	}

	dir := filepath.Join(s.cfg.Scaffold.OutputDir, p.Name)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %s already exists", dir)
	}

	templates, err := s.templates()
	if err != nil {
		return nil, err
	}
	data := s.buildData()

	result := &Result{ProjectDir: dir}
	for _, tmpl := range templates {
		if tmpl.BinaryOnly && !p.Binary {
			continue
		}
		name, err := template.Render(tmpl.Name, data)
		if err != nil {
			return nil, fmt.Errorf("rendering filename %q: %w", tmpl.Name, err)
		}
		body, err := template.Render(tmpl.Source, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		result.Files = append(result.Files, path)

		if s.cfg.Scaffold.DryRun {
			s.log.Info(ctx, "dry run, skipping write", "path", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := atomic.WriteFile(path, bytes.NewReader([]byte(body))); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		s.log.Debug(ctx, "wrote file", "path", path, "bytes", len(body))
	}

	if !s.cfg.Scaffold.DryRun {
		s.postScaffold(ctx, dir)
	}

	result.Warnings = s.collector.Errors()
	return result, nil
}

// postScaffold runs the non-fatal follow-up steps.
func (s *Scaffolder) postScaffold(ctx context.Context, dir string) {
	if s.manager == nil {
		return
	}
	if s.cfg.Scaffold.VCS {
		if err := s.manager.InitRepo(ctx, dir); err != nil {
			s.collector.Warnf("vcs", dir, "git init failed: %v", err)
		}
	}
	if s.cfg.Tools.Install {
		var modules []string
		for _, linter := range s.cfg.Tools.Linters {
			if mod, ok := toolModules[linter]; ok {
				modules = append(modules, mod)
			}
		}
		for _, err := range s.manager.InstallTools(ctx, dir, modules) {
			s.collector.Warnf("tools", "", "%v", err)
		}
	}
}

// buildData assembles the data mapping every template renders against.
func (s *Scaffolder) buildData() map[string]any {
	p := s.cfg.Project
	description := p.Description
	if description == "" {
		description = defaultDescription
	}
	return map[string]any{
		"name":        p.Name,
		"module":      p.Module,
		"pkg":         PackageName(p.Module),
		"display":     DisplayName(p.Name),
		"description": description,
		"author":      p.Author,
		"email":       p.Email,
		"year":        s.now().Year(),
		"license":     p.License,
		"linters":     s.cfg.Tools.Linters,
		"binary":      p.Binary,
		"goVersion":   p.GoVersion,
	}
}

// templates returns the template set for this run: the built-ins, or
// the contents of the configured template directory.
func (s *Scaffolder) templates() ([]FileTemplate, error) {
	dir := s.cfg.Scaffold.TemplateDir
	if dir == "" {
		return Builtin(), nil
	}
	return LoadDir(dir)
}

// LoadDir reads every regular file under dir as a FileTemplate, named
// by its path relative to dir. Hidden directories are not skipped;
// user template sets often carry dotfiles.
func LoadDir(dir string) ([]FileTemplate, error) {
	var templates []FileTemplate
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		templates = append(templates, FileTemplate{
			Name:   filepath.ToSlash(rel),
			Source: string(body),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates from %s: %w", dir, err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return templates, nil
}
