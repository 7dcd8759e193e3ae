// Package pkgmanager spawns the external commands a bootstrap needs:
// version control init, tool installation and module version queries.
// The template engine never touches this package; it only consumes the
// rendered text the scaffolder feeds it.
package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkgstrap/pkgstrap/internal/logging"
)

// Runner executes one external command and returns its combined
// output. It exists so tests can substitute a fake process spawner.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns the os/exec backed Runner used in production.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// Manager wraps the command invocations behind intent-named methods.
type Manager struct {
	runner Runner
	log    logging.Logger
}

// NewManager creates a Manager using runner for process execution.
func NewManager(runner Runner, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Manager{runner: runner, log: log.WithComponent("pkgmanager")}
}

// InitRepo initializes a git repository in dir. Idempotent: git init
// on an existing repository succeeds.
func (m *Manager) InitRepo(ctx context.Context, dir string) error {
	m.log.Debug(ctx, "initializing repository", "dir", dir)
	_, err := m.runner.Run(ctx, dir, "git", "init", "--quiet")
	return err
}

// InstallTools go-installs each tool module in turn and returns one
// error per failed install rather than aborting on the first.
func (m *Manager) InstallTools(ctx context.Context, dir string, tools []string) []error {
	var errs []error
	for _, tool := range tools {
		m.log.Info(ctx, "installing tool", "tool", tool)
		if _, err := m.runner.Run(ctx, dir, "go", "install", tool); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// LatestVersion queries the module proxy for the newest released
// version of a module via "go list -m -versions".
func (m *Manager) LatestVersion(ctx context.Context, module string) (string, error) {
	out, err := m.runner.Run(ctx, "", "go", "list", "-m", "-versions", module)
	if err != nil {
		return "", err
	}
	// Output is "module v1 v2 ... vN" with versions oldest first.
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", fmt.Errorf("no released versions for %s", module)
	}
	return fields[len(fields)-1], nil
}
