// Package config defines pkgstrap's configuration, loaded by viper
// from flags, PKGSTRAP_* environment variables and .pkgstrap.yml in
// that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full pkgstrap configuration.
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
	Tools    ToolsConfig    `mapstructure:"tools"`
	Cleanup  CleanupConfig  `mapstructure:"cleanup"`
	LogLevel string         `mapstructure:"log_level"`
}

// ProjectConfig describes the package being bootstrapped.
type ProjectConfig struct {
	Name        string `mapstructure:"name"`
	Module      string `mapstructure:"module"`
	Author      string `mapstructure:"author"`
	Email       string `mapstructure:"email"`
	License     string `mapstructure:"license"`
	Description string `mapstructure:"description"`
	GoVersion   string `mapstructure:"go_version"`
	Binary      bool   `mapstructure:"binary"`
}

// ScaffoldConfig controls where and how files are written.
type ScaffoldConfig struct {
	OutputDir   string `mapstructure:"output_dir"`
	TemplateDir string `mapstructure:"template_dir"`
	VCS         bool   `mapstructure:"vcs"`
	DryRun      bool   `mapstructure:"dry_run"`
}

// ToolsConfig controls post-scaffold tool installation.
type ToolsConfig struct {
	Install bool     `mapstructure:"install"`
	Linters []string `mapstructure:"linters"`
}

// CleanupConfig controls the one-shot self-deletion after a successful
// bootstrap.
type CleanupConfig struct {
	SelfDelete bool `mapstructure:"self_delete"`
}

// supported license identifiers, matching the built-in templates.
var supportedLicenses = []string{"MIT", "Apache-2.0", "BSD-3-Clause", "Unlicense"}

// SupportedLicenses lists the license identifiers the built-in
// templates can render.
func SupportedLicenses() []string {
	out := make([]string, len(supportedLicenses))
	copy(out, supportedLicenses)
	return out
}

// IsSupportedLicense reports whether the built-in templates carry a
// body for license.
func IsSupportedLicense(license string) bool {
	for _, l := range supportedLicenses {
		if l == license {
			return true
		}
	}
	return false
}

// DefaultConfig returns the configuration used when nothing overrides
// it.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			License:   "MIT",
			GoVersion: "1.24",
		},
		Scaffold: ScaffoldConfig{
			OutputDir: ".",
			VCS:       true,
		},
		Tools: ToolsConfig{
			Install: true,
			Linters: []string{"govet", "staticcheck", "errcheck", "revive"},
		},
		Cleanup: CleanupConfig{
			SelfDelete: true,
		},
		LogLevel: "info",
	}
}

// Load unmarshals the viper state over the defaults and validates the
// result.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the scaffolder cannot
// work with.
func (c *Config) Validate() error {
	if c.Project.Name != "" && !validProjectName(c.Project.Name) {
		return fmt.Errorf("invalid project name %q: use letters, digits, '-' and '_'", c.Project.Name)
	}
	if c.Project.Module != "" && strings.ContainsAny(c.Project.Module, " \t") {
		return fmt.Errorf("invalid module path %q: must not contain whitespace", c.Project.Module)
	}
	if c.Project.License != "" && !IsSupportedLicense(c.Project.License) {
		return fmt.Errorf("unsupported license %q (supported: %s)",
			c.Project.License, strings.Join(supportedLicenses, ", "))
	}
	if c.Scaffold.OutputDir == "" {
		return fmt.Errorf("scaffold output directory must not be empty")
	}
	return nil
}

func validProjectName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return name != ""
}
