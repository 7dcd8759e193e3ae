package scaffold

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkgstrap/pkgstrap/internal/config"
)

// Answers is a pre-recorded answers file for non-interactive runs. All
// fields are optional; zero values leave the configuration untouched.
type Answers struct {
	Name        string `yaml:"name"`
	Module      string `yaml:"module"`
	Author      string `yaml:"author"`
	Email       string `yaml:"email"`
	License     string `yaml:"license"`
	Description string `yaml:"description"`
	Binary      *bool  `yaml:"binary"`
}

// LoadAnswers reads and parses a YAML answers file.
func LoadAnswers(path string) (*Answers, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	var a Answers
	if err := yaml.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return &a, nil
}

// Apply copies the non-zero answers onto the configuration.
func (a *Answers) Apply(cfg *config.Config) {
	if a.Name != "" {
		cfg.Project.Name = a.Name
	}
	if a.Module != "" {
		cfg.Project.Module = a.Module
	}
	if a.Author != "" {
		cfg.Project.Author = a.Author
	}
	if a.Email != "" {
		cfg.Project.Email = a.Email
	}
	if a.License != "" {
		cfg.Project.License = a.License
	}
	if a.Description != "" {
		cfg.Project.Description = a.Description
	}
	if a.Binary != nil {
		cfg.Project.Binary = *a.Binary
	}
}
