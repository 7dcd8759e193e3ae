// Package scaffold turns a validated configuration into a project
// directory. It renders the built-in file templates (or a user
// supplied template directory) through internal/template, writes the
// results atomically, and runs the follow-up steps: git init, linter
// installs, and the one-shot self-delete.
package scaffold
