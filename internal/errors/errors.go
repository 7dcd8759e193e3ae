// Package errors collects the failures and warnings produced by a
// scaffold run so the CLI can print one summary instead of aborting on
// the first non-fatal problem.
package errors

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Severity represents the severity of a scaffold error.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ScaffoldError is a failure tied to one scaffold step and, when
// relevant, one output path.
type ScaffoldError struct {
	Step      string
	Path      string
	Message   string
	Severity  Severity
	Timestamp time.Time
}

// Error implements the error interface
func (se *ScaffoldError) Error() string {
	if se.Path != "" {
		return fmt.Sprintf("%s: %s: %s: %s", se.Step, se.Path, se.Severity, se.Message)
	}
	return fmt.Sprintf("%s: %s: %s", se.Step, se.Severity, se.Message)
}

// Collector accumulates scaffold errors. It is safe for concurrent use;
// tool installs report warnings from goroutines.
type Collector struct {
	errors []ScaffoldError
	mutex  sync.RWMutex
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a scaffold error, stamping it with the current time.
func (c *Collector) Add(err ScaffoldError) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	err.Timestamp = time.Now()
	c.errors = append(c.errors, err)
}

// Warnf records a warning for a step.
func (c *Collector) Warnf(step, path, format string, args ...any) {
	c.Add(ScaffoldError{
		Step:     step,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	})
}

// Errors returns a copy of everything collected so far.
func (c *Collector) Errors() []ScaffoldError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	out := make([]ScaffoldError, len(c.errors))
	copy(out, c.errors)
	return out
}

// ByStep returns the errors recorded for one step.
func (c *Collector) ByStep(step string) []ScaffoldError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var out []ScaffoldError
	for _, err := range c.errors {
		if err.Step == step {
			out = append(out, err)
		}
	}
	return out
}

// HasErrors reports whether anything at SeverityError was collected.
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	for _, err := range c.errors {
		if err.Severity >= SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of collected entries.
func (c *Collector) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.errors)
}

// Clear drops everything collected.
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errors = c.errors[:0]
}

// Summary formats collected entries as an indented list for the CLI,
// or the empty string when the run was clean.
func (c *Collector) Summary() string {
	entries := c.Errors()
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d issue(s) during scaffold:\n", len(entries))
	for _, err := range entries {
		fmt.Fprintf(&b, "  [%s] %s\n", err.Severity, err.Error())
	}
	return b.String()
}
