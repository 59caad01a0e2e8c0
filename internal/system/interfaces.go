// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CommandExecutor abstracts command execution for testability.
// Implementations must pass name and args to the process as a discrete
// argument vector, never through a shell.
type CommandExecutor interface {
	// Output runs a command to completion and returns its standard output.
	// A command that ran and exited non-zero yields an *ExitError.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExitError reports a command that started but exited with a non-zero status.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("exit status %d", e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Stderr returns the captured standard error carried by err, if any.
func Stderr(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Stderr
	}
	return ""
}

var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementations.
func ResetDefaults() {
	defaultExecutor = &osExecutor{}
}
