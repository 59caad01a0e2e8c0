package errors

import (
	"errors"
	"fmt"
)

// Exit codes for vbmc-host
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitInterfaceNotFound = 2
	ExitMissingAddress    = 3
	ExitCommandFailed     = 4
	ExitPortAllocation    = 5
	ExitConfigError       = 6
)

// Sentinels matched through errors.Is against any HostError of the same kind.
var (
	ErrInterfaceNotFound = errors.New("interface not found")
	ErrMissingAddress    = errors.New("interface has no ipv4 address")
	ErrCommandFailed     = errors.New("command failed")
)

// HostError is the base error type for vbmc-host
type HostError struct {
	Code    int
	Message string
	Cause   error
}

func (e *HostError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *HostError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's kind.
func (e *HostError) Is(target error) bool {
	switch target {
	case ErrInterfaceNotFound:
		return e.Code == ExitInterfaceNotFound
	case ErrMissingAddress:
		return e.Code == ExitMissingAddress
	case ErrCommandFailed:
		return e.Code == ExitCommandFailed
	}
	return false
}

// ExitCode returns the exit code for this error
func (e *HostError) ExitCode() int {
	return e.Code
}

// New creates a new HostError
func New(code int, message string) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HostError
func Wrap(code int, message string, cause error) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// InterfaceNotFound returns an error for an unknown network interface
func InterfaceNotFound(name string) *HostError {
	return New(ExitInterfaceNotFound, fmt.Sprintf("net interface not found: %s", name))
}

// NoLinkAddress returns an error for an interface without a link-layer record.
// It belongs to the InterfaceNotFound class.
func NoLinkAddress(name string) *HostError {
	return New(ExitInterfaceNotFound, fmt.Sprintf("net interface %s has no link-layer address", name))
}

// MissingAddress returns an error for an interface without IPv4 configuration
func MissingAddress(name string) *HostError {
	return New(ExitMissingAddress, fmt.Sprintf("net interface %s needs an ip address", name))
}

// CommandFailed wraps an execution failure with the rendered command line.
// The cause is kept for errors.As but the message already carries its text.
func CommandFailed(cmdline string, cause error) *HostError {
	return Wrap(ExitCommandFailed, fmt.Sprintf("run command: '%s'", cmdline), cause)
}

// PortAllocationFailed returns an error for port allocation failure
func PortAllocationFailed(cause error) *HostError {
	return Wrap(ExitPortAllocation, "failed to allocate port", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *HostError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *HostError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
