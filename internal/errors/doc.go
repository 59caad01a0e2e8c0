// Package errors provides typed errors with exit codes for vbmc-host.
//
// # Error Types
//
// HostError wraps an error with an exit code:
//
//	type HostError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess           = 0 // Success
//	ExitGeneralError      = 1 // General/unknown errors, validation
//	ExitInterfaceNotFound = 2 // Unknown interface or no link-layer record
//	ExitMissingAddress    = 3 // Interface has no IPv4 configured
//	ExitCommandFailed     = 4 // External command failed
//	ExitPortAllocation    = 5 // No free port in range
//	ExitConfigError       = 6 // Configuration error
//
// # Matching
//
// Each kind has a sentinel usable with errors.Is:
//
//	if errors.Is(err, errors.ErrInterfaceNotFound) { ... }
//
// Use GetExitCode to turn an error chain into a process exit code:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
