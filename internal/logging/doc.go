// Package logging provides logging utilities for vbmc-host.
//
// This package provides two categories of output:
//   - Structured logs (via slog), either as an injected handle or the process logger
//   - User output: formatted messages for people at a terminal
//
// # Logger Handles
//
// Components that log (the command runner, the network inspector) take an
// explicit *slog.Logger so tests can capture records:
//
//	var buf bytes.Buffer
//	log := logging.New(true, false, &buf)
//	r := runner.New(runner.WithLogger(log))
//
// # Process Logger
//
// The CLI configures one process logger at startup:
//
//	logging.Setup(verbose, jsonOutput, os.Stderr)
//	logging.Debug("scanning ports", "from", from, "to", to)
//
// # User Output
//
// User-facing messages are prefixed with a styled status glyph (lipgloss):
//
//	logging.UserInfo("No free ports in %d-%d", from, to)
//	logging.UserSuccess("Allocated port %d", port)
//	logging.UserWarning("Bridge %s has no addresses", bridge)
//	logging.UserError("Command failed: %v", err)
//
// UserInfo and UserSuccess write to Stdout, UserWarning and UserError to Stderr.
package logging
