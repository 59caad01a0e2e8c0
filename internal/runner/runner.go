// Package runner executes external commands with uniform logging and error
// reporting.
package runner

import (
	"context"
	"log/slog"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/nrednav/cuid2"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/logging"
	"github.com/firefly-engineering/vbmc-host/internal/system"
)

// Runner runs one-shot external commands and captures their standard output.
// It holds no mutable state; concurrent calls are independent.
type Runner struct {
	exec system.CommandExecutor
	log  *slog.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithExecutor sets the command executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(r *Runner) {
		r.exec = e
	}
}

// WithLogger sets the logger handle. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.log = logging.OrDiscard(l)
	}
}

// New creates a Runner. Without options it uses the OS executor and the
// process logger.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.exec == nil {
		r.exec = system.DefaultExecutor()
	}
	if r.log == nil {
		r.log = logging.Logger
	}
	return r
}

// Render joins the argument vector with single spaces. The result is for
// logs and error messages only and is never executed.
func Render(args []string) string {
	return strings.Join(args, " ")
}

// Run executes args[0] with args[1:] and returns its standard output
// untouched. There is no timeout beyond ctx.
//
// Any failure is returned as a CommandFailed error carrying the rendered
// command and the cause, after being logged at error level.
func (r *Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmdline := Render(args)
	id := cuid2.Generate()

	r.log.Info("Run command", "cmd", cmdline, "run_id", id)

	if len(args) == 0 {
		return nil, r.fail(id, cmdline, errors.ValidationError("empty command"))
	}

	out, err := r.exec.Output(ctx, args[0], args[1:]...)
	if err != nil {
		return nil, r.fail(id, cmdline, err)
	}
	return out, nil
}

// RunLine splits line into words using shell quoting rules and runs the
// result as an argument vector. No shell is involved.
func (r *Runner) RunLine(ctx context.Context, line string) ([]byte, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		id := cuid2.Generate()
		r.log.Info("Run command", "cmd", line, "run_id", id)
		return nil, r.fail(id, line, err)
	}
	return r.Run(ctx, args...)
}

func (r *Runner) fail(id, cmdline string, cause error) error {
	wrapped := errors.CommandFailed(cmdline, cause)
	r.log.Error(wrapped.Error(), "cmd", cmdline, "run_id", id)
	return wrapped
}
