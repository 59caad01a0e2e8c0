// Package app provides the application context for vbmc-host.
// It allows dependency injection for testing.
package app

import (
	"log/slog"
	"net"

	"github.com/firefly-engineering/vbmc-host/internal/config"
	"github.com/firefly-engineering/vbmc-host/internal/logging"
	"github.com/firefly-engineering/vbmc-host/internal/network"
	"github.com/firefly-engineering/vbmc-host/internal/port"
	"github.com/firefly-engineering/vbmc-host/internal/runner"
	"github.com/firefly-engineering/vbmc-host/internal/system"
)

// App holds the application dependencies
type App struct {
	// Config is the loaded configuration
	Config *config.Config

	// Logger is shared by the inspector and runner
	Logger *slog.Logger

	Inspector *network.Inspector
	Scanner   *port.Scanner
	Runner    *runner.Runner

	executor system.CommandExecutor
	provider network.InterfaceProvider
	prober   port.Prober
	gateway  func() (net.IP, error)
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets the configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithLogger sets the logger handle
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithExecutor sets the command executor used by the inspector and runner
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) {
		a.executor = e
	}
}

// WithInterfaceProvider sets the interface table provider
func WithInterfaceProvider(p network.InterfaceProvider) Option {
	return func(a *App) {
		a.provider = p
	}
}

// WithProber sets the port prober
func WithProber(p port.Prober) Option {
	return func(a *App) {
		a.prober = p
	}
}

// WithGatewayDiscoverer sets the default gateway lookup
func WithGatewayDiscoverer(fn func() (net.IP, error)) Option {
	return func(a *App) {
		a.gateway = fn
	}
}

// New creates a new App with the given options.
// Anything not provided is backed by the OS.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Config == nil {
		app.Config = config.Default()
	}
	if app.Logger == nil {
		app.Logger = logging.Logger
	}
	if app.executor == nil {
		app.executor = system.DefaultExecutor()
	}

	inspectorOpts := []network.Option{
		network.WithExecutor(app.executor),
		network.WithLogger(app.Logger),
	}
	if app.provider != nil {
		inspectorOpts = append(inspectorOpts, network.WithProvider(app.provider))
	}
	if app.gateway != nil {
		inspectorOpts = append(inspectorOpts, network.WithGatewayDiscoverer(app.gateway))
	}

	app.Inspector = network.NewInspector(inspectorOpts...)
	app.Scanner = port.NewScanner(app.prober)
	app.Runner = runner.New(
		runner.WithExecutor(app.executor),
		runner.WithLogger(app.Logger),
	)

	return app
}

// Default is the application instance used by the CLI. It is built once the
// configuration has been loaded.
var Default *App

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault clears the default application instance
func ResetDefault() {
	Default = nil
}
