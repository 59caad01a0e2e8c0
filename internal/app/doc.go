// Package app provides the application context for vbmc-host.
//
// This package wires the inspector, scanner and runner to one configuration
// and logger using the functional options pattern, so tests can swap the OS
// for fakes.
//
// # Creating an App
//
//	// Production usage
//	a := app.New(app.WithConfig(cfg), app.WithLogger(logging.Logger))
//
//	// Testing with fakes
//	a := app.New(
//	    app.WithExecutor(system.NewMockExecutor()),
//	    app.WithInterfaceProvider(network.NewFakeProvider()),
//	    app.WithProber(port.NewFakeProber(6230)),
//	)
//
// # Available Options
//
//	WithConfig(cfg)              // Loaded configuration
//	WithLogger(logger)           // Logger for inspector and runner
//	WithExecutor(exec)           // Command executor
//	WithInterfaceProvider(p)     // Interface table provider
//	WithProber(p)                // Port prober
//	WithGatewayDiscoverer(fn)    // Default gateway lookup
package app
