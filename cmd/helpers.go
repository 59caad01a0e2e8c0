package cmd

import (
	"fmt"
	"strconv"

	"github.com/firefly-engineering/vbmc-host/internal/app"
	"github.com/firefly-engineering/vbmc-host/internal/config"
	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/port"
)

// getApp returns the application built during setup.
func getApp() *app.App {
	return app.Default
}

// cfg returns the loaded configuration.
func cfg() *config.Config {
	return getApp().Config
}

// parsePort converts a command-line argument to a port number.
func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < port.MinPort || p > port.MaxPort {
		return 0, errors.ValidationError(fmt.Sprintf("invalid port %q: must be %d-%d", s, port.MinPort, port.MaxPort))
	}
	return p, nil
}

// portRange returns [start, end) from two arguments, or the configured range
// when none are given.
func portRange(args []string) (int, int, error) {
	if len(args) == 0 {
		return cfg().Ports.From, cfg().Ports.To, nil
	}

	start, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.ValidationError(fmt.Sprintf("invalid start port %q", args[0]))
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.ValidationError(fmt.Sprintf("invalid end port %q", args[1]))
	}
	if err := port.ValidateRange(start, end); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
