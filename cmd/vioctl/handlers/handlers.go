// Package handlers implements the command execution logic behind the
// cobra commands. Handlers load configuration, build platform clients,
// run the reconcilers, and emit the JSON result document on stdout.
package handlers

import (
	"context"
	"io"
	"os"

	"github.com/chaperone/vioctl/internal/config"
	"github.com/chaperone/vioctl/internal/platform/keystone"
	"github.com/chaperone/vioctl/internal/platform/vrops"
	"github.com/chaperone/vioctl/internal/reconcile/bootstrap"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads and defaults the configuration file.
	loadConfig = config.LoadFile

	// newProjectManager authenticates against Keystone and returns a
	// project manager.
	newProjectManager = func(ctx context.Context, opts keystone.AuthOptions) (keystone.ProjectManager, error) {
		return keystone.NewRealClient(ctx, opts)
	}

	// newApplianceAPI builds a CASA API client for the appliance.
	newApplianceAPI = func(cfg config.VROpsConfig) bootstrap.ApplianceAPI {
		return vrops.NewClient(cfg.Host, cfg.Username, cfg.Password, cfg.Insecure)
	}

	// resultWriter receives the JSON result document.
	resultWriter io.Writer = os.Stdout
)
