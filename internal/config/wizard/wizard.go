// Package wizard implements the interactive configuration generator
// behind `vioctl init`.
package wizard

import (
	"context"
	"fmt"

	"github.com/chaperone/vioctl/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Keystone
	AuthURL      string
	Username     string
	Password     string
	ScopeProject string

	// Project
	ProjectName string

	// vROPs appliance
	VROpsHost      string
	VROpsUsername  string
	VROpsPassword  string
	NTPServers     []string
	SetClusterName bool
}

// RunWizard runs the interactive configuration wizard. The context is
// used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runKeystoneGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("keystone: %w", err)
	}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	if err := runVROpsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("vrops: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard answers into a Config. Defaults not asked
// for interactively (domain ids, insecure TLS) follow the loader's.
func (r *Result) ToConfig() *config.Config {
	return &config.Config{
		Keystone: config.KeystoneConfig{
			AuthURL:         r.AuthURL,
			Username:        r.Username,
			Password:        r.Password,
			Project:         r.ScopeProject,
			UserDomainID:    "default",
			ProjectDomainID: "default",
			Insecure:        true,
		},
		Project: config.ProjectConfig{
			Name:        r.ProjectName,
			DomainID:    "default",
			Description: fmt.Sprintf("New Project: %s", r.ProjectName),
			Enabled:     true,
		},
		VROps: config.VROpsConfig{
			Host:           r.VROpsHost,
			Username:       r.VROpsUsername,
			Password:       r.VROpsPassword,
			NTPServers:     r.NTPServers,
			SetClusterName: r.SetClusterName,
			Insecure:       true,
		},
	}
}
