// Package bootstrap performs first-boot configuration of a vROPs
// appliance: wait for the API, set the initial admin password, converge
// the NTP server list, promote the admin role, and optionally name the
// cluster. Each phase checks the remote state it owns before mutating;
// the sequence is not transactional and there is no rollback.
package bootstrap

import (
	"context"

	"github.com/chaperone/vioctl/internal/reconcile"
)

// ApplianceAPI is the slice of the CASA API the bootstrap phases use.
// Implemented by platform/vrops.Client.
type ApplianceAPI interface {
	// Ready checks that the appliance API answers at all.
	Ready(ctx context.Context) error

	// GetNTPServers returns the currently configured NTP server addresses.
	GetNTPServers(ctx context.Context) ([]string, error)

	// SetNTPServers pushes an NTP server list to the appliance.
	SetNTPServers(ctx context.Context, servers []string) error

	// SetInitialAdminPassword sets the first-boot admin password. Returns
	// vrops.ErrPasswordAlreadySet when a prior run already set it.
	SetInitialAdminPassword(ctx context.Context, password string) error

	// AdminRoleStatus reports whether a role configuration is in progress.
	AdminRoleStatus(ctx context.Context) (bool, error)

	// SetAdminRole promotes the appliance slice to ADMIN/DATA/UI.
	SetAdminRole(ctx context.Context) error

	// GetClusterName returns the configured cluster name.
	GetClusterName(ctx context.Context) (string, error)

	// SetClusterName names the appliance cluster.
	SetClusterName(ctx context.Context, name string) error
}

// Phases returns the ordered bootstrap checklist for the given appliance.
func Phases(api ApplianceAPI) []reconcile.Phase {
	return []reconcile.Phase{
		&ReadyPhase{api: api},
		&AdminPasswordPhase{api: api},
		&NTPPhase{api: api},
		&AdminRolePhase{api: api},
		&ClusterNamePhase{api: api},
	}
}

// CheckState reports the observed overall bootstrap state of the appliance.
//
// TODO: probe the appliance deployment state instead of assuming absent.
// Until the probe exists, every "present" run replays the full checklist
// (each phase still skips work it finds already done) and "absent" runs
// never see anything to tear down.
func CheckState() reconcile.State {
	return reconcile.StateAbsent
}
