package commands

import (
	"github.com/spf13/cobra"

	"github.com/chaperone/vioctl/cmd/vioctl/handlers"
)

// VROps returns the vrops command group.
func VROps() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vrops",
		Short: "Configure a vRealize Operations appliance",
	}

	cmd.AddCommand(vropsConfigure())

	return cmd
}

// vropsConfigure returns the vrops configure command.
//
// Configure runs the first-boot checklist against the appliance's CASA
// API: wait for the API, set the initial admin password, converge the NTP
// server list, promote the admin role, and optionally name the cluster.
// Each step checks the remote state before mutating; the sequence is not
// transactional and a mid-run failure leaves prior steps applied.
func vropsConfigure() *cobra.Command {
	var (
		configPath string
		state      string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Run first-boot configuration of a vROPs appliance",
		Long: `Configure performs the one-time bootstrap of a vROPs appliance.

The ordered checklist:
  1. Wait for the appliance API to answer
  2. Set the initial admin password (tolerates "already set")
  3. Converge the NTP server list (pushes only missing servers)
  4. Promote the admin role (skipped while a configuration is running)
  5. Optionally name the cluster after its host

Steps are individually idempotent but the sequence has no rollback: a
failure partway leaves the appliance with the prior steps applied.

Example:
  vioctl vrops configure -c vioctl.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.VROpsConfigure(cmd.Context(), configPath, state)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	cmd.Flags().StringVarP(&state, "state", "s", "present", "Desired state: present or absent")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
