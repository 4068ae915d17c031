package commands

import (
	"github.com/spf13/cobra"

	"github.com/chaperone/vioctl/cmd/vioctl/handlers"
)

// Project returns the project command group.
func Project() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage Keystone projects",
	}

	cmd.AddCommand(projectApply())

	return cmd
}

// projectApply returns the project apply command.
//
// Apply reconciles a named Keystone project to the desired state: it
// creates the project when state is present and it does not exist, and
// deletes it when state is absent and it does. A run whose desired
// state already matches reports changed=false and performs no API write.
func projectApply() *cobra.Command {
	var (
		configPath string
		state      string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile a Keystone project to the desired state",
		Long: `Apply reconciles a Keystone project against the configured Keystone endpoint.

The project is looked up by name. With --state present a missing project is
created and its ID reported; with --state absent an existing project is
deleted. Runs are idempotent: when the remote state already matches, no API
write is issued and the result reports changed=false.

The result is printed as a single JSON object on stdout:

  {"changed":true,"result":"<project-id>","msg":null,"project_id":"<project-id>"}

Example:
  vioctl project apply -c vioctl.yaml --state present`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ProjectApply(cmd.Context(), configPath, state, name)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (required)")
	cmd.Flags().StringVarP(&state, "state", "s", "present", "Desired state: present or absent")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Override the project name from the config file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
