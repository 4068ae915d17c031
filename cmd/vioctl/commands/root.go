// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the vioctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vioctl",
		Short: "Converge VIO projects and vROPs appliances to a declared state",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Project())
	cmd.AddCommand(VROps())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
