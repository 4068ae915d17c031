package commands

import (
	"github.com/spf13/cobra"

	"github.com/chaperone/vioctl/cmd/vioctl/handlers"
)

// Init returns the init command.
//
// Init runs an interactive wizard and writes a vioctl configuration
// file with sensible defaults.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a configuration file interactively",
		Long: `Init walks through the Keystone, project, and vROPs settings and writes
a configuration file for the other commands to consume.

Example:
  vioctl init -o vioctl.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "vioctl.yaml", "Path to write the configuration file")

	return cmd
}
