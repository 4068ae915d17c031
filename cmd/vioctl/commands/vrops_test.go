package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findSubcommand returns the named subcommand or nil.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

func TestVROps(t *testing.T) {
	cmd := VROps()

	require.NotNil(t, cmd)
	assert.Equal(t, "vrops", cmd.Use)

	sub := findSubcommand(cmd, "configure")
	require.NotNil(t, sub, "vrops should have a configure subcommand")
}

func TestVROpsConfigure_Flags(t *testing.T) {
	cmd := vropsConfigure()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag, "config flag should exist")
	assert.Equal(t, "c", configFlag.Shorthand)

	stateFlag := cmd.Flags().Lookup("state")
	require.NotNil(t, stateFlag, "state flag should exist")
	assert.Equal(t, "present", stateFlag.DefValue)
}

func TestVROpsConfigure_ConfigFlagRequired(t *testing.T) {
	cmd := vropsConfigure()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)

	_, hasRequired := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]
	assert.True(t, hasRequired, "config flag should be required")
}

func TestVROpsConfigure_RunE(t *testing.T) {
	cmd := vropsConfigure()
	assert.NotNil(t, cmd.RunE, "configure command should have RunE function")
}
