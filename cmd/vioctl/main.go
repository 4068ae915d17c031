// Package main is the entry point for the vioctl CLI.
//
// vioctl converges VMware Integrated OpenStack environment pieces to a
// declared state: it creates or deletes Keystone projects and performs
// the first-boot configuration of a vRealize Operations appliance via
// its internal CASA API. Runs are idempotent; each invocation queries
// the current remote state and issues only the calls needed to converge.
//
// Commands: init, project, vrops, version, completion.
//
// For detailed usage information, run:
//
//	vioctl --help
package main

import (
	"fmt"
	"os"

	"github.com/chaperone/vioctl/cmd/vioctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
