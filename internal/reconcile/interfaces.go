// Package reconcile provides shared types for state reconciliation runs.
//
// The reconciliation domain is organized into focused subpackages:
//   - project/ for Keystone project create/delete reconciliation
//   - bootstrap/ for vROPs appliance first-boot configuration phases
//
// This root package contains the phase pipeline, the desired-state type,
// and the result document shared across subpackages.
package reconcile

import "fmt"

// State is a desired or observed lifecycle state.
type State string

const (
	// StatePresent means the resource should exist (or was observed to exist).
	StatePresent State = "present"
	// StateAbsent means the resource should not exist (or was not observed).
	StateAbsent State = "absent"
)

// ParseState parses a state string from the command line.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePresent, StateAbsent:
		return State(s), nil
	default:
		return "", fmt.Errorf("invalid state %q: must be %q or %q", s, StatePresent, StateAbsent)
	}
}

// Phase defines the interface for one reconciliation phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Reconcile checks the remote state this phase owns and applies the
	// minimal mutation needed to converge it.
	Reconcile(ctx *Context) error
}
