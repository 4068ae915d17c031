package bootstrap

import (
	"fmt"
	"time"

	"github.com/chaperone/vioctl/internal/reconcile"
	"github.com/chaperone/vioctl/internal/util/retry"
)

// ReadyPhase waits for the appliance API to answer. A freshly deployed
// appliance can take a while to bring its admin endpoint up, so the check
// polls with backoff before giving up.
type ReadyPhase struct {
	api ApplianceAPI

	// MaxRetries and InitialDelay override the poll schedule; zero
	// values select the defaults below.
	MaxRetries   int
	InitialDelay time.Duration
}

// Name implements reconcile.Phase.
func (p *ReadyPhase) Name() string {
	return "ready"
}

// Reconcile implements reconcile.Phase.
func (p *ReadyPhase) Reconcile(ctx *reconcile.Context) error {
	maxRetries := p.MaxRetries
	if maxRetries == 0 {
		maxRetries = 5
	}
	initialDelay := p.InitialDelay
	if initialDelay == 0 {
		initialDelay = 2 * time.Second
	}

	err := retry.WithExponentialBackoff(ctx, func() error {
		return p.api.Ready(ctx)
	},
		retry.WithMaxRetries(maxRetries),
		retry.WithInitialDelay(initialDelay),
		retry.WithMaxDelay(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("appliance API should be ready but is not: %w", err)
	}
	return nil
}
