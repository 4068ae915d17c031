package bootstrap

import (
	"errors"
	"fmt"

	"github.com/chaperone/vioctl/internal/platform/vrops"
	"github.com/chaperone/vioctl/internal/reconcile"
)

// AdminPasswordPhase sets the first-boot admin password. The appliance
// accepts the call exactly once; the "already set" answer from a prior
// run counts as converged.
type AdminPasswordPhase struct {
	api ApplianceAPI
}

// Name implements reconcile.Phase.
func (p *AdminPasswordPhase) Name() string {
	return "adminpassword"
}

// Reconcile implements reconcile.Phase.
func (p *AdminPasswordPhase) Reconcile(ctx *reconcile.Context) error {
	err := p.api.SetInitialAdminPassword(ctx, ctx.Config.VROps.Password)
	if errors.Is(err, vrops.ErrPasswordAlreadySet) {
		ctx.Observer.Event(reconcile.Event{
			Type:    reconcile.EventResourceExists,
			Phase:   p.Name(),
			Message: "initial admin password already set",
		})
		return nil
	}
	if err != nil {
		return fmt.Errorf("set initial admin password: %w", err)
	}

	ctx.Result.MarkChanged()
	ctx.Observer.Event(reconcile.Event{
		Type:    reconcile.EventResourceCreated,
		Phase:   p.Name(),
		Message: "initial admin password set",
	})
	return nil
}
