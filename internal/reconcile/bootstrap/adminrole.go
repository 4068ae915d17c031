package bootstrap

import (
	"fmt"

	"github.com/chaperone/vioctl/internal/reconcile"
)

// AdminRolePhase promotes the appliance slice to the ADMIN/DATA/UI roles.
// Promotion is skipped while the appliance reports a role configuration
// already in progress.
type AdminRolePhase struct {
	api ApplianceAPI
}

// Name implements reconcile.Phase.
func (p *AdminRolePhase) Name() string {
	return "adminrole"
}

// Reconcile implements reconcile.Phase.
func (p *AdminRolePhase) Reconcile(ctx *reconcile.Context) error {
	running, err := p.api.AdminRoleStatus(ctx)
	if err != nil {
		return fmt.Errorf("query admin role status: %w", err)
	}

	if running {
		ctx.Observer.Event(reconcile.Event{
			Type:    reconcile.EventResourceExists,
			Phase:   p.Name(),
			Message: "role configuration already in progress",
		})
		return nil
	}

	if err := p.api.SetAdminRole(ctx); err != nil {
		return fmt.Errorf("set admin role: %w", err)
	}

	ctx.Result.MarkChanged()
	ctx.Observer.Event(reconcile.Event{
		Type:    reconcile.EventResourceUpdated,
		Phase:   p.Name(),
		Message: "admin role promotion started",
	})
	return nil
}
