package bootstrap

import (
	"fmt"

	"github.com/chaperone/vioctl/internal/reconcile"
)

// ClusterNamePhase names the appliance cluster after its host. The step
// is opt-in via vrops.set_cluster_name and a no-op when the name already
// matches.
type ClusterNamePhase struct {
	api ApplianceAPI
}

// Name implements reconcile.Phase.
func (p *ClusterNamePhase) Name() string {
	return "clustername"
}

// Reconcile implements reconcile.Phase.
func (p *ClusterNamePhase) Reconcile(ctx *reconcile.Context) error {
	if !ctx.Config.VROps.SetClusterName {
		ctx.Observer.Printf("[%s] cluster naming disabled, skipping", p.Name())
		return nil
	}

	want := ctx.Config.VROps.Host

	got, err := p.api.GetClusterName(ctx)
	if err != nil {
		return fmt.Errorf("query cluster name: %w", err)
	}

	if got == want {
		ctx.Observer.Event(reconcile.Event{
			Type:    reconcile.EventResourceExists,
			Phase:   p.Name(),
			Message: fmt.Sprintf("cluster already named %q", got),
		})
		return nil
	}

	if err := p.api.SetClusterName(ctx, want); err != nil {
		return fmt.Errorf("set cluster name: %w", err)
	}

	ctx.Result.MarkChanged()
	ctx.Observer.Event(reconcile.Event{
		Type:    reconcile.EventResourceUpdated,
		Phase:   p.Name(),
		Message: fmt.Sprintf("cluster named %q", want),
	})
	return nil
}
