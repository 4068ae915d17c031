package bootstrap

import (
	"fmt"
	"strings"

	"github.com/chaperone/vioctl/internal/reconcile"
)

// NTPPhase converges the appliance NTP server list. It diffs the desired
// list against the current one and only pushes the servers that are
// missing; servers already configured are never re-sent.
type NTPPhase struct {
	api ApplianceAPI
}

// Name implements reconcile.Phase.
func (p *NTPPhase) Name() string {
	return "ntp"
}

// Reconcile implements reconcile.Phase.
func (p *NTPPhase) Reconcile(ctx *reconcile.Context) error {
	desired := ctx.Config.VROps.NTPServers
	if len(desired) == 0 {
		ctx.Observer.Printf("[%s] no NTP servers configured, skipping", p.Name())
		return nil
	}

	current, err := p.api.GetNTPServers(ctx)
	if err != nil {
		return fmt.Errorf("query NTP config: %w", err)
	}

	update := missingServers(desired, current)
	if len(update) == 0 {
		ctx.Observer.Event(reconcile.Event{
			Type:    reconcile.EventResourceExists,
			Phase:   p.Name(),
			Message: "NTP servers already configured",
		})
		return nil
	}

	if err := p.api.SetNTPServers(ctx, update); err != nil {
		return fmt.Errorf("push NTP servers: %w", err)
	}

	ctx.Result.MarkChanged()
	ctx.Observer.Event(reconcile.Event{
		Type:    reconcile.EventResourceUpdated,
		Phase:   p.Name(),
		Message: fmt.Sprintf("NTP servers added: %s", strings.Join(update, ", ")),
	})
	return nil
}

// missingServers returns the desired servers not present in current,
// preserving the desired order. Order differences alone yield nothing.
func missingServers(desired, current []string) []string {
	have := make(map[string]bool, len(current))
	for _, s := range current {
		have[s] = true
	}

	var update []string
	for _, s := range desired {
		if !have[s] {
			update = append(update, s)
		}
	}
	return update
}
