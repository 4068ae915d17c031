package handlers

import (
	"context"
	"log"

	"github.com/chaperone/vioctl/internal/reconcile"
	"github.com/chaperone/vioctl/internal/reconcile/bootstrap"
)

// VROpsConfigure handles the vrops configure command.
//
// The overall appliance state probe is a stub that always reports
// absent (see bootstrap.CheckState), so a "present" run always replays
// the bootstrap checklist. Each phase still skips work it finds already
// done, and an "absent" run reports no change.
func VROpsConfigure(ctx context.Context, configPath, state string) error {
	desired, err := reconcile.ParseState(state)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := cfg.ValidateVROps(); err != nil {
		return err
	}

	rctx := reconcile.NewContext(ctx, cfg, desired)
	current := bootstrap.CheckState()

	switch {
	case desired == current:
		rctx.Result.SetMsg("appliance state already matches, nothing to do")

	case desired == reconcile.StateAbsent && current == reconcile.StatePresent:
		// Unreachable until CheckState grows a real probe; kept for
		// parity with the present/absent contract.
		rctx.Result.SetMsg("appliance teardown is not supported")

	case desired == reconcile.StatePresent && current == reconcile.StateAbsent:
		log.Printf("Bootstrapping vROPs appliance %s", cfg.VROps.Host)

		api := newApplianceAPI(cfg.VROps)
		if err := reconcile.RunPhases(rctx, bootstrap.Phases(api)); err != nil {
			return err
		}

		if rctx.Result.Changed {
			rctx.Result.SetMsg("appliance bootstrap applied")
		} else {
			rctx.Result.SetMsg("appliance already configured")
		}
	}

	return rctx.Result.Write(resultWriter)
}
