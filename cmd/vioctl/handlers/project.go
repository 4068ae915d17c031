package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/chaperone/vioctl/internal/platform/keystone"
	"github.com/chaperone/vioctl/internal/reconcile"
	"github.com/chaperone/vioctl/internal/reconcile/project"
)

// ProjectApply handles the project apply command.
//
// It loads the configuration, authenticates against Keystone, and
// reconciles the named project to the desired state. The structured
// result document is written to stdout.
func ProjectApply(ctx context.Context, configPath, state, nameOverride string) error {
	desired, err := reconcile.ParseState(state)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if nameOverride != "" {
		autoDescription := cfg.Project.Description == "" ||
			cfg.Project.Description == fmt.Sprintf("New Project: %s", cfg.Project.Name)
		cfg.Project.Name = nameOverride
		if autoDescription {
			cfg.Project.Description = fmt.Sprintf("New Project: %s", nameOverride)
		}
	}

	if err := cfg.ValidateProject(); err != nil {
		return err
	}

	log.Printf("Reconciling project %q to state %s", cfg.Project.Name, desired)

	projects, err := newProjectManager(ctx, keystone.AuthOptions{
		AuthURL:         cfg.Keystone.AuthURL,
		Username:        cfg.Keystone.Username,
		Password:        cfg.Keystone.Password,
		ProjectName:     cfg.Keystone.Project,
		UserDomainID:    cfg.Keystone.UserDomainID,
		ProjectDomainID: cfg.Keystone.ProjectDomainID,
		Insecure:        cfg.Keystone.Insecure,
	})
	if err != nil {
		return fmt.Errorf("failed to get keystone client: %w", err)
	}

	rctx := reconcile.NewContext(ctx, cfg, desired)

	phases := []reconcile.Phase{project.NewReconciler(projects)}
	if err := reconcile.RunPhases(rctx, phases); err != nil {
		return err
	}

	return rctx.Result.Write(resultWriter)
}
