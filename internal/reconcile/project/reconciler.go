// Package project reconciles a Keystone project to a desired state.
package project

import (
	"fmt"

	"github.com/chaperone/vioctl/internal/platform/keystone"
	"github.com/chaperone/vioctl/internal/reconcile"
)

// Reconciler converges a named Keystone project to the desired state.
// It queries the current state first and only issues a create or delete
// when the two differ. API errors abort the run; there is no retry.
type Reconciler struct {
	projects keystone.ProjectManager
}

// NewReconciler creates a project reconciler backed by the given manager.
func NewReconciler(projects keystone.ProjectManager) *Reconciler {
	return &Reconciler{projects: projects}
}

// Name implements reconcile.Phase.
func (r *Reconciler) Name() string {
	return "project"
}

// Reconcile implements reconcile.Phase.
func (r *Reconciler) Reconcile(ctx *reconcile.Context) error {
	spec := ctx.Config.Project

	existing, err := r.projects.FindProject(ctx, spec.Name)
	if err != nil {
		return fmt.Errorf("query project %q: %w", spec.Name, err)
	}

	current := reconcile.StateAbsent
	if existing != nil {
		current = reconcile.StatePresent
	}

	if current == ctx.Desired {
		if existing != nil {
			ctx.Result.SetResult(existing.ID)
			ctx.Result.SetProjectID(existing.ID)
		}
		ctx.Result.SetMsg(fmt.Sprintf("project %q already %s", spec.Name, current))
		ctx.Observer.Event(reconcile.Event{
			Type:     reconcile.EventResourceExists,
			Phase:    r.Name(),
			Resource: spec.Name,
			Message:  fmt.Sprintf("already %s", current),
		})
		return nil
	}

	switch ctx.Desired {
	case reconcile.StatePresent:
		return r.create(ctx, spec.Name, spec.DomainID, spec.Description, spec.Enabled)
	case reconcile.StateAbsent:
		return r.delete(ctx, spec.Name, existing.ID)
	default:
		return fmt.Errorf("unknown desired state %q", ctx.Desired)
	}
}

func (r *Reconciler) create(ctx *reconcile.Context, name, domainID, description string, enabled bool) error {
	ctx.Observer.Event(reconcile.Event{
		Type:     reconcile.EventResourceCreating,
		Phase:    r.Name(),
		Resource: name,
		Message:  "creating project",
	})

	created, err := r.projects.CreateProject(ctx, keystone.CreateOpts{
		Name:        name,
		DomainID:    domainID,
		Description: description,
		Enabled:     enabled,
	})
	if err != nil {
		return fmt.Errorf("create project %q: %w", name, err)
	}

	ctx.Result.MarkChanged()
	ctx.Result.SetResult(created.ID)
	ctx.Result.SetProjectID(created.ID)

	ctx.Observer.Event(reconcile.Event{
		Type:     reconcile.EventResourceCreated,
		Phase:    r.Name(),
		Resource: name,
		Message:  "project created",
		Fields:   map[string]string{"id": created.ID},
	})
	return nil
}

func (r *Reconciler) delete(ctx *reconcile.Context, name, id string) error {
	ctx.Observer.Event(reconcile.Event{
		Type:     reconcile.EventResourceDeleting,
		Phase:    r.Name(),
		Resource: name,
		Message:  "deleting project",
	})

	if err := r.projects.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project %q: %w", name, err)
	}

	ctx.Result.MarkChanged()
	ctx.Result.SetResult("deleted")

	ctx.Observer.Event(reconcile.Event{
		Type:     reconcile.EventResourceDeleted,
		Phase:    r.Name(),
		Resource: name,
		Message:  "project deleted",
	})
	return nil
}
