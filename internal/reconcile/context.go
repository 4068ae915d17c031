package reconcile

import (
	"context"

	"github.com/chaperone/vioctl/internal/config"
)

// Context wraps the dependencies and accumulated result shared by the
// phases of a reconciliation run.
type Context struct {
	context.Context
	Config   *config.Config
	Desired  State
	Result   *Result
	Observer Observer
}

// NewContext creates a new reconciliation context with an empty result.
func NewContext(ctx context.Context, cfg *config.Config, desired State) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Desired:  desired,
		Result:   &Result{},
		Observer: NewConsoleObserver(),
	}
}
