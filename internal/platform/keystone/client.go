// Package keystone provides a wrapper around the OpenStack Keystone v3
// identity API for project lifecycle management.
package keystone

import "context"

// Project is a Keystone project (tenant) with the fields this tool cares
// about. Names are unique within a domain.
type Project struct {
	ID          string
	Name        string
	DomainID    string
	Description string
	Enabled     bool
}

// CreateOpts holds the parameters for creating a project.
type CreateOpts struct {
	Name        string
	DomainID    string
	Description string
	Enabled     bool
}

// ProjectManager defines the interface for managing Keystone projects.
type ProjectManager interface {
	// FindProject looks up a project by name. It returns nil (and no
	// error) when no project with that name exists.
	FindProject(ctx context.Context, name string) (*Project, error)

	// CreateProject creates a new project and returns it with its
	// server-assigned ID.
	CreateProject(ctx context.Context, opts CreateOpts) (*Project, error)

	// DeleteProject deletes a project by ID.
	DeleteProject(ctx context.Context, id string) error
}
