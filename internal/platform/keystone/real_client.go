package keystone

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
)

// AuthOptions holds everything needed to authenticate against a Keystone
// v3 endpoint with password credentials and project scope.
type AuthOptions struct {
	AuthURL         string
	Username        string
	Password        string
	ProjectName     string
	UserDomainID    string
	ProjectDomainID string

	// Insecure disables TLS certificate validation. VIO deployments
	// commonly front Keystone with a self-signed certificate.
	Insecure bool
}

// RealClient implements ProjectManager using the Keystone v3 API via
// gophercloud.
type RealClient struct {
	identity *gophercloud.ServiceClient
}

// NewRealClient authenticates against Keystone and returns a client bound
// to the identity v3 service. Authentication failures surface immediately;
// there is no retry.
func NewRealClient(ctx context.Context, opts AuthOptions) (*RealClient, error) {
	provider, err := openstack.NewClient(opts.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("parse auth URL: %w", err)
	}

	if opts.Insecure {
		provider.HTTPClient = http.Client{
			Transport: &http.Transport{
				// #nosec G402 -- VIO endpoints use self-signed certificates
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	ao := gophercloud.AuthOptions{
		IdentityEndpoint: opts.AuthURL,
		Username:         opts.Username,
		Password:         opts.Password,
		DomainID:         opts.UserDomainID,
		Scope: &gophercloud.AuthScope{
			ProjectName: opts.ProjectName,
			DomainID:    opts.ProjectDomainID,
		},
	}

	if err := openstack.Authenticate(ctx, provider, ao); err != nil {
		return nil, fmt.Errorf("keystone authentication failed: %w", err)
	}

	identity, err := openstack.NewIdentityV3(provider, gophercloud.EndpointOpts{})
	if err != nil {
		return nil, fmt.Errorf("locate identity v3 endpoint: %w", err)
	}

	return &RealClient{identity: identity}, nil
}

// FindProject implements ProjectManager.
func (c *RealClient) FindProject(ctx context.Context, name string) (*Project, error) {
	pages, err := projects.List(c.identity, projects.ListOpts{Name: name}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	all, err := projects.ExtractProjects(pages)
	if err != nil {
		return nil, fmt.Errorf("parse project list: %w", err)
	}

	for _, p := range all {
		if p.Name == name {
			return fromAPIProject(p), nil
		}
	}
	return nil, nil
}

// CreateProject implements ProjectManager.
func (c *RealClient) CreateProject(ctx context.Context, opts CreateOpts) (*Project, error) {
	enabled := opts.Enabled
	created, err := projects.Create(ctx, c.identity, projects.CreateOpts{
		Name:        opts.Name,
		DomainID:    opts.DomainID,
		Description: opts.Description,
		Enabled:     &enabled,
	}).Extract()
	if err != nil {
		return nil, fmt.Errorf("create project %q: %w", opts.Name, err)
	}
	return fromAPIProject(*created), nil
}

// DeleteProject implements ProjectManager.
func (c *RealClient) DeleteProject(ctx context.Context, id string) error {
	if err := projects.Delete(ctx, c.identity, id).ExtractErr(); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

func fromAPIProject(p projects.Project) *Project {
	return &Project{
		ID:          p.ID,
		Name:        p.Name,
		DomainID:    p.DomainID,
		Description: p.Description,
		Enabled:     p.Enabled,
	}
}
