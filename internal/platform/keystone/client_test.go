package keystone

import (
	"testing"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/stretchr/testify/assert"
)

// TestRealClient_InterfaceCompliance verifies RealClient implements ProjectManager.
func TestRealClient_InterfaceCompliance(_ *testing.T) {
	var _ ProjectManager = (*RealClient)(nil)
}

func TestFromAPIProject(t *testing.T) {
	p := fromAPIProject(projects.Project{
		ID:          "abc123",
		Name:        "demo",
		DomainID:    "default",
		Description: "New Project: demo",
		Enabled:     true,
	})

	assert.Equal(t, "abc123", p.ID)
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, "default", p.DomainID)
	assert.Equal(t, "New Project: demo", p.Description)
	assert.True(t, p.Enabled)
}
