// Package config defines the vioctl configuration file format and loader.
package config

import "fmt"

// Config is the top-level vioctl configuration.
//
// The keystone and project sections drive `vioctl project apply`; the
// vrops section drives `vioctl vrops configure`. Only the sections a
// subcommand needs have to be filled in.
type Config struct {
	Keystone KeystoneConfig `yaml:"keystone"`
	Project  ProjectConfig  `yaml:"project"`
	VROps    VROpsConfig    `yaml:"vrops"`
}

// KeystoneConfig holds Keystone v3 authentication parameters.
type KeystoneConfig struct {
	AuthURL         string `yaml:"auth_url"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	Project         string `yaml:"project"`
	UserDomainID    string `yaml:"user_domain_id"`
	ProjectDomainID string `yaml:"project_domain_id"`
	Insecure        bool   `yaml:"insecure"`
}

// ProjectConfig describes the Keystone project to reconcile.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	DomainID    string `yaml:"domain_id"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
}

// VROpsConfig holds the vROPs appliance connection and bootstrap settings.
type VROpsConfig struct {
	Host       string   `yaml:"host"`
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	NTPServers []string `yaml:"ntp_servers"`

	// SetClusterName enables the optional cluster-naming step, which
	// names the appliance cluster after its host.
	SetClusterName bool `yaml:"set_cluster_name"`
	Insecure       bool `yaml:"insecure"`
}

// ValidateProject checks the fields required for a project reconciliation run.
func (c *Config) ValidateProject() error {
	if c.Keystone.AuthURL == "" {
		return fmt.Errorf("keystone.auth_url is required")
	}
	if c.Keystone.Username == "" {
		return fmt.Errorf("keystone.username is required")
	}
	if c.Keystone.Password == "" {
		return fmt.Errorf("keystone.password is required (or set OS_PASSWORD)")
	}
	if c.Keystone.Project == "" {
		return fmt.Errorf("keystone.project is required")
	}
	if c.Project.Name == "" {
		return fmt.Errorf("project.name is required")
	}
	return nil
}

// ValidateVROps checks the fields required for an appliance bootstrap run.
func (c *Config) ValidateVROps() error {
	if c.VROps.Host == "" {
		return fmt.Errorf("vrops.host is required")
	}
	if c.VROps.Username == "" {
		return fmt.Errorf("vrops.username is required")
	}
	if c.VROps.Password == "" {
		return fmt.Errorf("vrops.password is required (or set VROPS_PASSWORD)")
	}
	return nil
}
