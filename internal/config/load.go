package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file and applies
// defaults. Per-subcommand validation is left to the callers since a config
// file may legitimately carry only one of the two sections.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&cfg, rawConfig)

	return &cfg, nil
}

// applyDefaults fills in the defaults the original playbooks assumed.
// Default-true booleans consult the raw document so an explicit `false`
// survives decoding.
func applyDefaults(cfg *Config, raw map[string]interface{}) {
	if cfg.Keystone.UserDomainID == "" {
		cfg.Keystone.UserDomainID = "default"
	}
	if cfg.Keystone.ProjectDomainID == "" {
		cfg.Keystone.ProjectDomainID = "default"
	}
	if cfg.Project.DomainID == "" {
		cfg.Project.DomainID = "default"
	}
	if cfg.Project.Description == "" && cfg.Project.Name != "" {
		cfg.Project.Description = fmt.Sprintf("New Project: %s", cfg.Project.Name)
	}

	if !explicitlySet(raw, "project", "enabled") {
		cfg.Project.Enabled = true
	}
	// VIO endpoints and fresh appliances present self-signed certificates,
	// so certificate validation defaults to off.
	if !explicitlySet(raw, "keystone", "insecure") {
		cfg.Keystone.Insecure = true
	}
	if !explicitlySet(raw, "vrops", "insecure") {
		cfg.VROps.Insecure = true
	}

	if cfg.Keystone.Password == "" {
		cfg.Keystone.Password = os.Getenv("OS_PASSWORD")
	}
	if cfg.VROps.Password == "" {
		cfg.VROps.Password = os.Getenv("VROPS_PASSWORD")
	}
}

// explicitlySet reports whether the given section key appears in the raw
// config document.
func explicitlySet(raw map[string]interface{}, section, key string) bool {
	sectionMap, ok := raw[section].(map[string]interface{})
	if !ok {
		return false
	}
	_, set := sectionMap[key]
	return set
}
