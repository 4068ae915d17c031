package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chaperone/vioctl/internal/config"
)

// WriteYAML writes the configuration to path. The file is created with
// owner-only permissions since it may carry credentials.
func WriteYAML(cfg *config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
