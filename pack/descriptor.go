package pack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/modforge/engine"
)

// Descriptor is the pack.yaml metadata of a content pack.
type Descriptor struct {
	Namespace   string `yaml:"namespace"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// LoadDescriptor reads and validates a pack.yaml file.
func LoadDescriptor(path string) (*Descriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack descriptor: %w", err)
	}
	var d Descriptor
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing pack descriptor %s: %w", path, err)
	}
	if d.Namespace == "" {
		return nil, fmt.Errorf("pack descriptor %s: namespace is required", path)
	}
	if _, err := engine.NewID(d.Namespace, "probe"); err != nil {
		return nil, fmt.Errorf("pack descriptor %s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = d.Namespace
	}
	return &d, nil
}
