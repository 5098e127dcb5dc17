package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the codegen.yaml config file. Flags override file
// values; the file is optional.
type Config struct {
	Swift struct {
		Output string `yaml:"output"` // path for the generated .swift file
	} `yaml:"swift"`
	Kotlin struct {
		Output  string `yaml:"output"`  // path for the generated .kt file
		Package string `yaml:"package"` // Kotlin package header, required for the Kotlin target
	} `yaml:"kotlin"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
