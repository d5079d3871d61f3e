package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "notegen.yaml"

// Config mirrors the notegen.yaml file. Command-line flags override it.
type Config struct {
	Source  string   `yaml:"source"`
	Table   *int     `yaml:"table"`
	Format  string   `yaml:"format"`
	Package string   `yaml:"package"`
	Type    string   `yaml:"type"`
	Include []string `yaml:"include"`
	Output  string   `yaml:"output"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the config into generator options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Table != nil {
		opts = append(opts, WithTableIndex(*c.Table))
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(c.Format))
	}
	if c.Package != "" {
		opts = append(opts, WithPackage(c.Package))
	}
	if c.Type != "" {
		opts = append(opts, WithTypeName(c.Type))
	}
	if len(c.Include) > 0 {
		opts = append(opts, WithInclude(c.Include...))
	}
	return opts
}
