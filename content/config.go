package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RegistryConfig is the YAML-driven description of which (edifact format,
// format version) bundles a deployment expects to have registered.
type RegistryConfig struct {
	Bundles []BundleDeclaration `yaml:"bundles"`
}

// BundleDeclaration names one expected bundle registration. Enabled lets an
// operator declare a bundle in config without wiring it yet, and have
// tooling flag the gap instead of silently misrouting to UnknownKeyEvaluator
// at evaluation time.
type BundleDeclaration struct {
	EdifactFormat string `yaml:"edifact_format"`
	FormatVersion string `yaml:"format_version"`
	Enabled       bool   `yaml:"enabled"`
}

// DefaultRegistryConfig returns an empty configuration; callers register
// bundles in Go code by default and only need a config file when they want
// declarative documentation of what's expected to be wired.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{Bundles: []BundleDeclaration{}}
}

// LoadRegistryConfig reads and parses a YAML RegistryConfig from path.
func LoadRegistryConfig(path string) (RegistryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegistryConfig{}, fmt.Errorf("reading registry config %s: %w", path, err)
	}
	var cfg RegistryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RegistryConfig{}, fmt.Errorf("parsing registry config %s: %w", path, err)
	}
	return cfg, nil
}

// MissingBundles returns the declared-and-enabled keys from cfg that have
// no corresponding registration in r, for startup validation.
func (cfg RegistryConfig) MissingBundles(r *Registry) []BundleKey {
	var missing []BundleKey
	for _, decl := range cfg.Bundles {
		if !decl.Enabled {
			continue
		}
		key := BundleKey{EdifactFormat: decl.EdifactFormat, FormatVersion: decl.FormatVersion}
		if _, ok := r.Lookup(key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
