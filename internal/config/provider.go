// SPDX-License-Identifier: MPL-2.0

package config

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads configuration using defaults and any global overrides.
// It is the convenience entry point used by the CLI layer.
func Load() (*Config, error) {
	cfg, _, err := loadWithOptions(LoadOptions{ConfigFilePath: configFilePathOverride})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvedPath returns the path of the config file that Load would read,
// or the empty string when only defaults apply.
func ResolvedPath() (string, error) {
	_, path, err := loadWithOptions(LoadOptions{ConfigFilePath: configFilePathOverride})
	if err != nil {
		return "", err
	}
	return path, nil
}
