package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config document fails schema validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the envfile configuration
type Config struct {
	// Output is one of console, actions, json.
	Output  string `yaml:"output,omitempty" json:"output,omitempty"`
	NoColor *bool  `yaml:"noColor,omitempty" json:"noColor,omitempty"`
	Verbose *bool  `yaml:"verbose,omitempty" json:"verbose,omitempty"`

	// FileMode is an octal permission string such as "0600".
	FileMode string `yaml:"fileMode,omitempty" json:"fileMode,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetFileMode parses FileMode, defaulting to 0644
func (c *Config) GetFileMode() (os.FileMode, error) {
	if c.FileMode == "" {
		return DefaultFileMode, nil
	}
	mode, err := strconv.ParseUint(c.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid fileMode %q: %w", c.FileMode, err)
	}
	return os.FileMode(mode).Perm(), nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".envfile.yaml",
	".envfile.yml",
	"envfile.yaml",
	".envfilerc",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes and validates a config document. JSON documents are accepted
// as well since they are valid YAML.
func Parse(data []byte) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if doc == nil {
		return DefaultConfig(), nil
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := config.GetFileMode(); err != nil {
		return nil, err
	}
	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Output != "" {
		result.Output = other.Output
	}
	if other.FileMode != "" {
		result.FileMode = other.FileMode
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}

	return &result
}

// fileHeader is written at the top of saved config files.
const fileHeader = "# envfile configuration\n# output: one of console, actions, json"

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	var doc yaml.Node
	if err := doc.Encode(c); err != nil {
		return err
	}
	doc.HeadComment = fileHeader

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
