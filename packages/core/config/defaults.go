package config

import "os"

// DefaultFileMode is the permission of the written .env file.
const DefaultFileMode os.FileMode = 0644

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Output:   "",
		NoColor:  nil,
		Verbose:  nil,
		FileMode: "",
	}
}
