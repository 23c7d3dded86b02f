package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// CLIDefaults holds command defaults that can be overridden from the environment.
// Explicit flags always win over these values.
type CLIDefaults struct {
	Format    string `env:"PROJECTOR_FORMAT"     envDefault:"console"`
	Strategy  string `env:"PROJECTOR_STRATEGY"`
	OutputDir string `env:"PROJECTOR_OUTPUT_DIR"`
	Debug     bool   `env:"PROJECTOR_DEBUG"`
}

// ParseEnv parses environment variables into the target struct.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadCLIDefaults reads the PROJECTOR_* environment variables.
func LoadCLIDefaults() (CLIDefaults, error) {
	var defaults CLIDefaults
	if err := ParseEnv(&defaults); err != nil {
		return CLIDefaults{}, err
	}
	return defaults, nil
}
