package config

import (
	"github.com/nspcc-dev/pngme/cmd/internal/configvalidator"
)

// validConfig lists all supported configuration values.
type validConfig struct {
	Logger struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logger"`

	Encode struct {
		Compress bool `mapstructure:"compress"`
	} `mapstructure:"encode"`

	Print struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"print"`
}

// Validate checks that configuration contains supported values only.
func (x *Config) Validate() error {
	return configvalidator.CheckForUnknownFields(x.v.AllSettings(), validConfig{})
}
