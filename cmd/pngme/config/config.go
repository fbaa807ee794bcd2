package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
// Names are of string type.
type Config struct {
	v *viper.Viper

	path []string
}

const separator = "."

// EnvPrefix is a prefix of ENV variables related to pngme configuration.
const EnvPrefix = "pngme"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"

// DefaultPath is a location of the configuration file used when no other
// file is specified.
const DefaultPath = "~/.config/pngme/config.yaml"

// Prm groups required parameters of the Config.
type Prm struct{}

// Option is a Config constructor option.
type Option func(*opts)

type opts struct {
	path     string
	optional bool
}

func defaultOpts() *opts {
	return new(opts)
}

// WithConfigFile returns an option to read configuration values from the
// file. The file must exist.
func WithConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
		o.optional = false
	}
}

// WithOptionalConfigFile is similar to WithConfigFile but a missing file is
// silently skipped. Leading `~` is expanded to the home directory.
func WithOptionalConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
		o.optional = true
	}
}

// New creates a new Config instance.
//
// If file option is provided (WithConfigFile),
// configuration values are read from it.
// Otherwise, Config is a degenerate tree.
// Values can always be overridden with PNGME_* environment variables.
func New(_ Prm, options ...Option) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, EnvSeparator))

	o := defaultOpts()
	for i := range options {
		options[i](o)
	}

	if o.path != "" {
		path, err := homedir.Expand(o.path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}

		if o.optional {
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				return &Config{v: v}, nil
			}
		}

		v.SetConfigFile(path)

		err = v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		v: v,
	}, nil
}

// Used returns path to the configuration file in use. Returns empty string
// when Config is not backed by a file.
func (x *Config) Used() string {
	return x.v.ConfigFileUsed()
}
