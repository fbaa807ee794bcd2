package commonflags

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/config"
	"github.com/spf13/pflag"
)

// Common CLI flag keys, shorthands, default
// values and their usage descriptions.
const (
	Config          = "config"
	ConfigShorthand = "c"
	ConfigDefault   = ""
	ConfigUsage     = "Path to the configuration file (default is " + config.DefaultPath + ")"

	Verbose          = "verbose"
	VerboseShorthand = "v"
	VerboseUsage     = "Verbose output (debug logs)"

	Version      = "version"
	VersionUsage = "Application version"

	Compress      = "compress"
	CompressUsage = "Compress the message with zstd (overrides encode.compress config value)"

	Format          = "format"
	FormatShorthand = "f"
	FormatUsage     = "Output format: table, yaml or json (default is table for terminal and yaml otherwise)"
)

// InitRoot adds global flags:
// - Config,
// - Verbose.
func InitRoot(ff *pflag.FlagSet) {
	ff.StringP(Config, ConfigShorthand, ConfigDefault, ConfigUsage)
	ff.BoolP(Verbose, VerboseShorthand, false, VerboseUsage)
}
