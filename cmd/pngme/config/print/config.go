package printconfig

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/config"
)

const subsection = "print"

// Format returns the value of "format" config parameter
// from "print" section.
//
// Returns empty string if the value is not set, output format is selected
// automatically then.
func Format(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection), "format")
}

// SetFormat overrides "format" config parameter of "print" section.
func SetFormat(c *config.Config, v string) {
	c.Sub(subsection).Set("format", v)
}
