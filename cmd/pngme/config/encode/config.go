package encodeconfig

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/config"
)

const subsection = "encode"

// Compress returns the value of "compress" config parameter
// from "encode" section.
//
// Returns false if the value is missing or is not a boolean.
func Compress(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "compress")
}

// SetCompress overrides "compress" config parameter of "encode" section.
func SetCompress(c *config.Config, v bool) {
	c.Sub(subsection).Set("compress", v)
}
