package config

import (
	"strings"
)

// Sub returns subsection of the Config by name.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:    x.v,
		path: append(x.path[:len(x.path):len(x.path)], name),
	}
}

// Value returns configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. StringSafe).
// Note: casting via Go `.()` operator is not
// recommended.
func (x *Config) Value(name string) any {
	return x.v.Get(strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator))
}

// Set overrides configuration value by name, e.g. with a command-line flag.
func (x *Config) Set(name string, value any) {
	x.v.Set(strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator), value)
}
