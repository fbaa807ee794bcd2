package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/pngme/cmd/internal/configvalidator"
	"github.com/nspcc-dev/pngme/cmd/pngme/config"
	encodeconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/encode"
	loggerconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/logger"
	printconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/print"
	"github.com/stretchr/testify/require"
)

const (
	testYAML = `
logger:
  level: debug
  format: json
encode:
  compress: true
print:
  format: yaml
`
	testJSON = `{
  "logger": {"level": "debug", "format": "json"},
  "encode": {"compress": true},
  "print": {"format": "yaml"}
}`
)

func writeFile(t *testing.T, name, data string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// forEachFileType passes configs read from the same values stored as YAML
// and JSON.
func forEachFileType(t *testing.T, f func(*config.Config)) {
	for _, path := range []string{
		writeFile(t, "config.yaml", testYAML),
		writeFile(t, "config.json", testJSON),
	} {
		c, err := config.New(config.Prm{}, config.WithConfigFile(path))
		require.NoError(t, err)
		require.Equal(t, path, c.Used())
		f(c)
	}
}

func emptyConfig(t *testing.T) *config.Config {
	c, err := config.New(config.Prm{})
	require.NoError(t, err)
	return c
}

func TestSections(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := emptyConfig(t)

		require.Empty(t, c.Used())
		require.Equal(t, loggerconfig.LevelDefault, loggerconfig.Level(c))
		require.Equal(t, loggerconfig.FormatDefault, loggerconfig.Format(c))
		require.False(t, encodeconfig.Compress(c))
		require.Empty(t, printconfig.Format(c))
	})

	t.Run("file", func(t *testing.T) {
		forEachFileType(t, func(c *config.Config) {
			require.Equal(t, "debug", loggerconfig.Level(c))
			require.Equal(t, "json", loggerconfig.Format(c))
			require.True(t, encodeconfig.Compress(c))
			require.Equal(t, "yaml", printconfig.Format(c))
		})
	})
}

func TestEnv(t *testing.T) {
	t.Setenv("PNGME_LOGGER_LEVEL", "error")
	t.Setenv("PNGME_ENCODE_COMPRESS", "true")

	require.Equal(t, "error", loggerconfig.Level(emptyConfig(t)))
	require.True(t, encodeconfig.Compress(emptyConfig(t)))

	forEachFileType(t, func(c *config.Config) {
		require.Equal(t, "error", loggerconfig.Level(c))
	})
}

func TestConfig_Set(t *testing.T) {
	forEachFileType(t, func(c *config.Config) {
		c.Sub("print").Set("format", "table")
		require.Equal(t, "table", printconfig.Format(c))

		c.Sub("encode").Set("compress", false)
		require.False(t, encodeconfig.Compress(c))

		printconfig.SetFormat(c, "json")
		require.Equal(t, "json", printconfig.Format(c))

		encodeconfig.SetCompress(c, true)
		require.True(t, encodeconfig.Compress(c))
	})
}

func TestCast(t *testing.T) {
	c := emptyConfig(t)
	sub := c.Sub("section")

	sub.Set("str", "value")
	sub.Set("bool", "not a bool")

	require.Equal(t, "value", config.StringSafe(sub, "str"))
	require.False(t, config.BoolSafe(sub, "bool"))
	require.Empty(t, config.StringSafe(sub, "missing"))
	require.Nil(t, sub.Value("missing"))
	require.Nil(t, c.Value("str"))
}

func TestNew(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := config.New(config.Prm{}, config.WithConfigFile(missing))
	require.Error(t, err)

	c, err := config.New(config.Prm{}, config.WithOptionalConfigFile(missing))
	require.NoError(t, err)
	require.Empty(t, c.Used())

	_, err = config.New(config.Prm{}, config.WithOptionalConfigFile(writeFile(t, "config.yaml", "logger: [")))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, emptyConfig(t).Validate())

	forEachFileType(t, func(c *config.Config) {
		require.NoError(t, c.Validate())
	})

	for _, data := range []string{
		"loger:\n  level: debug\n",
		"logger:\n  lvl: debug\n",
		"encode: true\n",
	} {
		c, err := config.New(config.Prm{}, config.WithConfigFile(writeFile(t, "config.yaml", data)))
		require.NoError(t, err)
		require.ErrorIs(t, c.Validate(), configvalidator.ErrUnknownField, data)
	}
}
