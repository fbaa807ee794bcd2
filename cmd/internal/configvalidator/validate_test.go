package configvalidator_test

import (
	"testing"

	"github.com/nspcc-dev/pngme/cmd/internal/configvalidator"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Logger struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logger"`
	Enabled bool
}

func TestCheckForUnknownFields(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    map[string]any
		ok   bool
	}{
		{name: "empty", m: nil, ok: true},
		{name: "valid", m: map[string]any{
			"logger":  map[string]any{"level": "debug"},
			"Enabled": true,
		}, ok: true},
		{name: "empty section", m: map[string]any{
			"logger": map[string]any{},
		}, ok: true},
		{name: "unknown top-level", m: map[string]any{
			"loger": map[string]any{"level": "debug"},
		}},
		{name: "unknown nested", m: map[string]any{
			"logger": map[string]any{"lvl": "debug"},
		}},
		{name: "value instead of section", m: map[string]any{
			"logger": "debug",
		}},
		{name: "section instead of value", m: map[string]any{
			"logger": map[string]any{"level": map[string]any{"value": "debug"}},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := configvalidator.CheckForUnknownFields(tc.m, testConfig{})
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, configvalidator.ErrUnknownField)
			}
		})
	}
}
