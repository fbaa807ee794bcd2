package common

import (
	"fmt"
	"io"

	"github.com/nspcc-dev/pngme/cmd/pngme/config"
	loggerconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/logger"
	"github.com/nspcc-dev/pngme/pkg/util/logger"
	"go.uber.org/zap"
)

// Env is an environment shared by all commands. It is filled before any
// command is executed.
type Env struct {
	Config *config.Config
	Log    *zap.Logger
}

// Init reads configuration from the file at cfgPath (or from the default
// location if cfgPath is empty) and builds a logger writing to logOut.
// verbose forces debug level regardless of the configuration.
func (x *Env) Init(cfgPath string, verbose bool, logOut io.Writer) error {
	opt := config.WithOptionalConfigFile(config.DefaultPath)
	if cfgPath != "" {
		opt = config.WithConfigFile(cfgPath)
	}

	c, err := config.New(config.Prm{}, opt)
	if err != nil {
		return err
	}

	err = c.Validate()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var prm logger.Prm

	lvl := loggerconfig.Level(c)
	if verbose {
		lvl = "debug"
	}

	if err := prm.SetLevelString(lvl); err != nil {
		return fmt.Errorf("invalid logger level: %w", err)
	}

	if err := prm.SetFormat(loggerconfig.Format(c)); err != nil {
		return err
	}

	prm.SetOutput(logOut)

	x.Config = c
	x.Log = logger.NewLogger(prm)

	if used := c.Used(); used != "" {
		x.Log.Debug("configuration loaded", zap.String("file", used))
	}

	return nil
}
