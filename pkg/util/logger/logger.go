package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatJSON    = "json"
	formatConsole = "console"
)

// Prm groups logger parameters. Zero value writes info and above records
// to stderr in console format.
type Prm struct {
	level    zapcore.Level
	encoding string
	out      io.Writer
}

// SetLevelString sets minimum logging level: debug, info, warn, error,
// dpanic, panic or fatal.
func (p *Prm) SetLevelString(s string) error {
	return p.level.UnmarshalText([]byte(s))
}

// SetFormat sets output format: console (human-readable) or json.
func (p *Prm) SetFormat(s string) error {
	switch f := strings.ToLower(s); f {
	case formatConsole, formatJSON:
		p.encoding = f
		return nil
	default:
		return fmt.Errorf("unsupported logger format %q", s)
	}
}

// SetOutput sets destination of the log records.
func (p *Prm) SetOutput(w io.Writer) {
	p.out = w
}

// NewLogger is a logger's constructor.
func NewLogger(p Prm) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if p.encoding == formatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	var ws zapcore.WriteSyncer = os.Stderr
	if p.out != nil {
		ws = zapcore.AddSync(p.out)
	}

	return zap.New(
		zapcore.NewCore(enc, zapcore.Lock(ws), p.level),
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
}
