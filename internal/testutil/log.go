package testutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelKey   = "level"
	logMessageKey = "msg"
	logTimeKey    = "ts"
)

// LogEntry represents single [zap.Logger] entry.
type LogEntry struct {
	Level   zapcore.Level
	Message string
	// Integer values are represented as [json.Number].
	Fields map[string]any
}

// LogBuffer is a memory buffer for JSON-encoded [zap.Logger] entries. It can
// be used as an output of any logger producing JSON lines with "level", "msg"
// and "ts" keys.
type LogBuffer struct {
	t testing.TB
	l sync.Mutex
	b bytes.Buffer
}

// NewLogBuffer returns empty LogBuffer.
func NewLogBuffer(t testing.TB) *LogBuffer {
	return &LogBuffer{t: t}
}

// NewBufferedLogger returns buffered logger for testing.
//
// Entries with severity less than minLevel are never written.
func NewBufferedLogger(t testing.TB, minLevel zapcore.Level) (*zap.Logger, *LogBuffer) {
	lb := NewLogBuffer(t)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.LevelKey = logLevelKey
	encCfg.MessageKey = logMessageKey
	encCfg.TimeKey = logTimeKey

	zc := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(lb),
		minLevel,
	)

	return zap.New(zc), lb
}

// Write implements [io.Writer].
func (x *LogBuffer) Write(p []byte) (int, error) {
	x.l.Lock()
	defer x.l.Unlock()
	return x.b.Write(p)
}

// AssertEmpty asserts that log is empty.
func (x *LogBuffer) AssertEmpty() {
	require.Empty(x.t, x.collectEntries())
}

// AssertEqual asserts that log consists of given ordered entries.
func (x *LogBuffer) AssertEqual(es []LogEntry) {
	got := x.collectEntries()
	require.Len(x.t, got, len(es))
	for i := range es {
		require.Equal(x.t, es[i], got[i], i)
	}
}

// AssertContains asserts that log contains at least one entry with level and
// message of e. Only fields listed in e are compared, others are ignored.
func (x *LogBuffer) AssertContains(e LogEntry) {
	for _, got := range x.collectEntries() {
		if got.Level == e.Level && got.Message == e.Message && containsFields(got.Fields, e.Fields) {
			return
		}
	}

	require.Failf(x.t, "log entry not found", "%+v", e)
}

// AssertNoMessage asserts that log has no entries with the given message.
func (x *LogBuffer) AssertNoMessage(msg string) {
	for _, got := range x.collectEntries() {
		require.NotEqual(x.t, msg, got.Message)
	}
}

func containsFields(got, exp map[string]any) bool {
	for k, v := range exp {
		if gv, ok := got[k]; !ok || gv != v {
			return false
		}
	}
	return true
}

func (x *LogBuffer) collectEntries() []LogEntry {
	x.l.Lock()
	data := x.b.String()
	x.l.Unlock()

	var lines []string
	for _, line := range strings.Split(data, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	res := make([]LogEntry, len(lines))

	var err error
	for i := range lines {
		dec := json.NewDecoder(strings.NewReader(lines[i]))
		dec.UseNumber()

		var m map[string]any
		require.NoError(x.t, dec.Decode(&m), i)

		v, ok := m[logLevelKey]
		require.True(x.t, ok, i)
		require.IsType(x.t, "", v)

		res[i].Level, err = zapcore.ParseLevel(v.(string))
		require.NoError(x.t, err, i)

		v, ok = m[logMessageKey]
		require.True(x.t, ok, i)
		require.IsType(x.t, "", v)
		res[i].Message = v.(string)

		delete(m, logTimeKey)
		delete(m, logLevelKey)
		delete(m, logMessageKey)
		res[i].Fields = m
	}

	return res
}
