// Package logging builds the prefixed console loggers used by the test
// runner: "[INFO] name: message" on stdout, warnings and errors on stderr.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level prefixes.
const (
	InfoPrefix = "[INFO]"
	WarnPrefix = "[WARN]"
	ErrPrefix  = "[ERR ]"
)

// Console routes log output by level.
type Console struct {
	Out io.Writer // debug and info
	Err io.Writer // warn and above
}

// Logger returns a logger that prefixes every line with the level tag and
// name. An empty name is printed as "unknown".
func (c Console) Logger(name string) *zap.Logger {
	if name == "" {
		name = "unknown"
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		EncodeLevel:      encodeLevel,
		EncodeName:       encodeName,
		ConsoleSeparator: " ",
	})
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l < zapcore.WarnLevel })
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= zapcore.WarnLevel })
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(c.Out), low),
		zapcore.NewCore(enc.Clone(), zapcore.AddSync(c.Err), high),
	)
	return zap.New(core).Named(name)
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch {
	case l >= zapcore.ErrorLevel:
		enc.AppendString(ErrPrefix)
	case l == zapcore.WarnLevel:
		enc.AppendString(WarnPrefix)
	default:
		enc.AppendString(InfoPrefix)
	}
}

func encodeName(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(name + ":")
}
