package linter

import "go.uber.org/zap"

// Logger is the structured logger the engine and rules report through.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

var _ Logger = (*zap.SugaredLogger)(nil)

// NopLogger returns a logger that discards everything.
func NopLogger() Logger {
	return zap.NewNop().Sugar()
}
