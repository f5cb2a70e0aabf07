package lazy

import "go.uber.org/zap"

// logger receives the engine's diagnostics: the Combine length-mismatch
// warning and cache adapter lifecycle events. It defaults to a nop logger.
// The engine is single-writer by contract, so plain assignment suffices.
var logger = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the nop
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
