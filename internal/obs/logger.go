// Package obs wires structured logging for the condition-expression
// pipeline. Package resolution, package-cycle detection and
// requirement-constraint leaf evaluation log through the *zap.Logger handed
// to it here rather than through ad-hoc fmt.Printf calls.
package obs

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	current *zap.Logger = zap.NewNop()
)

// New builds a production or development zap.Logger depending on verbose.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Set installs l as the package-level logger returned by L, a thin
// module-level singleton for convenience — callers that want full control
// should thread a *zap.Logger explicitly instead.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// L returns the current package-level logger, defaulting to a no-op logger
// until Set is called.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
