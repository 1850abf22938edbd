package logging

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	current atomic.Pointer[zap.Logger]
	level   = "off"
	custom  bool
)

// Configure sets the level of the default logger and rebuilds it. It has no
// effect on a logger installed with Set.
func Configure(lvl string) {
	mu.Lock()
	defer mu.Unlock()
	if lvl != "" {
		level = lvl
	}
	if !custom {
		current.Store(build(level))
	}
}

// L returns the process-wide logger.
func L() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if current.Load() == nil {
		current.Store(build(level))
	}
	return current.Load()
}

// Set replaces the process-wide logger. A nil logger disables logging.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	custom = true
	current.Store(l)
}

func build(lvl string) *zap.Logger {
	if lvl == "" || lvl == "off" {
		return zap.NewNop()
	}
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(lvl)); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zl)
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("daqmx")
}
