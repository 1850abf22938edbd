package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetReplacesLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	L().Info("Task created", zap.String("task", "T1"))

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "T1", logs.All()[0].ContextMap()["task"])
}

func TestBuildUnknownLevelIsNop(t *testing.T) {
	assert.NotNil(t, build("loud"))
	assert.NotNil(t, build("debug"))
}

func TestConfigureRebuildsDefaultLogger(t *testing.T) {
	mu.Lock()
	custom = false
	mu.Unlock()
	t.Cleanup(func() { Set(nil) })

	Configure("off")
	assert.False(t, L().Core().Enabled(zap.ErrorLevel))

	Configure("debug")
	assert.True(t, L().Core().Enabled(zap.DebugLevel))

	core, _ := observer.New(zap.WarnLevel)
	Set(zap.New(core))
	Configure("debug")
	assert.False(t, L().Core().Enabled(zap.DebugLevel), "an installed logger is kept")
}
