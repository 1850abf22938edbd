package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.EnableWaveformSupport)
	assert.Equal(t, "default", cfg.WarningAction)
	assert.Equal(t, 10*time.Second, cfg.GRPCDialTimeout)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("DAQMX_ENABLE_WAVEFORM_SUPPORT", "1")
	t.Setenv("DAQMX_LIBRARY_PATH", "/opt/ni/libnidaqmx.so")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.EnableWaveformSupport)
	assert.Equal(t, "/opt/ni/libnidaqmx.so", cfg.LibraryPath)
}

func TestDotenvWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("DAQMX_ENABLE_INCOMPLETE_FEATURES=true\nDAQMX_LOG_LEVEL=debug\nOTHER=1\n"), 0o644))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.True(t, cfg.EnableIncompleteFeatures)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{filepath.Join(root, ".env")}, cfg.DotenvFiles)
}

func TestEnvironmentBeatsDotenv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("DAQMX_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("DAQMX_LOG_LEVEL", "warn")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInvalidWarningAction(t *testing.T) {
	t.Setenv("DAQMX_WARNING_ACTION", "explode")
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestRequire(t *testing.T) {
	cfg := defaults()
	err := cfg.Require(FeatureWaveforms)
	var fe *daqerr.FeatureNotSupportedError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "DAQMX_ENABLE_WAVEFORM_SUPPORT")

	cfg.EnableWaveformSupport = true
	assert.NoError(t, cfg.Require(FeatureWaveforms))

	cfg = defaults()
	cfg.EnableIncompleteFeatures = true
	assert.NoError(t, cfg.Require(FeatureWaveforms))
}

func TestIncompleteFeatures(t *testing.T) {
	assert.Equal(t, ReadinessIncomplete, ReadinessOf(FeatureWaveforms))

	cfg := defaults()
	err := cfg.Require(FeatureWaveforms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAQMX_ENABLE_INCOMPLETE_FEATURES")

	t.Setenv("DAQMX_ENABLE_INCOMPLETE_FEATURES", "true")
	cfg, err = Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.EnableWaveformSupport)
	assert.NoError(t, cfg.Require(FeatureWaveforms))

	var fe *daqerr.FeatureNotSupportedError
	assert.ErrorAs(t, cfg.Require(Feature("telepathy")), &fe)
}

func TestApplyWarningAction(t *testing.T) {
	t.Setenv("DAQMX_WARNING_ACTION", "error")
	t.Cleanup(daqerr.ResetFilters)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, Apply(cfg))

	err = daqerr.Check(200015, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, daqerr.Code(200015))

	require.NoError(t, Apply(&Config{WarningAction: "ignore"}))
	assert.NoError(t, daqerr.Check(200015, nil))

	assert.ErrorIs(t, Apply(&Config{WarningAction: "explode"}), daqerr.ErrInvalidArgument)
}

func TestApplyLogLevel(t *testing.T) {
	t.Setenv("DAQMX_LOG_LEVEL", "debug")
	t.Cleanup(func() { logging.Configure("off") })

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, Apply(cfg))
	assert.True(t, logging.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Apply(&Config{LogLevel: "off"}))
	assert.False(t, logging.L().Core().Enabled(zap.DebugLevel))
}

func TestInitInstallsConfig(t *testing.T) {
	t.Setenv("DAQMX_WARNING_ACTION", "error")
	t.Cleanup(daqerr.ResetFilters)
	t.Cleanup(func() { Set(nil) })

	cfg, err := Init()
	require.NoError(t, err)
	assert.Same(t, cfg, Get())
	assert.Error(t, daqerr.Check(200015, nil))
}
