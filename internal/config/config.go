package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/logging"
)

// EnvPrefix prefixes every environment variable the library reads.
const EnvPrefix = "DAQMX"

type Config struct {
	EnableIncompleteFeatures bool          `mapstructure:"enable_incomplete_features"`
	EnableWaveformSupport    bool          `mapstructure:"enable_waveform_support"`
	LibraryPath              string        `mapstructure:"library_path"`
	LogLevel                 string        `mapstructure:"log_level"`
	WarningAction            string        `mapstructure:"warning_action"`
	GRPCDialTimeout          time.Duration `mapstructure:"grpc_dial_timeout"`

	// DotenvFiles lists the .env files that were merged, nearest first.
	DotenvFiles []string `mapstructure:"-"`
}

// Feature is an optional capability behind a toggle.
type Feature string

const FeatureWaveforms Feature = "waveform support"

// Readiness is how finished a feature is. Incomplete features are enabled
// by their own toggle or by enable_incomplete_features.
type Readiness int

const (
	ReadinessComplete Readiness = iota
	ReadinessIncomplete
)

type toggle struct {
	readiness Readiness
	env       string
	enabled   func(*Config) bool
}

var toggles = map[Feature]toggle{
	FeatureWaveforms: {
		readiness: ReadinessIncomplete,
		env:       "ENABLE_WAVEFORM_SUPPORT",
		enabled:   func(c *Config) bool { return c.EnableWaveformSupport },
	},
}

// ReadinessOf reports the readiness of f. Unknown features are incomplete.
func ReadinessOf(f Feature) Readiness {
	if t, ok := toggles[f]; ok {
		return t.readiness
	}
	return ReadinessIncomplete
}

// Require returns a FeatureNotSupportedError if f is disabled.
func (c *Config) Require(f Feature) error {
	t, ok := toggles[f]
	if !ok {
		return &daqerr.FeatureNotSupportedError{Feature: string(f)}
	}
	if t.readiness == ReadinessComplete || t.enabled(c) {
		return nil
	}
	if t.readiness == ReadinessIncomplete && c.EnableIncompleteFeatures {
		return nil
	}
	return &daqerr.FeatureNotSupportedError{
		Feature: string(f),
		Reason:  fmt.Sprintf("set %s_%s=1 or %s_ENABLE_INCOMPLETE_FEATURES=1 to enable it", EnvPrefix, t.env, EnvPrefix),
	}
}

var (
	mu      sync.Mutex
	current *Config
)

// Get returns the process configuration, loading it on first use. A load
// failure falls back to defaults.
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		cfg, err := Load(searchRoots()...)
		if err != nil {
			cfg = defaults()
		}
		_ = Apply(cfg)
		current = cfg
	}
	return current
}

// Reload discards the cached configuration.
func Reload() *Config {
	mu.Lock()
	current = nil
	mu.Unlock()
	return Get()
}

// Init loads the configuration from the working directory and the
// executable's directory, applies it and installs it.
func Init() (*Config, error) {
	cfg, err := Load(searchRoots()...)
	if err != nil {
		return nil, err
	}
	if err := Apply(cfg); err != nil {
		return nil, err
	}
	Set(cfg)
	return cfg, nil
}

// Apply makes cfg's warning action the default for unfiltered warnings and
// sets the level of the default logger.
func Apply(cfg *Config) error {
	action := daqerr.ActionDefault
	if cfg.WarningAction != "" {
		a, err := daqerr.ParseAction(cfg.WarningAction)
		if err != nil {
			return fmt.Errorf("warning_action: %w", err)
		}
		action = a
	}
	daqerr.SetDefaultAction(action)
	logging.Configure(cfg.LogLevel)
	return nil
}

// Set installs cfg as the process configuration. It does not apply it.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}

func defaults() *Config {
	return &Config{LogLevel: "off", WarningAction: "default", GRPCDialTimeout: 10 * time.Second}
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("enable_incomplete_features", false)
	v.SetDefault("enable_waveform_support", false)
	v.SetDefault("library_path", "")
	v.SetDefault("log_level", "off")
	v.SetDefault("warning_action", "default")
	v.SetDefault("grpc_dial_timeout", "10s")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load builds the configuration from the environment and from the first
// .env file found walking up from each root. Real environment variables
// take precedence over .env entries.
func Load(roots ...string) (*Config, error) {
	v := newViper()

	var files []string
	seen := map[string]bool{}
	for _, root := range roots {
		path, ok := findDotenv(root)
		if !ok || seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}
	// Merge farthest first so nearer files win.
	for i := len(files) - 1; i >= 0; i-- {
		if err := mergeDotenv(v, files[i]); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.DotenvFiles = files
	if _, err := daqerr.ParseAction(cfg.WarningAction); err != nil {
		return nil, fmt.Errorf("warning_action: %w", err)
	}
	return &cfg, nil
}

func mergeDotenv(v *viper.Viper, path string) error {
	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	prefix := strings.ToLower(EnvPrefix) + "_"
	for _, key := range env.AllKeys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		// Defaults rank below AutomaticEnv, which keeps the real environment on top.
		v.SetDefault(strings.TrimPrefix(key, prefix), env.Get(key))
	}
	return nil
}

func searchRoots() []string {
	var roots []string
	if wd, err := os.Getwd(); err == nil {
		roots = append(roots, wd)
	}
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(exe))
	}
	return roots
}

func findDotenv(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ".env")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
