package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/irahardianto/glide/internal/platform/logger"
)

// LoadGlobalConfig reads user-level configuration from ~/.config/glide/config.yaml.
// If the file does not exist, default values are returned (not an error).
// Environment variables override file values.
func (l *Loader) LoadGlobalConfig(ctx context.Context) (*GlobalConfig, error) {
	home, err := l.fs.UserHomeDir()
	if err != nil {
		// Cannot determine home directory, use defaults.
		cfg := defaultGlobalConfig()
		applyEnvOverrides(cfg, l.getenv, logger.FromContext(ctx))
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid global config: %w", err)
		}
		return cfg, nil
	}
	path := filepath.Join(home, ".config", "glide", "config.yaml")
	return l.LoadGlobalConfigFrom(ctx, path)
}

// LoadGlobalConfigFrom reads user-level configuration from a specific path.
// If the file does not exist, default values are returned (not an error).
// Environment variables override file values.
func (l *Loader) LoadGlobalConfigFrom(ctx context.Context, path string) (*GlobalConfig, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading global config", "path", path)
	cfg := defaultGlobalConfig()

	// [SEC] Clean path
	path = filepath.Clean(path)

	data, err := l.fs.ReadFile(path)
	switch {
	case err != nil && l.fs.IsNotExist(err):
		log.Debug("global config not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading global config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing global config: %w", err)
		}
		if cfg.Output.Color != nil {
			cfg.OutputColor = *cfg.Output.Color
		}
	}

	applyEnvOverrides(cfg, l.getenv, log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid global config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadGlobalConfig reads user-level configuration using the real file system.
func LoadGlobalConfig(ctx context.Context) (*GlobalConfig, error) {
	return NewLoader(&RealFileSystem{}).LoadGlobalConfig(ctx)
}

// LoadGlobalConfigFrom reads user-level configuration from a specific path using the real file system.
func LoadGlobalConfigFrom(ctx context.Context, path string) (*GlobalConfig, error) {
	return NewLoader(&RealFileSystem{}).LoadGlobalConfigFrom(ctx, path)
}

// applyEnvOverrides applies environment variable overrides to the config.
// The getenv parameter abstracts os.Getenv for testability.
func applyEnvOverrides(cfg *GlobalConfig, getenv func(string) string, log *slog.Logger) {
	if bin := getenv("GLIDE_GIT"); bin != "" {
		cfg.GitBinary = bin
	}

	if timeoutStr := getenv("GLIDE_TIMEOUT"); timeoutStr != "" {
		d, err := time.ParseDuration(timeoutStr)
		if err != nil {
			log.Warn("invalid GLIDE_TIMEOUT value, keeping current", "value", timeoutStr, "error", err)
		} else {
			cfg.Timeout = d
		}
	}

	if noColor := getenv("GLIDE_NO_COLOR"); noColor != "" {
		// Any truthy value disables color.
		noColor = strings.ToLower(noColor)
		if noColor == "1" || noColor == "true" || noColor == "yes" {
			cfg.OutputColor = false
		}
	}

	// https://no-color.org: presence with any non-empty value disables color.
	if getenv("NO_COLOR") != "" {
		cfg.OutputColor = false
	}
}
