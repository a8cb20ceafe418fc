package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "maskit.yaml"

// MaskitYAMLConfig represents the complete maskit.yaml file structure
type MaskitYAMLConfig struct {
	Server  *ServerConfig      `yaml:"server"`
	API     *APIConfig         `yaml:"api"`
	Display *DisplayYAMLConfig `yaml:"display"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load maskit.yaml from configDir (built-in defaults when absent)
//  2. Expand {{.VAR}} environment references
//  3. Merge user values over built-in defaults
//  4. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"api_base_url", cfg.API.BaseURL,
		"encoding", cfg.API.Encoding,
		"http_port", cfg.Server.HTTPPort,
		"show_originals", cfg.Display.ShowOriginals,
		"show_highlighting", cfg.Display.ShowHighlighting)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	userCfg, err := loader.loadMaskitYAML()
	if err != nil {
		return nil, NewLoadError(FileName, err)
	}

	cfg := Default()
	cfg.configDir = configDir

	if userCfg.Server != nil {
		if err := mergo.Merge(cfg.Server, userCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	if userCfg.API != nil {
		if err := mergo.Merge(cfg.API, userCfg.API, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge api config: %w", err)
		}
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if d := userCfg.Display; d != nil {
		if d.ShowOriginals != nil {
			cfg.Display.ShowOriginals = *d.ShowOriginals
		}
		if d.ShowHighlighting != nil {
			cfg.Display.ShowHighlighting = *d.ShowHighlighting
		}
	}

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) (bool, error) {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return true, nil
}

func (l *configLoader) loadMaskitYAML() (*MaskitYAMLConfig, error) {
	var config MaskitYAMLConfig

	found, err := l.loadYAML(FileName, &config)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Info("No configuration file found, using built-in defaults",
			"path", filepath.Join(l.configDir, FileName))
	}

	return &config, nil
}
