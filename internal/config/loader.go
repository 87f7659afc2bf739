package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the bundlemodel, fetchmodels and servemodels
// commands. Zero values mean "unspecified" and are filled by WithDefaults.
type Config struct {
	LogLevel string       `json:"log_level" yaml:"log_level" toml:"log_level"`
	Bundle   BundleConfig `json:"bundle" yaml:"bundle" toml:"bundle"`
	Fetch    FetchConfig  `json:"fetch" yaml:"fetch" toml:"fetch"`
	Serve    ServeConfig  `json:"serve" yaml:"serve" toml:"serve"`
}

// BundleConfig sets defaults for bundlemodel flags.
type BundleConfig struct {
	ModelType  string   `json:"model_type" yaml:"model_type" toml:"model_type"`
	StartToken string   `json:"start_token" yaml:"start_token" toml:"start_token"`
	StopTokens []string `json:"stop_tokens" yaml:"stop_tokens" toml:"stop_tokens"`
}

// FetchConfig sets defaults for fetchmodels.
type FetchConfig struct {
	OutputDir string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	// Endpoint is the hub base URL, e.g. https://huggingface.co.
	Endpoint string `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	Revision string `json:"revision" yaml:"revision" toml:"revision"`
	// TimeoutSeconds bounds a single file transfer. 0 disables the limit.
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// ServeConfig sets defaults for servemodels.
type ServeConfig struct {
	Host        string `json:"host" yaml:"host" toml:"host"`
	Port        int    `json:"port" yaml:"port" toml:"port"`
	Root        string `json:"root" yaml:"root" toml:"root"`
	ModelsDir   string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	LandingPage string `json:"landing_page" yaml:"landing_page" toml:"landing_page"`
	// MetricsPath exposes Prometheus metrics when non-empty (e.g. /metrics).
	MetricsPath string `json:"metrics_path" yaml:"metrics_path" toml:"metrics_path"`
	CORSMaxAge  int    `json:"cors_max_age" yaml:"cors_max_age" toml:"cors_max_age"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// LoadOrDefault loads path when non-empty and fills unset fields from the
// environment and built-in defaults.
func LoadOrDefault(path string) (Config, error) {
	var cfg Config
	if path != "" {
		c, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	return cfg.WithDefaults(), nil
}
