package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all retailcast configuration.
type Config struct {
	// Prediction endpoint
	Predictor PredictorConfig `yaml:"predictor"`

	// Date picker range
	Picker PickerConfig `yaml:"picker"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// PredictorConfig configures the prediction endpoint client.
type PredictorConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

// PickerConfig configures the date picker. The picker accepts days of
// DisplayYear only; stored dates fall one year earlier.
type PickerConfig struct {
	DisplayYear int `yaml:"display_year"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // light, dark, auto
	Mouse bool   `yaml:"mouse"` // enables click-outside dismissal of the modal
}

// Default values.
const (
	DefaultEndpoint    = "http://127.0.0.1:8000/predict_sales/"
	DefaultTimeout     = 30 * time.Second
	DefaultDisplayYear = 2024
)

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Predictor: PredictorConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultTimeout.String(),
		},
		Picker: PickerConfig{
			DisplayYear: DefaultDisplayYear,
		},
		UI: UIConfig{
			Theme: "auto",
			Mouse: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the default path to .retailcast/config.yaml.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".retailcast", "config.yaml")
	}
	return filepath.Join(cwd, ".retailcast", "config.yaml")
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment.
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Unparseable numeric values are ignored and surface through Validate.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RETAILCAST_ENDPOINT"); v != "" {
		c.Predictor.Endpoint = v
	}
	if v := os.Getenv("RETAILCAST_TIMEOUT"); v != "" {
		c.Predictor.Timeout = v
	}
	if v := os.Getenv("RETAILCAST_DISPLAY_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			c.Picker.DisplayYear = year
		}
	}
	if v := os.Getenv("RETAILCAST_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("RETAILCAST_DEBUG"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// GetTimeout returns the predictor timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Predictor.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Predictor.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid predictor endpoint %q: %w", c.Predictor.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid predictor endpoint %q: need an absolute http(s) URL", c.Predictor.Endpoint)
	}

	if c.Predictor.Timeout != "" {
		if d, err := time.ParseDuration(c.Predictor.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("invalid predictor timeout %q", c.Predictor.Timeout)
		}
	}

	if c.Picker.DisplayYear < 2 || c.Picker.DisplayYear > 9999 {
		return fmt.Errorf("invalid picker display_year %d", c.Picker.DisplayYear)
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid ui theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
