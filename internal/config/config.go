// Package config manages the user settings file at ~/.buildwise/config.json.
// Settings are loaded once at startup and passed into components; nothing
// reads the file after that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "json"
	envPrefix  = "BUILDWISE"
)

// Settings is the persisted user configuration. MaterialPrices overrides the
// estimator's built-in base prices; keys match the estimator's price keys
// (concrete_per_yard, lumber_pine_per_bf, steel_per_pound).
type Settings struct {
	OpenAIAPIKey    string             `json:"openai_api_key"`
	ProjectDir      string             `json:"project_dir"`
	DefaultLocation string             `json:"default_location"`
	Theme           string             `json:"theme"`
	MaterialPrices  map[string]float64 `json:"material_prices"`
}

// Dir returns the settings directory, ~/.buildwise.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".buildwise"), nil
}

// Load reads settings from the default directory.
func Load() (Settings, error) {
	dir, err := Dir()
	if err != nil {
		return Settings{}, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads settings from dir/config.json. A missing file yields the
// defaults, not an error. Environment variables override file values:
// BUILDWISE_PROJECT_DIR, BUILDWISE_DEFAULT_LOCATION, BUILDWISE_THEME and
// BUILDWISE_OPENAI_API_KEY, plus the conventional OPENAI_API_KEY.
func LoadFrom(dir string) (Settings, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetDefault("project_dir", filepath.Join(dir, "projects"))
	v.SetDefault("default_location", "United States")
	v.SetDefault("theme", "default")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	s := Settings{
		OpenAIAPIKey:    v.GetString("openai_api_key"),
		ProjectDir:      v.GetString("project_dir"),
		DefaultLocation: v.GetString("default_location"),
		Theme:           v.GetString("theme"),
		MaterialPrices:  materialPrices(v),
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		s.OpenAIAPIKey = key
	}
	return s, nil
}

// Save writes settings to the default directory.
func Save(s Settings) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return SaveTo(dir, s)
}

// SaveTo writes settings to dir/config.json, creating the directory if
// needed.
func SaveTo(dir string, s Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("openai_api_key", s.OpenAIAPIKey)
	v.Set("project_dir", s.ProjectDir)
	v.Set("default_location", s.DefaultLocation)
	v.Set("theme", s.Theme)
	v.Set("material_prices", s.MaterialPrices)

	path := filepath.Join(dir, configName+"."+configType)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// materialPrices extracts the price map, tolerating the numeric types the
// JSON decoder produces.
func materialPrices(v *viper.Viper) map[string]float64 {
	raw := v.GetStringMap("material_prices")
	if len(raw) == 0 {
		return nil
	}
	prices := make(map[string]float64, len(raw))
	for key, val := range raw {
		switch n := val.(type) {
		case float64:
			prices[key] = n
		case int:
			prices[key] = float64(n)
		case int64:
			prices[key] = float64(n)
		}
	}
	return prices
}
