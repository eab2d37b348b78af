// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists Caesar's settings. Values are layered as
// defaults, config file, .env, CAESAR_* environment variables and command
// flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/toeirei/caesar/internal/cipher"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Language  string    `mapstructure:"language" yaml:"language"`
	Log       Log       `mapstructure:"log" yaml:"log"`
	Cipher    Cipher    `mapstructure:"cipher" yaml:"cipher"`
	Quiz      Quiz      `mapstructure:"quiz" yaml:"quiz"`
	Clipboard Clipboard `mapstructure:"clipboard" yaml:"clipboard"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// Cipher holds the starting state of the Cipher tab.
type Cipher struct {
	Shift int    `mapstructure:"shift" yaml:"shift"`
	Mode  string `mapstructure:"mode" yaml:"mode"` // encrypt or decrypt
}

// Quiz configures the practice question generator.
type Quiz struct {
	Words    []string `mapstructure:"words" yaml:"words"`
	MinShift int      `mapstructure:"min_shift" yaml:"min_shift"`
	MaxShift int      `mapstructure:"max_shift" yaml:"max_shift"`
}

type Clipboard struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":          "en",
		"log.level":         "warn",
		"cipher.shift":      0,
		"cipher.mode":       "encrypt",
		"quiz.words":        []string{"HELLO", "WORLD", "CIPHER", "SECRET", "CODE"},
		"quiz.min_shift":    1,
		"quiz.max_shift":    25,
		"clipboard.enabled": true,
	}
}

// Direction returns the parsed cipher mode.
func (c Config) Direction() (cipher.Direction, error) {
	return cipher.ParseDirection(c.Cipher.Mode)
}

// Validate checks values that would otherwise fail later in the UI.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalidConfig, c.Language, err)
	}
	if _, err := c.Direction(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	maxShift := cipher.Latin.Size() - 1
	if err := cipher.ValidateShift(c.Cipher.Shift, 0, maxShift); err != nil {
		return fmt.Errorf("%w: cipher.shift: %v", ErrInvalidConfig, err)
	}
	if len(c.Quiz.Words) == 0 {
		return fmt.Errorf("%w: quiz.words is empty", ErrInvalidConfig)
	}
	if c.Quiz.MinShift < 1 || c.Quiz.MinShift > c.Quiz.MaxShift || c.Quiz.MaxShift > maxShift {
		return fmt.Errorf("%w: quiz shift range [%d, %d] must lie in [1, %d]",
			ErrInvalidConfig, c.Quiz.MinShift, c.Quiz.MaxShift, maxShift)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Caesar")
		default:
			configDir = "/etc/caesar"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "caesar")
	}

	return filepath.Join(configDir, "caesar.yaml"), nil
}

// LoadConfig builds a T from defaults, the first caesar.yaml found (or
// explicitPath), a .env file in the working directory, CAESAR_* variables
// and the flags of cmd. A missing config file is reported as
// viper.ConfigFileNotFoundError together with the otherwise complete value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("caesar")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return c, err
		}
		notFound = nf
	}

	// .env never overrides variables that are already set.
	_ = godotenv.Load()

	v.SetEnvPrefix("caesar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
