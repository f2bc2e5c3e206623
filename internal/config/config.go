package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env           string `mapstructure:"env" validate:"oneof=development staging production"`
	LogLevel      string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	DataDir       string `mapstructure:"data_dir" validate:"required"`
	HappinessFile string `mapstructure:"happiness_file" validate:"required"`
	MediaFile     string `mapstructure:"media_file" validate:"required"`
}

var validate = validator.New()

// Load resolves configuration from defaults, an optional moodtracker.yaml
// in the data directory, and MOOD_* environment variables, in that order
// of increasing precedence. Store file paths are always explicit config
// values so independent collections never collide on a shared key.
func Load(dataDir string) (*Config, error) {
	if dataDir == "" {
		dataDir = "data"
	}

	v := viper.New()
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("happiness_file", filepath.Join(dataDir, "happiness.json"))
	v.SetDefault("media_file", filepath.Join(dataDir, "media.json"))

	v.SetConfigName("moodtracker")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	v.AddConfigPath(".")

	_ = v.BindEnv("env", "MOOD_ENV")
	_ = v.BindEnv("log_level", "MOOD_LOG_LEVEL")
	_ = v.BindEnv("data_dir", "MOOD_DATA_DIR")
	_ = v.BindEnv("happiness_file", "MOOD_HAPPINESS_FILE")
	_ = v.BindEnv("media_file", "MOOD_MEDIA_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode into config struct: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}
