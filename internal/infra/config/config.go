package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config - application configuration
type Config struct {
	App AppConfig `mapstructure:"app"`
}

// AppConfig - output and logging settings
type AppConfig struct {
	OutDir   string `mapstructure:"out_dir"`   // directory for generated chart PNGs
	LogLevel string `mapstructure:"log_level"` // console log level (by default "info")
}

// LoadConfig loads configuration in layers:
// 1. defaults
// 2. config.yaml
// 3. .env file
// 4. environment variables
func LoadConfig() (*Config, error) {
	// Load .env file via godotenv so env aliases see it
	godotenv.Load(".env")

	v := viper.New()

	setDefaults(v)

	// Load from config.yaml (if present - no error when missing)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig()

	v.AutomaticEnv()

	setupEnvAliases(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	// LITHO_OUT_DIR -> app.out_dir
	v.BindEnv("app.out_dir", "LITHO_OUT_DIR")
	v.BindEnv("app.log_level", "LITHO_LOG_LEVEL")
}

// setDefaults matches the paths the dashboard serves fallbacks from
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.out_dir", "static/img/static")
	v.SetDefault("app.log_level", "info")
}

func validateConfig(cfg *Config) error {
	if cfg.App.OutDir == "" {
		return fmt.Errorf("app.out_dir must not be empty")
	}
	return nil
}
