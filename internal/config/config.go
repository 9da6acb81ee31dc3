package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Log      LogConfig      `mapstructure:"log"`
}

// GenerateConfig holds passphrase generation configuration
type GenerateConfig struct {
	Length   int    `mapstructure:"length"`
	Preset   string `mapstructure:"preset"`
	Wordlist string `mapstructure:"wordlist"`
	Entropy  bool   `mapstructure:"entropy"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables. Values loaded from a
// .env file by the caller are picked up here as well.
func Load() (*Config, error) {
	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.SetEnvPrefix("DICEPASS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Generation defaults
	viper.SetDefault("generate.length", 6)
	viper.SetDefault("generate.preset", "")
	viper.SetDefault("generate.wordlist", "")
	viper.SetDefault("generate.entropy", false)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}
