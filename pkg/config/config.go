package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Validation ValidationConfig `mapstructure:"validation"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ValidationConfig carries the policy knobs for the sanitization layer.
// ProductionMode gates the HTTPS-only webhook rule; it comes from the
// deployment config, never from a request.
type ValidationConfig struct {
	ProductionMode bool `mapstructure:"production_mode"`
	MaxBodyBytes   int  `mapstructure:"max_body_bytes"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var globalConfig Config

func Load(configPath string) error {
	err := loadConfigFile(configPath, "config", &globalConfig)

	// Defaults apply even without a config file so the server still
	// comes up on a usable port.
	setDefaultValues()

	if err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Validation.MaxBodyBytes == 0 {
		globalConfig.Validation.MaxBodyBytes = 1 << 20
	}
}

func GetConfig() *Config {
	return &globalConfig
}
