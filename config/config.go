package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config holds the process settings. The route table itself lives in the
 * relay file pointed to by ConfigFile and is loaded by the routes package.
 */
type Config struct {
	ConfigFile    string `mapstructure:"RELAY_CONFIG"`
	LogsDir       string `mapstructure:"RELAY_LOGS_DIR"`
	AuditBackend  string `mapstructure:"RELAY_AUDIT_BACKEND"`
	AdminPort     string `mapstructure:"RELAY_ADMIN_PORT"`
	MountPath     string `mapstructure:"RELAY_MOUNT_PATH"`
	LogLevel      string `mapstructure:"RELAY_LOG_LEVEL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

const (
	AuditBackendFile  = "file"
	AuditBackendRedis = "redis"
)

var defaults = map[string]any{
	"RELAY_CONFIG":        "config.yaml",
	"RELAY_LOGS_DIR":      "logs",
	"RELAY_AUDIT_BACKEND": AuditBackendFile,
	"RELAY_ADMIN_PORT":    "9090",
	"RELAY_MOUNT_PATH":    "/",
	"RELAY_LOG_LEVEL":     "info",
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
}

// GetConfig reads ./.env (optional) and the environment
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads the .env file found in dir, if any, and applies environment overrides
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &config, nil
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	if c.ConfigFile == "" {
		return fmt.Errorf("RELAY_CONFIG cannot be empty")
	}
	switch c.AuditBackend {
	case AuditBackendFile:
		if c.LogsDir == "" {
			return fmt.Errorf("RELAY_LOGS_DIR cannot be empty for the file audit backend")
		}
	case AuditBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR cannot be empty for the redis audit backend")
		}
	default:
		return fmt.Errorf("unknown audit backend: %s", c.AuditBackend)
	}
	if c.MountPath == "" || c.MountPath[0] != '/' {
		return fmt.Errorf("RELAY_MOUNT_PATH must start with / (got %q)", c.MountPath)
	}
	return nil
}
