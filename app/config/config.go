package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults replaces ${VAR} and ${VAR:-default} with values from the environment.
// Unset or empty variables take the default.
func expandEnvWithDefaults(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		if value := os.Getenv(matches[1]); value != "" {
			return value
		}
		if len(matches) > 2 {
			return matches[2]
		}
		return ""
	})
}

// InitConfig reads configFile over defaults and decodes the result into C.
// An empty configFile yields the defaults alone.
func InitConfig[C any](configFile string, defaults map[string]interface{}) (*C, error) {
	v := viper.New()
	for k, value := range defaults {
		v.SetDefault(k, value)
	}

	if configFile != "" {
		ext := strings.TrimLeft(filepath.Ext(configFile), ".")
		v.SetConfigFile(configFile)
		v.SetConfigType(ext)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		expanded := expandEnvWithDefaults(value)
		if expanded == value {
			continue
		}

		if expanded == "true" || expanded == "false" {
			boolValue, _ := strconv.ParseBool(expanded)
			v.Set(k, boolValue)
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Load reads the application configuration from configFile.
func Load(configFile string) (*Config, error) {
	cfg, err := InitConfig[Config](configFile, Defaults())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Defaults returns the settings used when the config file omits them.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"logger.level": "info",

		"server.port":                8080,
		"server.read_timeout":        10,
		"server.read_header_timeout": 5,
		"server.write_timeout":       10,
		"server.idle_timeout":        60,
		"server.shutdown_timeout":    10,

		"storage.driver":         DriverBadger,
		"storage.badger_path":    "data",
		"storage.in_memory":      false,
		"storage.mongo_uri":      "mongodb://localhost:27017",
		"storage.mongo_database": "blogposts",

		"auth.login":    "admin",
		"auth.password": "qwerty",

		"cors.allowed_origins": "*",
		"cors.max_age":         86400,
	}
}
