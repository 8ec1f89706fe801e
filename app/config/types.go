package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	DriverBadger = "badger"
	DriverMongo  = "mongo"
)

// ConfigLogger holds logging settings
type ConfigLogger struct {
	Level string `mapstructure:"level"`
}

// ConfigServer holds HTTP server settings; timeouts are in seconds
type ConfigServer struct {
	Port              int `mapstructure:"port"`
	ReadTimeout       int `mapstructure:"read_timeout"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout"`
	WriteTimeout      int `mapstructure:"write_timeout"`
	IdleTimeout       int `mapstructure:"idle_timeout"`
	ShutdownTimeout   int `mapstructure:"shutdown_timeout"`
}

// ConfigStorage selects and configures the document store
type ConfigStorage struct {
	Driver        string `mapstructure:"driver"`
	BadgerPath    string `mapstructure:"badger_path"`
	InMemory      bool   `mapstructure:"in_memory"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
}

// ConfigAuth holds the admin account for mutating requests.
// Password may be plaintext or a bcrypt hash.
type ConfigAuth struct {
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
}

// ConfigCORS holds CORS settings
type ConfigCORS struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
	MaxAge         int    `mapstructure:"max_age"`
}

// Config is the root configuration
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Server  *ConfigServer  `mapstructure:"server"`
	Storage *ConfigStorage `mapstructure:"storage"`
	Auth    *ConfigAuth    `mapstructure:"auth"`
	CORS    *ConfigCORS    `mapstructure:"cors"`
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.Logger == nil || c.Server == nil || c.Storage == nil || c.Auth == nil || c.CORS == nil {
		return fmt.Errorf("missing config section")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Storage.Driver {
	case DriverBadger:
		if c.Storage.BadgerPath == "" && !c.Storage.InMemory {
			return fmt.Errorf("storage.badger_path is required unless storage.in_memory is set")
		}
	case DriverMongo:
		if c.Storage.MongoURI == "" || c.Storage.MongoDatabase == "" {
			return fmt.Errorf("storage.mongo_uri and storage.mongo_database are required")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Auth.Login == "" || c.Auth.Password == "" {
		return fmt.Errorf("auth.login and auth.password are required")
	}
	return nil
}

// Addr is the listen address.
func (c *ConfigServer) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (c *ConfigServer) ReadTimeoutDuration() time.Duration {
	return seconds(c.ReadTimeout)
}

func (c *ConfigServer) ReadHeaderTimeoutDuration() time.Duration {
	return seconds(c.ReadHeaderTimeout)
}

func (c *ConfigServer) WriteTimeoutDuration() time.Duration {
	return seconds(c.WriteTimeout)
}

func (c *ConfigServer) IdleTimeoutDuration() time.Duration {
	return seconds(c.IdleTimeout)
}

func (c *ConfigServer) ShutdownTimeoutDuration() time.Duration {
	return seconds(c.ShutdownTimeout)
}

// Origins splits the comma-separated origin list.
func (c *ConfigCORS) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
