// Package config loads the service configuration from YAML and the
// environment with cleanenv.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config is the root configuration. Sources, first match wins:
//  1. the path passed to Load;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. environment only.
//
// Environment variables always override values read from a file.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
}

type HTTPConfig struct {
	Addr     string `yaml:"addr" env:"ADDR" env-default:":3000"`
	DiagAddr string `yaml:"diag_addr" env:"DIAG_ADDR" env-default:":9999"`
}

// DBConfig selects the storage backend. URL is not required at load time:
// a missing connection string is reported when the store is opened and
// the service still starts.
type DBConfig struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	URL        string `yaml:"url" env:"DATABASE_URL"`
	Collection string `yaml:"collection" env:"MONGO_COLLECTION" env-default:"articles"`
}

// TimeoutsConfig only bounds bootstrap and shutdown. Requests carry no
// storage deadline.
type TimeoutsConfig struct {
	Connect  time.Duration `yaml:"connect" env:"CONNECT_TIMEOUT" env-default:"10s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path == "" {
		if _, err := os.Stat("local.yaml"); err == nil {
			path = "local.yaml"
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", path, err)
		}

		// ReadConfig overlays the environment after the file.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("env must be one of %q, %q, %q; got %q", EnvLocal, EnvDev, EnvProd, c.Env)
	}

	switch c.DB.Driver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("db.driver must be %q or %q; got %q", DriverMongo, DriverMemory, c.DB.Driver)
	}

	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr is required")
	}

	if c.Timeouts.Connect <= 0 {
		return fmt.Errorf("timeouts.connect must be > 0")
	}

	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("timeouts.shutdown must be > 0")
	}

	return nil
}
