package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	StoreDriver   string   `mapstructure:"STORE_DRIVER"`
	StoreURL      string   `mapstructure:"STORE_URL"`
	StoreKey      string   `mapstructure:"STORE_KEY"`
	DatabaseURL   string   `mapstructure:"DATABASE_URL"`
	DBMaxConns    int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns    int32    `mapstructure:"DB_MIN_CONNS"`
	SessionSecret string   `mapstructure:"SESSION_SECRET"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_DRIVER", DriverREST)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("STORE_DRIVER")
	v.BindEnv("STORE_URL")
	v.BindEnv("STORE_KEY")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. The selected store
// driver decides which connection settings are mandatory: the REST driver
// refuses to start without both the store endpoint URL and the access key,
// and the postgres driver without DATABASE_URL.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverREST:
		if c.StoreURL == "" || c.StoreKey == "" {
			return fmt.Errorf("STORE_URL and STORE_KEY are required when STORE_DRIVER is %q", DriverREST)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is %q", DriverPostgres)
		}
	case DriverMemory:
		// Nothing to configure; the memory driver starts empty and is
		// populated by the seed command or by inserts.
	default:
		return fmt.Errorf("STORE_DRIVER must be %q, %q, or %q, got %q",
			DriverREST, DriverPostgres, DriverMemory, c.StoreDriver)
	}
	return nil
}
