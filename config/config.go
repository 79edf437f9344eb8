package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/malusev998/privat-rates/fetchers"
)

const EnvPrefix = "PRIVAT_RATES"

var (
	ErrEmptyURL        = errors.New("api.url must not be empty")
	ErrNegativeTimeout = errors.New("api.timeout must not be negative")
)

type Config struct {
	API struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"api"`

	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`

	// Strict turns caught fetch errors into a failing exit status.
	Strict bool `mapstructure:"strict"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Flags are bound to it by the caller before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("api.url", fetchers.PrivatBankURL)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("strict", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads an optional .env file and config file and returns the merged
// configuration. An empty file means no config file.
func Load(v *viper.Viper, file string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if strings.TrimSpace(cfg.API.URL) == "" {
		return nil, ErrEmptyURL
	}

	if cfg.API.Timeout < 0 {
		return nil, ErrNegativeTimeout
	}

	return &cfg, nil
}
