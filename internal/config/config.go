// Package config loads the configuration snapshot for a single invocation.
//
// Sources, highest precedence first: command-line flags, environment
// variables, the TOML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/custodia-labs/adoid/internal/connectors/azuredevops"
	"github.com/custodia-labs/adoid/internal/core/domain"
)

// Configuration keys.
const (
	KeyServerURL      = "server_url"
	KeyAuthMethod     = "auth_method"
	KeyPAT            = "pat"
	KeyTimeout        = "timeout"
	KeyRateLimitRPS   = "rate_limit.requests_per_second"
	KeyRateLimitBurst = "rate_limit.burst"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultRequestsPerSec = 5.0
	defaultBurst          = 10
)

// Environment variables bound to configuration keys.
var envBindings = map[string]string{
	KeyServerURL:  "AZURE_DEVOPS_ORG_URL",
	KeyAuthMethod: "AZURE_DEVOPS_AUTH_METHOD",
	KeyPAT:        "AZURE_DEVOPS_PAT",
	KeyTimeout:    "ADOID_TIMEOUT",
}

// Config is the configuration snapshot for one invocation.
type Config struct {
	ServerURL  string          `mapstructure:"server_url"`
	AuthMethod string          `mapstructure:"auth_method"`
	PAT        string          `mapstructure:"pat"`
	Timeout    time.Duration   `mapstructure:"timeout"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig paces outbound profile requests. A zero rate disables pacing.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// NewViper returns a viper instance with defaults and environment bindings
// applied, layered over configFile when it exists. A missing file is not an error.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyAuthMethod, "")
	v.SetDefault(KeyTimeout, defaultTimeout.String())
	v.SetDefault(KeyRateLimitRPS, defaultRequestsPerSec)
	v.SetDefault(KeyRateLimitBurst, defaultBurst)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile == "" {
		return v, nil
	}
	if _, err := os.Stat(configFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configFile, err)
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Timeout <= 0 {
		return errors.New("timeout must be > 0")
	}
	if cfg.RateLimit.RequestsPerSecond < 0 {
		return errors.New("rate_limit.requests_per_second must be >= 0")
	}
	if cfg.RateLimit.Burst < 0 {
		return errors.New("rate_limit.burst must be >= 0")
	}
	return nil
}

// Auth returns the credential configuration for a call.
func (c *Config) Auth() domain.AuthConfig {
	return domain.AuthConfig{
		Method: domain.ParseAuthMethod(c.AuthMethod),
		PAT:    c.PAT,
	}
}

// Client returns the Azure DevOps client configuration.
func (c *Config) Client() azuredevops.Config {
	return azuredevops.Config{
		ProfileBaseURL: azuredevops.DefaultProfileBaseURL,
		Timeout:        c.Timeout,
		RateLimit: azuredevops.RateLimitConfig{
			RequestsPerSecond: c.RateLimit.RequestsPerSecond,
			BurstSize:         c.RateLimit.Burst,
		},
	}
}
