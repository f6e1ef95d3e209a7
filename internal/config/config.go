// Package config loads advisor settings by layering defaults, an optional
// YAML file named by ADVISOR_CONFIG, and ADVISOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const envPrefix = "ADVISOR_"

type Config struct {
	Mode     Mode   `koanf:"mode"`
	HTTPAddr string `koanf:"http_addr"`

	DBDriver string `koanf:"db_driver"` // sqlite|postgres
	DBDSN    string `koanf:"db_dsn"`

	EnableLocalAuth bool          `koanf:"enable_local_auth"`
	AuthHMACSecret  string        `koanf:"auth_hmac_secret"`
	TokenTTL        time.Duration `koanf:"token_ttl"`

	// Comma separated; picked by Mode.
	CORSOriginsOnline  string `koanf:"cors_origins_online"`
	CORSOriginsOffline string `koanf:"cors_origins_offline"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"` // json|console

	RequestTimeout     time.Duration `koanf:"request_timeout"`
	RateLimitPerMinute int           `koanf:"rate_limit_per_minute"` // 0 disables
	MetricsEnabled     bool          `koanf:"metrics_enabled"`

	RecommendationLimit int `koanf:"recommendation_limit"`
	PeerLimit           int `koanf:"peer_limit"`
}

func Defaults() Config {
	return Config{
		Mode:                ModeOffline,
		HTTPAddr:            ":8080",
		DBDriver:            "sqlite",
		EnableLocalAuth:     true,
		AuthHMACSecret:      "dev-secret-change-me",
		TokenTTL:            12 * time.Hour,
		CORSOriginsOnline:   "https://advisor.mindengage.ai",
		CORSOriginsOffline:  "http://localhost:3000,http://localhost:5173",
		LogLevel:            "info",
		LogFormat:           "json",
		RequestTimeout:      60 * time.Second,
		RateLimitPerMinute:  120,
		MetricsEnabled:      true,
		RecommendationLimit: 10,
		PeerLimit:           5,
	}
}

// Load returns Defaults overridden by the config file and then env vars.
// ADVISOR_DB_DSN maps to db_dsn.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr must not be empty"))
	}
	if c.Mode != ModeOffline && c.Mode != ModeOnline {
		errs = append(errs, fmt.Errorf("mode must be offline or online, got %q", c.Mode))
	}
	if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
		errs = append(errs, fmt.Errorf("db_driver must be sqlite or postgres, got %q", c.DBDriver))
	}
	if c.AuthHMACSecret == "" {
		errs = append(errs, errors.New("auth_hmac_secret must not be empty"))
	}
	if c.RecommendationLimit <= 0 {
		errs = append(errs, errors.New("recommendation_limit must be positive"))
	}
	return errors.Join(errs...)
}

func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return splitCSV(c.CORSOriginsOnline)
	}
	return splitCSV(c.CORSOriginsOffline)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
