// Package config loads gatehouse settings from the environment.
//
// Recognized variables, all prefixed GATEHOUSE_:
//
//	GATEHOUSE_DB_USERNAME     store username          (default "root")
//	GATEHOUSE_DB_PASSWORD     store password          (default "")
//	GATEHOUSE_DB_HOST         store host[:port]       (default "localhost")
//	GATEHOUSE_DB_NAME         database name           (default "gatehouse")
//	GATEHOUSE_SESSION_COOKIE  session cookie name     (default "session_id")
//	GATEHOUSE_HTTP_ADDR       listen address          (default ":8080")
//	GATEHOUSE_AUTH_EXCLUDED   comma-separated exclusion rules (default none)
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "GATEHOUSE_"

type DB struct {
	Username string
	Password string
	Host     string
	Name     string
}

type Config struct {
	DB            DB
	SessionCookie string
	HTTPAddr      string
	ExcludedPaths []string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		DB: DB{
			Username: stringOr(k, "db.username", "root"),
			Password: stringOr(k, "db.password", ""),
			Host:     stringOr(k, "db.host", "localhost"),
			Name:     stringOr(k, "db.name", "gatehouse"),
		},
		SessionCookie: stringOr(k, "session.cookie", "session_id"),
		HTTPAddr:      stringOr(k, "http.addr", ":8080"),
	}

	if raw := k.String("auth.excluded"); raw != "" {
		for _, rule := range strings.Split(raw, ",") {
			if rule = strings.TrimSpace(rule); rule != "" {
				cfg.ExcludedPaths = append(cfg.ExcludedPaths, rule)
			}
		}
	}

	return cfg, nil
}

// DSN assembles the postgres connection string from the store credentials.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DB.Username, c.DB.Password),
		Host:   c.DB.Host,
		Path:   "/" + c.DB.Name,
	}
	return u.String()
}

func stringOr(k *koanf.Koanf, key, fallback string) string {
	if k.Exists(key) {
		return k.String(key)
	}
	return fallback
}
