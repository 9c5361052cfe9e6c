package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is populated from BLOOMBUDDY_-prefixed environment variables.
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	DBPath       string `envconfig:"DB_PATH" default:"data/bloombuddy.db"`
	SecretKey    string `envconfig:"SECRET_KEY" default:"change_me_in_production"`
	Timezone     string `envconfig:"TZ" default:"UTC"`
	CookieSecure bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := envconfig.Process("bloombuddy", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
