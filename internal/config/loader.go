package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the given yaml file (optional) and the
// environment. Environment variables override file values and use the
// CE_ prefix with underscores, e.g. CE_APP_HTTP_PORT.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "commitment-engine")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", "30s")
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("app.log_option", "production")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("rule_matching.allow_unposted_transitions", false)

	v.SetEnvPrefix("CE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
