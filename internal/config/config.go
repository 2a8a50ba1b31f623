package config

import (
	"time"
)

type (
	Config struct {
		App      App      `json:"app" mapstructure:"app"`
		Postgres Postgres `json:"postgres" mapstructure:"postgres"`

		MessageBroker      MessageBroker            `json:"message_broker" mapstructure:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
		RuleMatching       RuleMatchingConfig       `json:"rule_matching" mapstructure:"rule_matching"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogOption       string        `json:"log_option" mapstructure:"log_option"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"max_open_connections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	}

	MessageBroker struct {
		Brokers            []string `json:"brokers" mapstructure:"brokers"`
		BalanceEventTopic  string   `json:"balance_event_topic" mapstructure:"balance_event_topic"`
		PostingEventTopic  string   `json:"posting_event_topic" mapstructure:"posting_event_topic"`
		PublisherEnabled   bool     `json:"publisher_enabled" mapstructure:"publisher_enabled"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
	}

	// RuleMatchingConfig tunes the accounting-rule engine.
	RuleMatchingConfig struct {
		// AllowUnpostedTransitions lets a document transition complete when
		// no accounting rule matches. Off by default: an unmatched
		// transition is a blocking error.
		AllowUnpostedTransitions bool `json:"allow_unposted_transitions" mapstructure:"allow_unposted_transitions"`
	}
)
