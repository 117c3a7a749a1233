package cmd

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"pedidos/internal/pkg/errs"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	StorageDriver          string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	OrdersFile             string
	SubscriberBuffer       int
	HeartbeatSchedule      string
	KafkaHost              string
	KafkaOrderChangedTopic string
	CORSAllowedOrigins     []string
	LogLevel               slog.Level
}

// Validate checks the settings the composition root depends on.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return errs.NewValueIsRequiredError("HTTP_PORT")
	}
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" {
			return errs.NewValueIsRequiredError("DB_HOST")
		}
		if c.DBName == "" {
			return errs.NewValueIsRequiredError("DB_NAME")
		}
	default:
		return errs.NewValueIsInvalidError("STORAGE_DRIVER")
	}
	if c.SubscriberBuffer <= 0 {
		return errs.NewValueIsOutOfRangeError("SUBSCRIBER_BUFFER", c.SubscriberBuffer, 1, "unbounded")
	}
	if (c.KafkaHost == "") != (c.KafkaOrderChangedTopic == "") {
		return errs.NewValueIsRequiredError("KAFKA_HOST and KAFKA_ORDER_CHANGED_TOPIC must be set together")
	}
	return nil
}

// DSN returns the PostgreSQL connection string in URL form.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBSslMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSslMode}}.Encode()
	}
	return u.String()
}

// KafkaEnabled reports whether order events are mirrored to Kafka.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != "" && c.KafkaOrderChangedTopic != ""
}

// ParseOrigins splits a comma separated origin list. An empty list or any "*"
// entry means any origin and yields nil.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			return nil
		}
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// ParseLogLevel accepts debug, info, warn and error in any case.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if raw == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}
