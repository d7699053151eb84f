package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	IdentityProviderURL string
	JWTSecret           string
	AMQPURL             string
	QueueName           string
	ReconnectDelay      time.Duration
	LedgerMaxAttempts   int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress      = ":5000"
	defaultAMQPURL         = "amqp://localhost:5672"
	defaultQueueName       = "orders"
	defaultReconnectDelay  = 5 * time.Second
	defaultMaxAttempts     = 5
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		IdentityProviderURL: getString(lookup, "IDENTITY_PROVIDER_URL", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", ""),
		AMQPURL:             getString(lookup, "AMQP_URL", defaultAMQPURL),
		QueueName:           getString(lookup, "QUEUE_NAME", defaultQueueName),
		ReconnectDelay:      getDuration(lookup, "CONSUMER_RECONNECT_DELAY", defaultReconnectDelay),
		LedgerMaxAttempts:   getInt(lookup, "LEDGER_MAX_ATTEMPTS", defaultMaxAttempts),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("userservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		reconnectDelayStr  = cfg.ReconnectDelay.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.IdentityProviderURL, "i", cfg.IdentityProviderURL, "Identity provider core base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "AMQP broker connection string")
	fs.StringVar(&cfg.QueueName, "queue", cfg.QueueName, "Order events queue name")
	fs.StringVar(&reconnectDelayStr, "reconnect-delay", reconnectDelayStr, "Delay between broker reconnect attempts")
	fs.IntVar(&cfg.LedgerMaxAttempts, "ledger-max-attempts", cfg.LedgerMaxAttempts, "Redelivery attempts before an event is dropped")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ReconnectDelay, err = time.ParseDuration(reconnectDelayStr); err != nil {
		return nil, fmt.Errorf("invalid reconnect delay: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}

	if cfg.LedgerMaxAttempts <= 0 {
		cfg.LedgerMaxAttempts = defaultMaxAttempts
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.IdentityProviderURL == "" {
		return nil, fmt.Errorf("identity provider URL must be provided")
	}

	// A missing signing secret is a startup failure, never a per-request error.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
