package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Registry backends understood by the storage module.
const (
	RegistryMemory   = "memory"
	RegistryPostgres = "postgres"
	RegistryRedis    = "redis"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	RazorpayAPIURL        string
	RazorpayKeyID         string
	RazorpayKeySecret     string
	DefaultCurrency       string
	RegistryBackend       string
	DatabaseURI           string
	RedisAddress          string
	RegistrySweepInterval time.Duration
	UpstreamTimeout       time.Duration
	ShutdownTimeout       time.Duration
	ConfirmationPath      string
	APIKeyHash            string
	LogLevel              slog.Level
}

const (
	defaultRunAddress       = ":3000"
	defaultRazorpayAPIURL   = "https://api.razorpay.com"
	defaultCurrency         = "INR"
	defaultSweepInterval    = 5 * time.Minute
	defaultUpstreamTimeout  = 10 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultConfirmationPath = "/payment-success"
	defaultLogLevel         = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	runAddress := defaultRunAddress
	if port, ok := lookup("PORT"); ok && port != "" {
		runAddress = ":" + port
	}

	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", runAddress),
		RazorpayAPIURL:    getString(lookup, "RAZORPAY_API_URL", defaultRazorpayAPIURL),
		RazorpayKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		DefaultCurrency:   getString(lookup, "DEFAULT_CURRENCY", defaultCurrency),
		RegistryBackend:   getString(lookup, "REGISTRY_BACKEND", RegistryMemory),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		RedisAddress:      getString(lookup, "REDIS_ADDRESS", ""),
		ConfirmationPath:  getString(lookup, "CONFIRMATION_PATH", defaultConfirmationPath),
		APIKeyHash:        getString(lookup, "API_KEY_HASH", ""),
	}

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sweepIntervalStr   = getString(lookup, "REGISTRY_SWEEP_INTERVAL", defaultSweepInterval.String())
		upstreamTimeoutStr = getString(lookup, "UPSTREAM_TIMEOUT", defaultUpstreamTimeout.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.RazorpayAPIURL, "r", cfg.RazorpayAPIURL, "Payment processor API base URL")
	fs.StringVar(&cfg.RazorpayKeyID, "key-id", cfg.RazorpayKeyID, "Payment processor key id")
	fs.StringVar(&cfg.RazorpayKeySecret, "key-secret", cfg.RazorpayKeySecret, "Payment processor key secret")
	fs.StringVar(&cfg.DefaultCurrency, "currency", cfg.DefaultCurrency, "Currency used when a create request omits it")
	fs.StringVar(&cfg.RegistryBackend, "registry", cfg.RegistryBackend, "Order registry backend: memory, postgres or redis")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the postgres registry")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the redis registry")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between registry evictions")
	fs.StringVar(&upstreamTimeoutStr, "upstream-timeout", upstreamTimeoutStr, "Timeout for payment processor requests")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.ConfirmationPath, "confirmation-path", cfg.ConfirmationPath, "Path the payment callback redirects to")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RegistrySweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.UpstreamTimeout, err = time.ParseDuration(upstreamTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid upstream timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("RAZORPAY_KEY_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read key secret file: %w", err)
		}
		cfg.RazorpayKeySecret = strings.TrimSpace(string(content))
	}

	if hashFile, ok := lookup("API_KEY_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read api key hash file: %w", err)
		}
		cfg.APIKeyHash = strings.TrimSpace(string(content))
	}

	if cfg.RegistrySweepInterval <= 0 {
		cfg.RegistrySweepInterval = defaultSweepInterval
	}

	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = defaultUpstreamTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = defaultCurrency
	}

	if !strings.HasPrefix(cfg.ConfirmationPath, "/") {
		cfg.ConfirmationPath = "/" + cfg.ConfirmationPath
	}

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("payment processor key id and secret must be provided")
	}

	switch cfg.RegistryBackend {
	case RegistryMemory:
	case RegistryPostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided for postgres registry")
		}
	case RegistryRedis:
		if cfg.RedisAddress == "" {
			return nil, fmt.Errorf("redis address must be provided for redis registry")
		}
	default:
		return nil, fmt.Errorf("unknown registry backend %q", cfg.RegistryBackend)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
