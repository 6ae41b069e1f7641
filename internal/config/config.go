package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from file, environment and flags.
type Config struct {
	RunAddress         string        `yaml:"run_address"`
	DatabaseURI        string        `yaml:"database_uri"`
	OrdersPath         string        `yaml:"orders_file"`
	PaymentMethodsPath string        `yaml:"payment_methods_file"`
	LogLevel           string        `yaml:"log_level"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
}

const (
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// ServerMode reports whether the application serves HTTP instead of running a single batch.
func (c *Config) ServerMode() bool {
	return c.RunAddress != ""
}

// Load parses configuration from flags, environment variables and optional YAML file.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		LogLevel:        defaultLogLevel,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	configFile := getString(lookup, "CONFIG_FILE", "")
	if path, ok := scanConfigFlag(args); ok {
		configFile = path
	}
	if configFile != "" {
		if err := loadFile(configFile, cfg); err != nil {
			return nil, err
		}
	}

	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getString(lookup, "DATABASE_URI", cfg.DatabaseURI)
	cfg.OrdersPath = getString(lookup, "ORDERS_FILE", cfg.OrdersPath)
	cfg.PaymentMethodsPath = getString(lookup, "PAYMENT_METHODS_FILE", cfg.PaymentMethodsPath)
	cfg.LogLevel = getString(lookup, "LOG_LEVEL", cfg.LogLevel)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	fs := flag.NewFlagSet("optimizer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&configFile, "c", configFile, "YAML configuration file")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address, enables server mode")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN to load orders and payment methods from")
	fs.StringVar(&cfg.OrdersPath, "orders", cfg.OrdersPath, "Orders JSON file")
	fs.StringVar(&cfg.PaymentMethodsPath, "methods", cfg.PaymentMethodsPath, "Payment methods JSON file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	positional := fs.Args()
	if len(positional) > 2 {
		return nil, fmt.Errorf("unexpected arguments: %v", positional[2:])
	}
	if len(positional) > 0 {
		cfg.OrdersPath = positional[0]
	}
	if len(positional) > 1 {
		cfg.PaymentMethodsPath = positional[1]
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if !cfg.ServerMode() && cfg.DatabaseURI == "" {
		if cfg.OrdersPath == "" || cfg.PaymentMethodsPath == "" {
			return nil, fmt.Errorf("orders and payment methods files or database URI must be provided")
		}
	}

	return cfg, nil
}

// scanConfigFlag finds -c before the flag set is parsed, so file values act as flag defaults.
func scanConfigFlag(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return "", false
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "c" {
			continue
		}
		if hasValue {
			return value, true
		}
		if i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
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
