package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrMissingDSN = errors.New("database dsn is not set")

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Clicks    ClicksConfig    `yaml:"clicks"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // postgres | sqlite
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"`
	IngestToken string `yaml:"ingest_token"`
}

type AnalyticsConfig struct {
	TopLimit     int           `yaml:"top_limit"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

type ClicksConfig struct {
	VisitorSalt string `yaml:"visitor_salt"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Analytics: AnalyticsConfig{
			TopLimit:     10,
			QueryTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE, a local .env file and finally the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := DefaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Addr, "HTTP_ADDR")
	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "POSTGRES_DSN")
	setString(&cfg.Database.DSN, "DATABASE_DSN")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.IngestToken, "INGEST_TOKEN")
	setString(&cfg.Clicks.VisitorSalt, "VISITOR_SALT")
	setString(&cfg.Logging.Level, "LOG_LEVEL")

	var errs []error
	errs = append(errs,
		setInt(&cfg.Database.MaxOpenConns, "DATABASE_MAX_OPEN_CONNS"),
		setInt(&cfg.Database.MaxIdleConns, "DATABASE_MAX_IDLE_CONNS"),
		setInt(&cfg.Analytics.TopLimit, "ANALYTICS_TOP_LIMIT"),
		setBool(&cfg.Database.AutoMigrate, "DATABASE_AUTO_MIGRATE"),
		setDuration(&cfg.Database.ConnMaxLifetime, "DATABASE_CONN_MAX_LIFETIME"),
		setDuration(&cfg.Analytics.QueryTimeout, "ANALYTICS_QUERY_TIMEOUT"),
		setDuration(&cfg.Server.ShutdownTimeout, "SHUTDOWN_TIMEOUT"),
	)
	return errors.Join(errs...)
}

func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return ErrMissingDSN
	}
	if c.Analytics.TopLimit <= 0 {
		return fmt.Errorf("analytics top limit must be positive, got %d", c.Analytics.TopLimit)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
