package config

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"
)

const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Ledger   LedgerConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// DatabaseConfig describes the PostgreSQL connection and how the schema is
// brought up to date at startup
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
}

// JWTConfig holds the keys used to verify back-office access tokens. The
// private key is only needed to mint tokens in development and tests.
type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// LedgerConfig controls statement windows. Location is the calendar in
// which "same day" is decided; it defaults to the station's local zone.
type LedgerConfig struct {
	Timezone          string
	Location          *time.Location
	DefaultWindowDays int
	MaxWindowDays     int
	Currency          string
}

// Load reads the configuration from the environment. Malformed numbers,
// booleans and durations fall back to their defaults; an unknown timezone
// or unusable JWT keys are errors.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:             envString("SERVER_PORT", "8080"),
			Host:             envString("SERVER_HOST", "localhost"),
			Environment:      envString("APP_ENV", EnvDevelopment),
			ReadTimeout:      envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     envDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "station_user"),
			Password:        envString("DB_PASSWORD", "station_password"),
			Name:            envString("DB_NAME", "station_db"),
			SSLMode:         envString("DB_SSL_MODE", "disable"),
			MaxConnections:  envInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     envBool("DB_AUTO_MIGRATE", false),
			SeedDatabase:    envBool("SEED_DATABASE", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 10),
		},
		JWT: JWTConfig{
			AccessTokenDuration: envDuration("JWT_ACCESS_TOKEN_DURATION", 12*time.Hour),
			Issuer:              envString("JWT_ISSUER", "station-backoffice"),
		},
		Ledger: LedgerConfig{
			Timezone:          envString("LEDGER_TIMEZONE", "Asia/Karachi"),
			DefaultWindowDays: envInt("LEDGER_DEFAULT_WINDOW_DAYS", 30),
			MaxWindowDays:     envInt("LEDGER_MAX_WINDOW_DAYS", 366),
			Currency:          envString("LEDGER_CURRENCY", "PKR"),
		},
	}

	if cfg.IsProduction() && len(cfg.Server.CORSAllowOrigins) == 1 && cfg.Server.CORSAllowOrigins[0] == "*" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
	}

	var errs []error

	location, err := cfg.Ledger.loadLocation()
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Ledger.Location = location

	cfg.JWT.PrivateKey, cfg.JWT.PublicKey, err = cfg.loadJWTKeys()
	if err != nil {
		errs = append(errs, fmt.Errorf("jwt keys: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool { return c.Server.Environment == EnvDevelopment }

func (c *Config) IsProduction() bool { return c.Server.Environment == EnvProduction }

func (c *Config) IsTesting() bool { return c.Server.Environment == EnvTesting }

// loadLocation resolves the ledger timezone. An empty or "UTC" value is UTC.
func (c *LedgerConfig) loadLocation() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", c.Timezone, err)
	}
	return location, nil
}
