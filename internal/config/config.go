// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	gomoney "github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	// HTTP server
	Port             string
	APIURL           *url.URL
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging
	GinMode   string
	LogFormat string
	LogLevel  string

	// Database. PostgreSQL is used if DBHost is set, SQLite otherwise.
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Ledger
	Timezone  *time.Location
	Currency  string
	Locale    string
	DevUserID string
}

// Load reads the configuration from the environment. Variables from the
// files are added to the environment first, variables that are already set
// keep their value. Without files, an optional .env file is read.
func Load(files ...string) (*Config, error) {
	err := godotenv.Load(files...)
	if err != nil && !(len(files) == 0 && errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("could not read environment file: %w", err)
	}

	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080"))
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	timezone, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("environment variable TIMEZONE must be a valid time zone: %w", err)
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		APIURL:           apiURL,
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		LogLevel:  os.Getenv("LOG_LEVEL"),

		DBPath:     getEnv("DB_PATH", "data/ledger.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "ledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Timezone:  timezone,
		Currency:  strings.ToUpper(getEnv("CURRENCY", "BRL")),
		Locale:    getEnv("LOCALE", "pt-BR"),
		DevUserID: os.Getenv("DEV_USER_ID"),
	}, nil
}

// Validate returns an error listing all invalid settings.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, "API_URL must be an absolute URL")
	}

	if gomoney.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Sprintf("unknown currency '%s'", c.Currency))
	}

	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Sprintf("invalid locale '%s'", c.Locale))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DBHost == "" && c.DBPath == "" {
		errs = append(errs, "DB_PATH cannot be empty when DB_HOST is not set")
	}

	if c.DBHost != "" && c.DBUser == "" {
		errs = append(errs, "DB_USER is required when DB_HOST is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// PostgresDSN returns the connection string for the PostgreSQL database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
