package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/adrg/xdg"

	"timesheet/internal/domain"
	"timesheet/internal/logging"
)

const appDir = "timesheet"

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Config holds all configuration options for the timesheet application
type Config struct {
	Storage     StorageConfig     `mapstructure:"storage"`
	Time        TimeConfig        `mapstructure:"time"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Display     DisplayConfig     `mapstructure:"display"`
	Application ApplicationConfig `mapstructure:"application"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// StorageConfig holds repository configuration
type StorageConfig struct {
	Backend          string        `mapstructure:"backend" env:"TS_STORAGE_BACKEND"`
	Dir              string        `mapstructure:"dir" env:"TS_DB_DIR"`
	Filename         string        `mapstructure:"filename" env:"TS_DB_FILENAME"`
	DirPermissions   uint32        `mapstructure:"dir_permissions" env:"TS_DB_DIR_PERMISSIONS"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout" env:"TS_DB_TIMEOUT"`
}

// TimeConfig holds time zone and formatting configuration
type TimeConfig struct {
	Timezone      string `mapstructure:"timezone" env:"TS_TIMEZONE"`
	DisplayFormat string `mapstructure:"display_format" env:"TS_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	MaxFieldLength   int           `mapstructure:"max_field_length" env:"TS_VALIDATION_MAX_FIELD_LENGTH"`
	MaxCommentLength int           `mapstructure:"max_comment_length" env:"TS_VALIDATION_MAX_COMMENT_LENGTH"`
	MaxDuration      time.Duration `mapstructure:"max_duration" env:"TS_VALIDATION_MAX_DURATION"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Locale     string `mapstructure:"locale" env:"TS_LOCALE"`
	DateFormat string `mapstructure:"date_format" env:"TS_DATE_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout" env:"TS_APP_TIMEOUT"`
	Verbose bool          `mapstructure:"verbose" env:"TS_APP_VERBOSE"`
}

// LoggingConfig holds the log file configuration
type LoggingConfig struct {
	File       string `mapstructure:"file" env:"TS_LOG_FILE"`
	Level      string `mapstructure:"level" env:"TS_LOG_LEVEL"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	dataDir := filepath.Join(xdg.DataHome, appDir)

	return &Config{
		Storage: StorageConfig{
			Backend:          BackendSQLite,
			Dir:              dataDir,
			Filename:         "timesheet.db",
			DirPermissions:   0755,
			OperationTimeout: 5 * time.Second,
		},
		Time: TimeConfig{
			Timezone:      "Local",
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Validation: ValidationConfig{
			MaxFieldLength:   255,
			MaxCommentLength: 1000,
			MaxDuration:      7 * 24 * time.Hour,
		},
		Display: DisplayConfig{
			Locale:     "en",
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Logging: LoggingConfig{
			File:       filepath.Join(xdg.StateHome, appDir, "timesheet.log"),
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultConfigFile returns the path of the optional YAML config file
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.yaml")
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// Location resolves the configured time zone. Empty and "Local" mean the
// system zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Time.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Time.Timezone)
	}
}

// LogConfig converts the logging section for the logging package
func (c *Config) LogConfig() logging.LogConfig {
	return logging.LogConfig{
		File:       c.Logging.File,
		Level:      c.Logging.Level,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TS_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if dir := os.Getenv("TS_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TS_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TS_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if timeout := os.Getenv("TS_DB_TIMEOUT"); timeout != "" {
		c.Storage.OperationTimeout = ParseDurationWithFallback(timeout, c.Storage.OperationTimeout)
	}

	// Time configuration
	if tz := os.Getenv("TS_TIMEZONE"); tz != "" {
		c.Time.Timezone = tz
	}
	if format := os.Getenv("TS_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Validation configuration
	if maxLen := os.Getenv("TS_VALIDATION_MAX_FIELD_LENGTH"); maxLen != "" {
		c.Validation.MaxFieldLength = ParseIntWithFallback(maxLen, c.Validation.MaxFieldLength)
	}
	if maxLen := os.Getenv("TS_VALIDATION_MAX_COMMENT_LENGTH"); maxLen != "" {
		c.Validation.MaxCommentLength = ParseIntWithFallback(maxLen, c.Validation.MaxCommentLength)
	}
	if maxDur := os.Getenv("TS_VALIDATION_MAX_DURATION"); maxDur != "" {
		c.Validation.MaxDuration = ParseDurationWithFallback(maxDur, c.Validation.MaxDuration)
	}

	// Display configuration
	if locale := os.Getenv("TS_LOCALE"); locale != "" {
		c.Display.Locale = locale
	}
	if format := os.Getenv("TS_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TS_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TS_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Logging configuration
	if file := os.Getenv("TS_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if level := os.Getenv("TS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendSQLite, BackendBolt:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
		}
	case BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of sqlite, bolt, memory"}
	}
	if c.Storage.OperationTimeout <= 0 {
		return &ConfigError{Field: "storage.operation_timeout", Message: "operation timeout must be positive"}
	}

	// Validate time configuration
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "time.timezone", Message: "unknown time zone " + strconv.Quote(c.Time.Timezone)}
	}
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.MaxFieldLength < 1 {
		return &ConfigError{Field: "validation.max_field_length", Message: "max field length must be at least 1"}
	}
	if c.Validation.MaxCommentLength < 1 {
		return &ConfigError{Field: "validation.max_comment_length", Message: "max comment length must be at least 1"}
	}
	if c.Validation.MaxDuration <= 0 {
		return &ConfigError{Field: "validation.max_duration", Message: "max duration must be positive"}
	}

	// Validate display configuration
	if !domain.SupportedLocale(c.Display.Locale) {
		return &ConfigError{Field: "display.locale", Message: "locale must be en or de"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	// Validate logging configuration
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error()}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
