package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// State store configuration
	StoreDriver       string `mapstructure:"STORE_DRIVER"`
	StateKey          string `mapstructure:"STATE_KEY"`
	DefaultRosterFile string `mapstructure:"DEFAULT_ROSTER_FILE"`
	SQLitePath        string `mapstructure:"SQLITE_PATH"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Redis configuration
	RedisURL      string `mapstructure:"REDIS_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Per-client rate limit on write endpoints, 0 disables it
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`

	// Snapshot archive configuration
	ArchiveS3Bucket string `mapstructure:"ARCHIVE_S3_BUCKET"`
	ArchiveS3Prefix string `mapstructure:"ARCHIVE_S3_PREFIX"`
	AWSRegion       string `mapstructure:"AWS_REGION"`
	ArchiveSchedule string `mapstructure:"ARCHIVE_SCHEDULE"`

	// Telegram configuration
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `mapstructure:"TELEGRAM_CHAT_ID"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.StoreDriver = strings.ToLower(strings.TrimSpace(config.StoreDriver))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// State store defaults
	v.SetDefault("STORE_DRIVER", StoreDriverSQLite)
	v.SetDefault("STATE_KEY", "tournamentState")
	v.SetDefault("DEFAULT_ROSTER_FILE", "")
	v.SetDefault("SQLITE_PATH", "tournament.db")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "tournament")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Redis defaults
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("METRICS_ENABLED", true)

	// Archive defaults, an empty bucket disables archiving
	v.SetDefault("ARCHIVE_S3_BUCKET", "")
	v.SetDefault("ARCHIVE_S3_PREFIX", "tournament-snapshots")
	v.SetDefault("AWS_REGION", "eu-central-1")
	v.SetDefault("ARCHIVE_SCHEDULE", "")

	// Telegram defaults, an empty token disables announcements
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_CHAT_ID", 0)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.StoreDriver {
	case StoreDriverSQLite:
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	case StoreDriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case StoreDriverRedis:
		if config.RedisURL == "" && config.RedisAddr == "" {
			return fmt.Errorf("REDIS_URL or REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	if strings.TrimSpace(config.StateKey) == "" {
		return fmt.Errorf("STATE_KEY is required")
	}

	if config.RateLimitRPS < 0 || config.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}

	if config.TelegramBotToken != "" && config.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID must be set when TELEGRAM_BOT_TOKEN is set")
	}

	if config.ArchiveSchedule != "" {
		if config.ArchiveS3Bucket == "" {
			return fmt.Errorf("ARCHIVE_SCHEDULE requires ARCHIVE_S3_BUCKET")
		}
		if _, err := cron.ParseStandard(config.ArchiveSchedule); err != nil {
			return fmt.Errorf("invalid ARCHIVE_SCHEDULE: %w", err)
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ArchiveEnabled reports whether snapshots are shipped to S3
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveS3Bucket != ""
}

// TelegramEnabled reports whether results are announced on Telegram
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}
