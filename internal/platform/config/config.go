package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Service names select the per-binary defaults.
const (
	AccountService  = "account"
	CustomerService = "customer"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	LogLevel       slog.Level

	// Messaging
	KafkaBrokers       []string
	KafkaCustomerTopic string
	KafkaConsumerGroup string
	KafkaDLQTopic      string

	// HTTP edge
	RateLimit          string
	RedisURL           string
	CORSAllowedOrigins []string
	MetricsEnabled     bool

	DefaultAccountType string
}

const defaultRateLimit = "100-M"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig(service string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations/"+service)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_CUSTOMER_TOPIC", "customers.created")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "account-service")
	v.SetDefault("KAFKA_DLQ_TOPIC", "customers.created.dlq")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("DEFAULT_ACCOUNT_TYPE", "SAVINGS")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = parseLogLevel(v.GetString("LOG_LEVEL"))

	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaCustomerTopic = v.GetString("KAFKA_CUSTOMER_TOPIC")
	cfg.KafkaConsumerGroup = v.GetString("KAFKA_CONSUMER_GROUP")
	cfg.KafkaDLQTopic = v.GetString("KAFKA_DLQ_TOPIC")
	if len(cfg.KafkaBrokers) == 0 {
		slog.Warn("KAFKA_BROKERS not set. Customer events will not be exchanged.")
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		slog.Warn("Invalid RATE_LIMIT, using default",
			slog.String("value", cfg.RateLimit),
			slog.String("default", defaultRateLimit))
		cfg.RateLimit = defaultRateLimit
	}
	cfg.RedisURL = v.GetString("REDIS_URL")

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	cfg.MetricsEnabled = v.GetBool("METRICS_ENABLED")

	cfg.DefaultAccountType = strings.TrimSpace(v.GetString("DEFAULT_ACCOUNT_TYPE"))
	if cfg.DefaultAccountType == "" {
		cfg.DefaultAccountType = "SAVINGS"
	}

	return cfg, nil
}

// HasKafka reports whether a broker list was configured.
func (c *Config) HasKafka() bool {
	return len(c.KafkaBrokers) > 0
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using info", slog.String("value", s))
		return slog.LevelInfo
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
