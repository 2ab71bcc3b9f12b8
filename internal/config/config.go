package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища набора геозон
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Store Config
	StoreDriver  string        `env:"STORE_DRIVER" envDefault:"memory"`
	StoreKey     string        `env:"STORE_KEY" envDefault:"high_risk_areas"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	DBMaxConns   int           `env:"DB_MAX_CONNS" envDefault:"4"`
	SQLitePath   string        `env:"SQLITE_PATH" envDefault:"risk_areas.db"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// Risk engine
	RiskRadiusDegrees float64 `env:"RISK_RADIUS_DEGREES" envDefault:"0.002"`
	RiskVertexCount   int     `env:"RISK_VERTEX_COUNT" envDefault:"12"`
	GeneratorRadiusKm float64 `env:"GENERATOR_RADIUS_KM" envDefault:"5"`
	GeneratorSampling string  `env:"GENERATOR_SAMPLING" envDefault:"angle_radius"`
	BatchConcurrency  int     `env:"BATCH_CONCURRENCY" envDefault:"8"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		StoreDriver:       strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StoreMemory))),
		StoreKey:          getEnv("STORE_KEY", "high_risk_areas"),
		StoreTimeout:      getEnvAsDuration("STORE_TIMEOUT", 3*time.Second),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 4),
		SQLitePath:        getEnv("SQLITE_PATH", "risk_areas.db"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		RateLimitRPS:      getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 40),
		RiskRadiusDegrees: getEnvAsFloat("RISK_RADIUS_DEGREES", 0.002),
		RiskVertexCount:   getEnvAsInt("RISK_VERTEX_COUNT", 12),
		GeneratorRadiusKm: getEnvAsFloat("GENERATOR_RADIUS_KM", 5),
		GeneratorSampling: getEnv("GENERATOR_SAMPLING", "angle_radius"),
		BatchConcurrency:  getEnvAsInt("BATCH_CONCURRENCY", 8),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreMemory
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR environment variable is required for STORE_DRIVER=redis")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	// NaN не проходит сравнение
	if !(c.RiskRadiusDegrees > 0) {
		return fmt.Errorf("RISK_RADIUS_DEGREES must be positive")
	}
	if c.RiskVertexCount < 3 {
		return fmt.Errorf("RISK_VERTEX_COUNT must be at least 3")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
