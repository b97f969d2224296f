package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	Port                string
	OriginURL           string
	DatabaseURL         string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	RedisURL            string
	RedisAddr           string
	RedisPassword       string
	Locale              string
	CurrencySign        string
	CartSessionTTL      time.Duration
	NotificationBacklog int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()
}

// FromEnv reads the configuration from the process environment without touching .env files.
func FromEnv() *Config {
	sessionTTL, err := time.ParseDuration(getEnv("CART_SESSION_TTL", "2h"))
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 2 * time.Hour
	}

	backlog, _ := strconv.Atoi(os.Getenv("NOTIFICATION_BACKLOG"))
	if backlog <= 0 {
		backlog = 20
	}

	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("APP_PORT", getEnv("PORT", "8082")),
		OriginURL:           os.Getenv("ORIGIN_URL"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "giftcard_shop"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		RedisURL:            os.Getenv("REDIS_URL"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		Locale:              getEnv("LOCALE", "ru-RU"),
		CurrencySign:        getEnv("CURRENCY_SIGN", "₽"),
		CartSessionTTL:      sessionTTL,
		NotificationBacklog: backlog,
	}
}

// DatabaseConfigured reports whether a postgres catalog should be used instead of the built-in one.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

// RedisConfigured reports whether a catalog cache should be attempted.
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisAddr != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
