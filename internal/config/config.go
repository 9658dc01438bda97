package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. Credentials
// for the backend collaborators live here and are handed to the clients
// explicitly; nothing reads tokens ambiently at call time.
type Config struct {
	Port              string
	GoEnv             string
	OrderServiceURL   string
	OrderServiceKey   string
	InvoiceServiceURL string
	InvoiceServiceKey string
	AdminOrigin       string
	RedisHost         string
	RabbitURL         string
	MySQLUser         string
	MySQLPassword     string
	MySQLHost         string
	MySQLPort         string
	MySQLDatabase     string
}

// Load reads configuration from the environment, loading a .env file first
// when one exists. In deployed environments variables are set directly, so a
// missing .env file is fine.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GoEnv:             getEnv("GO_ENV", "development"),
		OrderServiceURL:   getEnv("ORDER_SERVICE_URL", ""),
		OrderServiceKey:   getEnv("ORDER_SERVICE_API_KEY", ""),
		InvoiceServiceURL: getEnv("INVOICE_SERVICE_URL", ""),
		InvoiceServiceKey: getEnv("INVOICE_SERVICE_API_KEY", ""),
		AdminOrigin:       getEnv("ADMIN_ORIGIN", "http://localhost:3000"),
		RedisHost:         getEnv("REDIS_HOST", ""),
		RabbitURL:         getEnv("RABBITMQ_URL", ""),
		MySQLUser:         getEnv("MYSQL_USER", ""),
		MySQLPassword:     getEnv("MYSQL_PASSWORD", ""),
		MySQLHost:         getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:         getEnv("MYSQL_PORT", "3306"),
		MySQLDatabase:     getEnv("MYSQL_DATABASE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration the service cannot run without.
func (c *Config) Validate() error {
	if c.OrderServiceURL == "" {
		return fmt.Errorf("ORDER_SERVICE_URL is required")
	}
	if c.InvoiceServiceURL == "" {
		return fmt.Errorf("INVOICE_SERVICE_URL is required")
	}
	return nil
}

// MySQLDSN builds the gorm DSN from the individual MYSQL_* settings.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDatabase)
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
