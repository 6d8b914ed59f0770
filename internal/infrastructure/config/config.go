package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const devJWTSecret = "crm-assistencia-dev-secret"

type Config struct {
	Port               string
	GinMode            string
	LogLevel           string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins []string
	SeedDemoData       bool
	LowStockCheckEvery time.Duration

	SMTP     SMTPConfig
	RabbitMQ RabbitMQConfig
	Payments PaymentsConfig
	DynamoDB DynamoDBConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	AlertTo  string
}

// Enabled reports whether low-stock alerts can be mailed.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.AlertTo != ""
}

type RabbitMQConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	VHost      string
	Exchange   string
	RetryCount int
	RetryDelay time.Duration
}

func (c RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

type PaymentsConfig struct {
	Enabled           bool
	AccessToken       string
	Mock              bool
	SandboxPayerEmail string
	SalePaymentsTable string
}

// DynamoDBConfig points at the table store for sale payments. Endpoint is set
// for DynamoDB Local; empty keys use the default AWS credential chain.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads the environment. Malformed values fall back to their defaults
// with a warning.
func Load() Config {
	cfg := Config{
		Port:               getenvDefault("PORT", "8080"),
		GinMode:            getenvDefault("GIN_MODE", "debug"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		JWTSecret:          getenvDefault("JWT_SECRET", devJWTSecret),
		JWTTTL:             getenvDuration("JWT_TTL", 24*time.Hour),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		SeedDemoData:       getenvBool("SEED_DEMO_DATA", false),
		LowStockCheckEvery: getenvDuration("LOW_STOCK_CHECK_EVERY", time.Hour),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenvDefault("SMTP_FROM", "crm@assistencia.local"),
			AlertTo:  os.Getenv("ALERT_EMAIL_TO"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:       os.Getenv("RABBITMQ_HOST"),
			Port:       getenvInt("RABBITMQ_PORT", 5672),
			Username:   getenvDefault("RABBITMQ_USERNAME", "guest"),
			Password:   getenvDefault("RABBITMQ_PASSWORD", "guest"),
			VHost:      getenvDefault("RABBITMQ_VHOST", "/"),
			Exchange:   getenvDefault("RABBITMQ_EXCHANGE", "crm.events"),
			RetryCount: getenvInt("RABBITMQ_RETRY_COUNT", 3),
			RetryDelay: getenvDuration("RABBITMQ_RETRY_DELAY", 5*time.Second),
		},
		Payments: PaymentsConfig{
			Enabled:           getenvBool("PAYMENTS_ENABLED", false),
			AccessToken:       strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:              getenvBool("PAYMENT_GATEWAY_MOCK", false) || getenvBool("MERCADOPAGO_MOCK", false),
			SandboxPayerEmail: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			SalePaymentsTable: getenvDefault("SALE_PAYMENTS_TABLE", "sale_payments"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     strings.TrimSpace(os.Getenv("AWS_ACCESS_KEY_ID")),
			SecretAccessKey: strings.TrimSpace(os.Getenv("AWS_SECRET_ACCESS_KEY")),
			Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		},
	}
	if cfg.JWTSecret == devJWTSecret {
		log.Warn().Msg("[config] JWT_SECRET not set, using development secret")
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("[config] invalid integer, using default")
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	log.Warn().Str("key", key).Msg("[config] invalid boolean, using default")
	return def
}

// getenvDuration returns def for an unset or blank key. "0", "off" and
// "disabled" give a zero duration, which callers read as disabled.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "0", "off", "disabled":
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("[config] invalid duration, using default")
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
