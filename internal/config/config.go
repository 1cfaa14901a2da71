package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"

	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

// Config holds every runtime setting of the billing service.
//
// Values come from the environment (a .env file is loaded by the binaries
// through godotenv/autoload). Malformed numbers and durations fall back to
// the default and are logged.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	OrdersTable        string
	EventsTable        string
	StoreBackend       string

	// RateTolerance is the absolute difference, in minor units, allowed between
	// a stored billable amount and the amount recomputed from the hourly rate.
	RateTolerance        int64
	ReconcileTimeout     time.Duration
	ReconcileMaxAttempts int
	EventRetention       time.Duration

	PaymentProvider     string
	PaymentGatewayMock  bool
	Currency            string
	PlatformFeeBps      int64
	StripeSecretKey     string
	StripeWebhookSecret string

	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventCacheTTL time.Duration

	RabbitMQURL      string
	RabbitMQExchange string
}

func Load() Config {
	return Config{
		Port: getenvDefault("PORT", "8080"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		OrdersTable:        getenvDefault("ORDERS_TABLE", "orders"),
		EventsTable:        getenvDefault("BILLING_EVENTS_TABLE", "billing_events"),
		StoreBackend:       strings.ToLower(getenvDefault("STORE_BACKEND", StoreDynamoDB)),

		RateTolerance:        getenvInt64("RATE_MISMATCH_TOLERANCE", 10),
		ReconcileTimeout:     getenvDuration("RECONCILE_TIMEOUT", 10*time.Second),
		ReconcileMaxAttempts: int(getenvInt64("RECONCILE_MAX_ATTEMPTS", 3)),
		EventRetention:       getenvDuration("EVENT_RETENTION", 30*24*time.Hour),

		PaymentProvider:     strings.ToLower(getenvDefault("PAYMENT_PROVIDER", ProviderStripe)),
		PaymentGatewayMock:  getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		Currency:            strings.ToLower(getenvDefault("BILLING_CURRENCY", "eur")),
		PlatformFeeBps:      getenvInt64("PLATFORM_FEE_BPS", 450),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		MercadoPagoAccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoWebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       int(getenvInt64("REDIS_DB", 0)),
		EventCacheTTL: getenvDuration("EVENT_CACHE_TTL", 24*time.Hour),

		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getenvDefault("RABBITMQ_EXCHANGE", "billing.exchange"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		log.Printf("[billing][config] invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("[billing][config] invalid %s=%q, using default %s", key, raw, def)
		return def
	}
	return v
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
