package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	SMTP
	Crypto
	Webhook
	Kafka
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type SMTP struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Address  string `env:"EMAIL_ADDRESS"`
	Password string `env:"APP_PASSWORD"`
	Sender   string `env:"EMAIL_SENDER_NAME" envDefault:"iPOP Event"`
}

type Crypto struct {
	EncryptionKey string `env:"ENCRYPTION_KEY"`
	EncryptionIV  string `env:"ENCRYPTION_IV"`
}

type Webhook struct {
	// Empty secret disables signature verification. That is a deployment
	// risk, not a bug: the gateway dashboard may be configured without a
	// secret and the endpoint must still accept its events.
	Secret              string `env:"RAZORPAY_WEBHOOK_SECRET"`
	TargetPaymentLinkID string `env:"TARGET_PAYMENT_LINK_ID" envDefault:"pl_RZdy0gwoRRyEDB"`
}

type Kafka struct {
	// Empty broker list disables the tickets.issued fanout entirely.
	Brokers      string `env:"KAFKA_BROKERS"`
	PublishTopic string `env:"KAFKA_PUBLISH_TOPIC" envDefault:"tickets.issued"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
