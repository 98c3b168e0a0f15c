package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// Config holds the environment-supplied settings.
//
// An empty STRIPE_WEBHOOK_SECRET disables webhook handling (events are
// acknowledged and ignored). An empty STRIPE_API_KEY makes every gateway
// call fail at first use.

type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	StripeAPIKey         string `env:"STRIPE_API_KEY"`
	StripeWebhookSecret  string `env:"STRIPE_WEBHOOK_SECRET"`
	CheckoutSuccessURL   string `env:"STRIPE_CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL    string `env:"STRIPE_CHECKOUT_CANCEL_URL"`
	StripeTimeoutSeconds int    `env:"STRIPE_TIMEOUT_SECONDS" envDefault:"30"`

	PaymentsTable            string `env:"PAYMENTS_TABLE" envDefault:"company_payments"`
	SubscriptionPaidQueueURL string `env:"SUBSCRIPTION_PAID_QUEUE_URL"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c *Config) StripeTimeout() time.Duration {
	return time.Duration(c.StripeTimeoutSeconds) * time.Second
}
