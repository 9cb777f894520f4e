package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`

	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	StripeSecretKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret  string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripePublishableKey string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`

	FrontendURL         string  `mapstructure:"FRONTEND_URL"`
	CheckoutSuccessPath string  `mapstructure:"CHECKOUT_SUCCESS_PATH"`
	CheckoutCancelPath  string  `mapstructure:"CHECKOUT_CANCEL_PATH"`
	Currency            string  `mapstructure:"CURRENCY"`
	DefaultNightlyRate  float64 `mapstructure:"DEFAULT_NIGHTLY_RATE"`

	PendingBookingTTLHours int `mapstructure:"PENDING_BOOKING_TTL_HOURS"`

	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "roamline.db")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://127.0.0.1:8080/auth/google/callback")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:3000")
	viper.SetDefault("CHECKOUT_SUCCESS_PATH", "/checkout/success")
	viper.SetDefault("CHECKOUT_CANCEL_PATH", "/checkout/cancel")
	viper.SetDefault("CURRENCY", "usd")
	viper.SetDefault("DEFAULT_NIGHTLY_RATE", 150.0)
	viper.SetDefault("PENDING_BOOKING_TTL_HOURS", 24)

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("GOOGLE_CLIENT_ID")
	viper.BindEnv("GOOGLE_CLIENT_SECRET")
	viper.BindEnv("GOOGLE_REDIRECT_URL")
	viper.BindEnv("STRIPE_SECRET_KEY")
	viper.BindEnv("STRIPE_WEBHOOK_SECRET")
	viper.BindEnv("STRIPE_PUBLISHABLE_KEY")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("CHECKOUT_SUCCESS_PATH")
	viper.BindEnv("CHECKOUT_CANCEL_PATH")
	viper.BindEnv("CURRENCY")
	viper.BindEnv("DEFAULT_NIGHTLY_RATE")
	viper.BindEnv("PENDING_BOOKING_TTL_HOURS")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

// StripeConfigured reports whether checkout can be offered at all.
func (c *Config) StripeConfigured() bool {
	return c.StripeSecretKey != ""
}

// CheckoutSuccessURL builds the default redirect target for a trip.
func (c *Config) CheckoutSuccessURL(tripID uint) string {
	return fmt.Sprintf("%s%s?trip=%d", c.FrontendURL, c.CheckoutSuccessPath, tripID)
}

func (c *Config) CheckoutCancelURL(tripID uint) string {
	return fmt.Sprintf("%s%s?trip=%d", c.FrontendURL, c.CheckoutCancelPath, tripID)
}
