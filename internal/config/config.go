package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Store       StoreConfig
	Pix         PixConfig
	WhatsApp    WhatsAppConfig
	Session     SessionConfig
	Catalog     CatalogConfig
	Cart        CartConfig
}

// StoreConfig carries the store's public identity
type StoreConfig struct {
	Name string
}

// PixConfig carries the merchant fields handed to the payment-code
// generator. Key is only required when a PIX submission happens.
type PixConfig struct {
	Key          string
	City         string
	ReceiverName string
}

// WhatsAppConfig carries the messaging destination. Optional; submissions
// proceed with a notice when it is unset.
type WhatsAppConfig struct {
	Number string
}

type SessionConfig struct {
	Secret string
}

// CatalogConfig points at an optional JSON catalog override. Empty means
// the embedded default catalog is served.
type CatalogConfig struct {
	File string
}

type CartConfig struct {
	IdleTTL time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_NAME", "Açai de Casa")
	viper.SetDefault("PIX_CITY", "RECIFE")
	viper.SetDefault("PIX_RECEIVER_NAME", "ACAI DE CASA")
	viper.SetDefault("CART_IDLE_TTL", "2h")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	idleTTL, err := time.ParseDuration(getEnvOrViper("CART_IDLE_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CART_IDLE_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Name: getEnvOrViper("STORE_NAME", "Açai de Casa"),
		},
		Pix: PixConfig{
			Key:          getEnvOrViper("PIX_KEY", ""),
			City:         getEnvOrViper("PIX_CITY", "RECIFE"),
			ReceiverName: getEnvOrViper("PIX_RECEIVER_NAME", "ACAI DE CASA"),
		},
		WhatsApp: WhatsAppConfig{
			Number: getEnvOrViper("WHATSAPP_NUMBER", ""),
		},
		Session: SessionConfig{
			Secret: getEnvOrViper("SESSION_SECRET", ""),
		},
		Catalog: CatalogConfig{
			File: getEnvOrViper("CATALOG_FILE", ""),
		},
		Cart: CartConfig{
			IdleTTL: idleTTL,
		},
	}

	// Validate required fields. PIX and WhatsApp settings are checked at
	// submission time instead, with per-branch severity.
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
