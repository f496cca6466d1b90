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
	Catalog     CatalogConfig
	Checkout    CheckoutConfig
}

// CatalogConfig controls the listing defaults
type CatalogConfig struct {
	PageSize int // products per listing page
}

// CheckoutConfig controls the simulated order-processing delay
type CheckoutConfig struct {
	SubmitDelay time.Duration
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
	viper.SetDefault("CATALOG_PAGE_SIZE", 9)
	viper.SetDefault("SUBMIT_DELAY_MS", 1500)

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Catalog: CatalogConfig{
			PageSize: viper.GetInt("CATALOG_PAGE_SIZE"),
		},
		Checkout: CheckoutConfig{
			SubmitDelay: time.Duration(viper.GetInt("SUBMIT_DELAY_MS")) * time.Millisecond,
		},
	}

	if cfg.Catalog.PageSize < 1 {
		return nil, fmt.Errorf("CATALOG_PAGE_SIZE must be at least 1")
	}
	if cfg.Checkout.SubmitDelay < 0 {
		return nil, fmt.Errorf("SUBMIT_DELAY_MS cannot be negative")
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
