package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB      int    `mapstructure:"REDIS_CART_DB"`
	RedisRewardsDB   int    `mapstructure:"REDIS_REWARDS_DB"`
	RedisPromoTaskDB int    `mapstructure:"REDIS_PROMO_TASK_DB"`

	// Pricing rules. Amounts are minor currency units.
	TaxRate               float64 `mapstructure:"TAX_RATE"`
	FreeShippingThreshold int64   `mapstructure:"FREE_SHIPPING_THRESHOLD"`
	ShippingFee           int64   `mapstructure:"SHIPPING_FEE"`

	// Rewards: points granted per PointsUnit of subtotal.
	PointsPerUnit int64 `mapstructure:"POINTS_PER_UNIT"`
	PointsUnit    int64 `mapstructure:"POINTS_UNIT"`

	// Catalog feed refresh interval, seconds. 0 disables the loop.
	CatalogRefreshSec int `mapstructure:"CATALOG_REFRESH_SEC"`

	// Stripe.
	StripeKey string `mapstructure:"STRIPE_KEY"`
	Currency  string `mapstructure:"CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("REDIS_REWARDS_DB", 1)
	viper.SetDefault("REDIS_PROMO_TASK_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "motorhub")
	viper.SetDefault("TAX_RATE", 0.18)
	viper.SetDefault("FREE_SHIPPING_THRESHOLD", 2000)
	viper.SetDefault("SHIPPING_FEE", 200)
	viper.SetDefault("POINTS_PER_UNIT", 10)
	viper.SetDefault("POINTS_UNIT", 1000)
	viper.SetDefault("CATALOG_REFRESH_SEC", 300)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("CURRENCY", "inr")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
