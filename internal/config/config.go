package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// DefaultPlaceholderImageURL is stored on create when no image is supplied.
const DefaultPlaceholderImageURL = "https://images.unsplash.com/photo-1511556820780-dba9ba36abe3?w=500&auto=format&fit=crop&q=60"

type Config struct {
	Port string

	StoreDriver string
	DataFile    string
	BoltPath    string
	StoreKey    string
	DatabaseURL string

	PlaceholderImageURL string

	JWTSecret         string
	AdminPasswordHash string
	TokenTTL          time.Duration

	LogMode string
	LogFile string

	ImageDir       string
	ImageMapping   string
	PublicImageDir string

	// EnvFileLoaded is set when values were read from .env. Load runs before
	// the logger exists, so callers report it.
	EnvFileLoaded bool
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	envLoaded := false
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: error loading .env file:", err)
		} else {
			envLoaded = true
		}
	}

	cfg := &Config{
		Port:                getEnv("PORT", "3000"),
		StoreDriver:         getEnv("STORE_DRIVER", "file"),
		DataFile:            getEnv("DATA_FILE", "data/products.json"),
		BoltPath:            getEnv("BOLT_PATH", "data/catalog.db"),
		StoreKey:            getEnv("STORE_KEY", "gaming_store_products"),
		DatabaseURL:         databaseURL(),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", DefaultPlaceholderImageURL),
		JWTSecret:           getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		TokenTTL:            cast.ToDuration(getEnv("TOKEN_TTL", "24h")),
		LogMode:             getEnv("LOG_MODE", "development"),
		LogFile:             getEnv("LOG_FILE", ""),
		ImageDir:            getEnv("IMAGE_DIR", "images"),
		ImageMapping:        getEnv("IMAGE_MAPPING", ""),
		PublicImageDir:      getEnv("PUBLIC_IMAGE_DIR", "public/products"),
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	cfg.EnvFileLoaded = envLoaded
	return cfg
}

// AuthEnabled reports whether mutating routes require an admin token.
func (c *Config) AuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

func databaseURL() string {
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		return dsn
	}
	if getEnv("DB_HOST", "") == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", ""),
		getEnv("DB_USER", ""),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", ""),
		getEnv("DB_PORT", "5432"),
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
