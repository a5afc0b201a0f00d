package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort string
	BaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost string
	RedisPort string

	// OIDC settings for the external identity provider
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectPath string   // callback route, must match the redirect URI registered with the provider
	OIDCScopes       []string
	OIDCLogoutURL    string // optional end-session endpoint, session is cleared locally either way
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is merged in first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	redirectPath := os.Getenv("OIDC_REDIRECT_PATH")
	if redirectPath == "" {
		redirectPath = "/getAToken"
	}
	scopes := []string{"openid", "profile"}
	if scopesEnv := os.Getenv("OIDC_SCOPES"); scopesEnv != "" {
		scopes = strings.Fields(scopesEnv)
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	cfg := &Config{
		AppPort: os.Getenv("TRACKER_PORT"),
		BaseURL: strings.TrimRight(baseURL, "/"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: os.Getenv("REDIS_PORT"),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectPath: redirectPath,
		OIDCScopes:       scopes,
		OIDCLogoutURL:    os.Getenv("OIDC_LOGOUT_URL"),
	}
	// Basic validation for required fields
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration is incomplete")
	}
	if cfg.OIDCIssuer == "" || cfg.OIDCClientID == "" || cfg.OIDCClientSecret == "" {
		return nil, fmt.Errorf("oidc configuration is incomplete")
	}
	return cfg, nil
}

// RedirectURL is the absolute callback URL sent to the identity provider.
func (c *Config) RedirectURL() string {
	return c.BaseURL + c.OIDCRedirectPath
}

// ConnectDatabase initializes a GORM database connection to PostgreSQL.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
