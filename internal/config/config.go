package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/pkg/crypto"
)

// Config holds all configuration values
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Cipher       CipherConfig
	Catalog      CatalogConfig
	Provisioning ProvisioningConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	SigningKey    string
	Issuer        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// CipherConfig holds the credential cipher key material (base64)
type CipherConfig struct {
	Key            string
	IV             string
	CredentialMode crypto.CredentialMode
}

// CatalogConfig holds catalog lookup cache settings
type CatalogConfig struct {
	CacheTTL time.Duration
}

// ProvisioningConfig holds wallet account provisioning limits
type ProvisioningConfig struct {
	MaxAccountsPerProfile int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			DBName:       getEnv("DB_NAME", "wallet"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			SigningKey:    getEnv("JWT_SIGNING_KEY", ""),
			Issuer:        getEnv("JWT_ISSUER", ""),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 2*time.Hour),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 816*time.Hour),
		},
		Cipher: CipherConfig{
			Key:            getEnv("CIPHER_KEY", ""),
			IV:             getEnv("CIPHER_IV", ""),
			CredentialMode: crypto.CredentialMode(strings.ToLower(getEnv("CREDENTIAL_MODE", string(crypto.CredentialModeDeterministic)))),
		},
		Catalog: CatalogConfig{
			CacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		Provisioning: ProvisioningConfig{
			MaxAccountsPerProfile: getEnvAsInt("MAX_ACCOUNTS_PER_PROFILE", 5),
		},
	}
}

// Validate checks key material and signing settings. Any failure is fatal.
func (c *Config) Validate() error {
	if c.JWT.SigningKey == "" {
		return domainerrors.ConfigurationError("JWT_SIGNING_KEY is required", nil)
	}
	if c.JWT.Issuer == "" {
		return domainerrors.ConfigurationError("JWT_ISSUER is required", nil)
	}
	if _, err := crypto.NewAESCipher(c.Cipher.Key, c.Cipher.IV); err != nil {
		return domainerrors.ConfigurationError("CIPHER_KEY must be 32 bytes and CIPHER_IV 16 bytes, base64 encoded", err)
	}
	switch c.Cipher.CredentialMode {
	case crypto.CredentialModeDeterministic, crypto.CredentialModeBcrypt:
	default:
		return domainerrors.ConfigurationError("unknown CREDENTIAL_MODE "+string(c.Cipher.CredentialMode), nil)
	}
	if c.Provisioning.MaxAccountsPerProfile < 1 {
		return domainerrors.ConfigurationError("MAX_ACCOUNTS_PER_PROFILE must be positive", nil)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
