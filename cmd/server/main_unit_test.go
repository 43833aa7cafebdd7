package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hubtel-wallet.backend/internal/config"
	"hubtel-wallet.backend/pkg/crypto"
	plog "hubtel-wallet.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		runServer = origRunServer
	})

	loadDotenv = func(...string) error { return nil }
	initLog = plog.Init
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "wallet",
			SSLMode:  "disable",
		},
		Redis: config.RedisConfig{
			URL: "redis://localhost:6379",
		},
		JWT: config.JWTConfig{
			SigningKey:    "test-signing-key",
			Issuer:        "wallet-test",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		},
		Cipher: config.CipherConfig{
			Key:            "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=",
			IV:             "ZmVkY2JhOTg3NjU0MzIxMA==",
			CredentialMode: crypto.CredentialModeDeterministic,
		},
		Catalog: config.CatalogConfig{
			CacheTTL: time.Minute,
		},
		Provisioning: config.ProvisioningConfig{
			MaxAccountsPerProfile: 5,
		},
	}
}

func openSQLite(t *testing.T) func(config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	return func(config.DatabaseConfig) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}

func TestRunMainProcess_InvalidConfig(t *testing.T) {
	withMainHooks(t)

	redisCalled := false
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Cipher.Key = "c2hvcnQ="
		return cfg
	}
	initRedis = func(string, string) error {
		redisCalled = true
		return nil
	}

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.False(t, redisCalled, "startup must stop before touching redis")
}

func TestRunMainProcess_MissingSigningKey(t *testing.T) {
	withMainHooks(t)

	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.JWT.SigningKey = ""
		return cfg
	}

	assert.Error(t, runMainProcess())
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig
	initRedis = func(string, string) error { return errors.New("redis down") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig
	initRedis = func(string, string) error { return nil }
	openDB = func(config.DatabaseConfig) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig
	initRedis = func(string, string) error { return nil }
	openDB = openSQLite(t)
	runServer = func(*http.Server) error { return errors.New("listen failed") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen failed")
}

func TestRunMainProcess_ServerClosedIsClean(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig
	initRedis = func(string, string) error { return nil }
	openDB = openSQLite(t)

	var addr string
	runServer = func(srv *http.Server) error {
		addr = srv.Addr
		return http.ErrServerClosed
	}

	require.NoError(t, runMainProcess())
	assert.Equal(t, ":18080", addr)
}
