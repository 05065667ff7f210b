package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "DB_DRIVER", "SQLITE_PATH", "ACCOUNT_STORE", "REDIS_DB",
		"REDIS_PREFIX", "QUESTIONS_PATH", "CREDENTIAL_SCHEME", "LOG_LEVEL", "IS_PROD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "users.db", cfg.SQLitePath)
	assert.Equal(t, "sql", cfg.AccountStore)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "trivia", cfg.RedisPrefix)
	assert.Equal(t, "data/trivia_questions.json", cfg.QuestionsPath)
	assert.Equal(t, "plain", cfg.CredentialScheme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ACCOUNT_STORE", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CREDENTIAL_SCHEME", "bcrypt")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "redis", cfg.AccountStore)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "bcrypt", cfg.CredentialScheme)
	assert.True(t, cfg.IsProd)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{DBUser: "trivia", DBPassword: "secret", DBHost: "db", DBPort: "3306", DBName: "users"}

	assert.Equal(t, "trivia:secret@tcp(db:3306)/users?parseTime=true&clientFoundRows=true", cfg.DSN())
}
