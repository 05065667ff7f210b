package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string // Application port
	DBDriver         string // Database driver: mysql or sqlite
	DBUser           string // Database user
	DBPassword       string // Database password
	DBHost           string // Database host
	DBPort           string // Database port
	DBName           string // Database name
	SQLitePath       string // SQLite database file
	AccountStore     string // Account backend: sql or redis
	RedisAddr        string // Redis server address
	RedisPass        string // Redis password
	RedisDB          int    // Redis database number
	RedisPrefix      string // Redis key namespace
	QuestionsPath    string // Trivia questions JSON file
	CredentialScheme string // Credential storage: plain or bcrypt
	LogLevel         string // Logrus level name
	IsProd           bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:          getEnv("APP_PORT", "8000"),                             // Application port
		DBDriver:         getEnv("DB_DRIVER", "mysql"),                           // Database driver
		DBUser:           os.Getenv("DB_USER"),                                   // Database user
		DBPassword:       os.Getenv("DB_PASSWORD"),                               // Database password
		DBHost:           os.Getenv("DB_HOST"),                                   // Database host
		DBPort:           os.Getenv("DB_PORT"),                                   // Database port
		DBName:           os.Getenv("DB_NAME"),                                   // Database name
		SQLitePath:       getEnv("SQLITE_PATH", "users.db"),                      // SQLite database file
		AccountStore:     getEnv("ACCOUNT_STORE", "sql"),                         // Account backend
		RedisAddr:        os.Getenv("REDIS_ADDR"),                                // Redis server address
		RedisPass:        os.Getenv("REDIS_PASS"),                                // Redis password
		RedisDB:          redisDB,                                                // Redis database number
		RedisPrefix:      getEnv("REDIS_PREFIX", "trivia"),                       // Redis key namespace
		QuestionsPath:    getEnv("QUESTIONS_PATH", "data/trivia_questions.json"), // Questions file
		CredentialScheme: getEnv("CREDENTIAL_SCHEME", "plain"),                   // Credential storage
		LogLevel:         getEnv("LOG_LEVEL", "info"),                            // Log level
		IsProd:           os.Getenv("IS_PROD") == "true",                         // Is production environment
	}
}

// DSN returns the MySQL Data Source Name. clientFoundRows makes UPDATE report
// matched rows, so a zero delta on an existing account is not mistaken for a
// missing one.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&clientFoundRows=true"
}

// getEnv returns the variable or def when it is unset or empty
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
