package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NER        NERConfig
	Dictionary DictionaryConfig
	Corrector  CorrectorConfig
	OTEL       OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NERConfig holds named-entity extraction provider configuration
type NERConfig struct {
	Provider string
	URL      string
}

// DictionaryConfig holds correction dictionary source configuration
type DictionaryConfig struct {
	Source  string
	CSVPath string
	Table   string
}

// CorrectorConfig holds correction pipeline configuration
type CorrectorConfig struct {
	Threshold        int
	EnglishWordsPath string
	StopwordsPath    string
	UnknownWordsPath string
	UnknownWordsKey  string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "transcript_correction"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		NER: NERConfig{
			Provider: getEnv("NER_PROVIDER", "mock"),
			URL:      getEnv("NER_URL", ""),
		},
		Dictionary: DictionaryConfig{
			Source:  getEnv("DICTIONARY_SOURCE", "csv"),
			CSVPath: getEnv("DICTIONARY_CSV_PATH", "corrections.csv"),
			Table:   getEnv("DICTIONARY_TABLE", "corrections"),
		},
		Corrector: CorrectorConfig{
			Threshold:        getEnvAsInt("CORRECTION_THRESHOLD", 85),
			EnglishWordsPath: getEnv("ENGLISH_WORDS_PATH", "data/english_words.txt"),
			StopwordsPath:    getEnv("STOPWORDS_PATH", "data/stopwords.txt"),
			UnknownWordsPath: getEnv("UNKNOWN_WORDS_PATH", "wrong_words.json"),
			UnknownWordsKey:  getEnv("UNKNOWN_WORDS_KEY", "corrections:unknown_words"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "transcript-correction"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
