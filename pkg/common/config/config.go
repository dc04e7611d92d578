package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort     string
	ServerHost     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestBody int64

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers        []string
	DiagnosisEventTopic string

	// LLM fallback inference
	LLMAPIKey        string
	LLMBaseURL       string
	LLMModelName     string
	InferenceTimeout time.Duration

	// Condition catalog
	CatalogCacheTTL time.Duration
	CatalogSeedFile string

	// Matching thresholds. Empirically chosen in the source material; kept
	// configurable rather than hard-coded because they carry no clinical
	// meaning.
	MatchStrongRatio  float64
	MatchConfirmRatio float64
	MatchMinCount     int
	MatchSmallSetSize int

	// Rate limiting
	RateLimitRPS   int
	RateLimitBurst int
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:    getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   getDuration("WRITE_TIMEOUT", 30*time.Second),
		MaxRequestBody: int64(getIntEnv("MAX_REQUEST_BODY_BYTES", 1024*1024)),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "symptor"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "symptor123"),
		PostgresDB:       getEnv("POSTGRES_DB", "symptor"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaBrokers:        getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		DiagnosisEventTopic: getEnv("DIAGNOSIS_EVENT_TOPIC", "diagnosis-events"),

		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		LLMBaseURL:       getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMModelName:     getEnv("LLM_MODEL_NAME", "llama-3.1-8b-instant"),
		InferenceTimeout: getDuration("INFERENCE_TIMEOUT", 15*time.Second),

		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", time.Hour),
		CatalogSeedFile: getEnv("CATALOG_SEED_FILE", ""),

		MatchStrongRatio:  getFloatEnv("MATCH_STRONG_RATIO", 0.7),
		MatchConfirmRatio: getFloatEnv("MATCH_CONFIRM_RATIO", 0.8),
		MatchMinCount:     getIntEnv("MATCH_MIN_COUNT", 2),
		MatchSmallSetSize: getIntEnv("MATCH_SMALL_SET_SIZE", 3),

		RateLimitRPS:   getIntEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
