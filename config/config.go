package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Observ   ObservabilityConfig
	Simulate SimulationConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// CatalogConfig selects the catalog source. An empty URL means the
// built-in static seed.
type CatalogConfig struct {
	DatabaseURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers    []string
	TopicOrder string
	Enabled    bool
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

// SimulationConfig holds the artificial latencies of the fake backend.
// Tests run these at zero.
type SimulationConfig struct {
	ConnectionDelay time.Duration
	PaymentDelay    time.Duration
	EmailDelay      time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	kafkaEnabled, _ := strconv.ParseBool(getEnv("KAFKA_ENABLED", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Catalog: CatalogConfig{
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:    strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicOrder: getEnv("KAFKA_TOPIC_ORDER_EVENTS", "order-events"),
			Enabled:    kafkaEnabled,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Simulate: SimulationConfig{
			ConnectionDelay: getDurationMs("SIMULATED_CONNECTION_DELAY_MS", 300),
			PaymentDelay:    getDurationMs("SIMULATED_PAYMENT_DELAY_MS", 1500),
			EmailDelay:      getDurationMs("SIMULATED_EMAIL_DELAY_MS", 800),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationMs(key string, defaultMs int) time.Duration {
	ms, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultMs)))
	if err != nil {
		ms = defaultMs
	}
	return time.Duration(ms) * time.Millisecond
}
