package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Load pulls a .env file into the environment outside production.
func Load() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
}

// Getenv returns the variable's value, or fallback when unset.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     Getenv("REDIS_HOST", "localhost") + ":" + Getenv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns a writer for the topic, or nil when no broker is
// configured. Event publishing is optional.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// OrderTTL reads the order document lifetime, defaulting when unset or
// unparsable.
func OrderTTL(fallback time.Duration) time.Duration {
	raw := os.Getenv("ORDER_TTL")
	if raw == "" {
		return fallback
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("Warning: invalid ORDER_TTL %q, using %s", raw, fallback)
		return fallback
	}
	return ttl
}
