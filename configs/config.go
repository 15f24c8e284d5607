package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
}

// Config returns the value of key after .env has been loaded.
func Config(key string) string {
	loadEnv()
	return os.Getenv(key)
}

type Settings struct {
	Port           string
	AppName        string
	AllowOrigins   string
	LogTimeZone    string
	DigestSchedule string
	FeedBuffer     int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

func Load() Settings {
	return Settings{
		Port:           stringOr("PORT", "8080"),
		AppName:        stringOr("APP_NAME", "Gradebook"),
		AllowOrigins:   stringOr("CORS_ALLOW_ORIGINS", "*"),
		LogTimeZone:    stringOr("LOG_TIMEZONE", "UTC"),
		DigestSchedule: lookupOr("DIGEST_SCHEDULE", "*/5 * * * *"),
		FeedBuffer:     intOr("FEED_BUFFER", 64),
		ReadTimeout:    durationOr("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   durationOr("WRITE_TIMEOUT", 15*time.Second),
	}
}

func stringOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// lookupOr keeps an explicitly empty value, so DIGEST_SCHEDULE= disables the job.
func lookupOr(key, fallback string) string {
	loadEnv()
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	v := Config(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := Config(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
