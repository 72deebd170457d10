package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            int
	LogLevel        string
	AnthropicAPIKey string
	AnthropicModel  string
	DatabaseURL     string
	NatsURL         string
	NatsToken       string
	MaxUploadBytes  int64
}

func Load() Config {
	return Config{
		Port:            envInt("SCRIBE_PORT", 8760),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("SCRIBE_MODEL", "claude-sonnet-4-20250514"),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		NatsURL:         envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:       envStr("NATS_TOKEN", ""),
		MaxUploadBytes:  int64(envInt("SCRIBE_MAX_UPLOAD_BYTES", 16*1024*1024)),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
