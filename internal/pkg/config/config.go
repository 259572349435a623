package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
	Email EmailConfig
	LLM   LLMConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=alshifa_clinic"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig seeds the bootstrap admin account on startup.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@alshifa.local"`
	Password string `env:"ADMIN_PASSWORD"`
}

// EmailConfig configures the SendGrid OTP sender. With an empty API key the
// service falls back to logging outbound mail.
type EmailConfig struct {
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	FromEmail      string `env:"EMAIL_FROM,      default=noreply@alshifa.local"`
	FromName       string `env:"EMAIL_FROM_NAME, default=Al-Shifa Dental"`
}

// LLMConfig configures the Gemini client behind the chat agents. With an
// empty API key agents answer from their deterministic paths only.
type LLMConfig struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	Model        string `env:"GEMINI_MODEL, default=gemini-1.5-flash"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
