package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CARDFORM_"

type Config struct {
	Primary    Primary          `koanf:"primary"`
	Server     ServerConfig     `koanf:"server"`
	Submission SubmissionConfig `koanf:"submission"`
	Session    SessionConfig    `koanf:"session"`
	Logger     LoggerConfig     `koanf:"logger"`
	Worker     WorkerConfig     `koanf:"worker"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	// HandlerTimeout bounds the HTTP answer, not the submission behind it.
	HandlerTimeout time.Duration `koanf:"handler_timeout" validate:"required"`
}

// SubmissionConfig points the submission client at the remote card endpoint.
// The client has no timeout of its own.
type SubmissionConfig struct {
	EndpointURL string `koanf:"endpoint_url" validate:"required,url"`
	Origin      string `koanf:"origin" validate:"required,url"`
}

type SessionConfig struct {
	CookieName string        `koanf:"cookie_name" validate:"required"`
	IdleTTL    time.Duration `koanf:"idle_ttl" validate:"required"`
}

type WorkerConfig struct {
	Interval time.Duration `koanf:"interval" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":             "development",
		"server.port":             "8080",
		"server.read_timeout":     "15s",
		"server.write_timeout":    "60s",
		"server.idle_timeout":     "60s",
		"server.handler_timeout":  "45s",
		"submission.endpoint_url": "https://run.mocky.io/v3/0b14a8da-5fc7-4443-8511-53d687399bc9",
		"submission.origin":       "https://instacred.me",
		"session.cookie_name":     "cardform_session",
		"session.idle_ttl":        "30m",
		"worker.interval":         "1m",
		"logger.level":            "info",
		"logger.format":           "text",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
