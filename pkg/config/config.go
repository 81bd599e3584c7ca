package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every configuration variable the service reads.
	EnvPrefix = "WHOLEX"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	// EnvGenAIAPIKey is resolved at call time by the text-generation
	// client, never during config load. An absent key is sent as an
	// empty credential and fails through the normal error path.
	EnvGenAIAPIKey = "WHOLEX_GENAI_API_KEY"
)

type Config struct {
	App     AppConfig
	CORS    CORSConfig
	GenAI   GenAIConfig
	Advisor AdvisorConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WHOLEX_APP_ENV" default:"dev"`
	Port         string `envconfig:"WHOLEX_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"WHOLEX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WHOLEX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"WHOLEX_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type GenAIConfig struct {
	BaseURL string        `envconfig:"WHOLEX_GENAI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string        `envconfig:"WHOLEX_GENAI_MODEL" default:"gemini-3-flash-preview"`
	Timeout time.Duration `envconfig:"WHOLEX_GENAI_TIMEOUT" default:"30s"`
}

type AdvisorConfig struct {
	TranscriptMax int `envconfig:"WHOLEX_ADVISOR_TRANSCRIPT_MAX" default:"50"`
}
