package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"thumbnail-backend/internal/inference"
)

const (
	MediaProviderSupabase   = "supabase"
	MediaProviderCloudinary = "cloudinary"
)

type Config struct {
	// Hugging Face inference
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
	HuggingFaceModel   string
	InferenceTimeout   time.Duration

	// Media hosting
	MediaProvider string
	CloudinaryURL string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Generation
	ScratchDir           string
	PendingTimeout       time.Duration
	StaleSweepSchedule   string
	DeleteReportsMissing bool

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
		HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", inference.DefaultBaseURL),
		HuggingFaceModel:   getEnv("HUGGINGFACE_MODEL", inference.DefaultModel),
		InferenceTimeout:   getEnvDuration("INFERENCE_TIMEOUT", 2*time.Minute),

		MediaProvider: strings.ToLower(getEnv("MEDIA_PROVIDER", MediaProviderSupabase)),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "thumbnails"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		ScratchDir:           getEnv("SCRATCH_DIR", ""),
		PendingTimeout:       getEnvDuration("PENDING_TIMEOUT", 10*time.Minute),
		StaleSweepSchedule:   getEnv("STALE_SWEEP_SCHEDULE", "@every 5m"),
		DeleteReportsMissing: getEnvBool("DELETE_REPORTS_MISSING", false),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HuggingFaceAPIKey == "" {
		return fmt.Errorf("HUGGINGFACE_API_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.InferenceTimeout <= 0 {
		return fmt.Errorf("INFERENCE_TIMEOUT must be positive")
	}
	if c.PendingTimeout <= 0 {
		return fmt.Errorf("PENDING_TIMEOUT must be positive")
	}
	// The sweep must not fail requests whose inference call may still be running.
	if c.PendingTimeout <= c.InferenceTimeout {
		return fmt.Errorf("PENDING_TIMEOUT (%s) must exceed INFERENCE_TIMEOUT (%s)", c.PendingTimeout, c.InferenceTimeout)
	}

	switch c.MediaProvider {
	case MediaProviderSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
		}
	case MediaProviderCloudinary:
		if c.CloudinaryURL == "" {
			return fmt.Errorf("CLOUDINARY_URL is required")
		}
	default:
		return fmt.Errorf("unknown MEDIA_PROVIDER %q", c.MediaProvider)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
