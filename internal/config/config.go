package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

const (
	defaultPort            = "8080"
	defaultOutputDir       = "outputs"
	defaultExternalTimeout = 30 * time.Second
	defaultMaxUploadSize   = "10M"
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultMongoDatabase   = "sentivox"
	developmentEnvironment = "development"
	credentialsEnvVariable = "GOOGLE_APPLICATION_CREDENTIALS"
)

// Provider names accepted in the *_PROVIDER variables
const (
	ProviderGoogle     = "google"
	ProviderMock       = "mock"
	ProviderElevenLabs = "elevenlabs"
	ProviderGemini     = "gemini"
	ProviderVader      = "vader"
)

// Config holds everything the service needs at start-up. It is built once in
// main and handed to each constructor; nothing reads the environment later.
type Config struct {
	Port          string
	Environment   string
	OutputDir     string
	MaxUploadSize string

	// CredentialsFile is the Google service account bundle used by every Google client
	CredentialsFile string

	STTProvider       string
	TTSProvider       string
	SentimentProvider string

	// ExternalCallTimeout bounds each call to a recognizer, synthesizer or classifier
	ExternalCallTimeout time.Duration

	Gemini     GeminiConfig
	ElevenLabs ElevenLabsConfig
	Mongo      MongoConfig
}

// GeminiConfig configures the Gemini sentiment classifier
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ElevenLabsConfig configures the ElevenLabs synthesizer
type ElevenLabsConfig struct {
	APIKey     string
	APIBaseURL string
	VoiceID    string
	ModelID    string
}

// MongoConfig configures the optional result index. Empty URI disables it.
type MongoConfig struct {
	URI      string
	Database string
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", defaultPort),
		Environment:       getEnv("APP_ENV", "production"),
		OutputDir:         getEnv("OUTPUT_DIR", defaultOutputDir),
		MaxUploadSize:     getEnv("MAX_UPLOAD_SIZE", defaultMaxUploadSize),
		CredentialsFile:   os.Getenv(credentialsEnvVariable),
		STTProvider:       strings.ToLower(getEnv("STT_PROVIDER", ProviderGoogle)),
		TTSProvider:       strings.ToLower(getEnv("TTS_PROVIDER", ProviderGoogle)),
		SentimentProvider: strings.ToLower(getEnv("SENTIMENT_PROVIDER", ProviderGoogle)),
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", defaultGeminiModel),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:     os.Getenv("ELEVEN_LABS_API_KEY"),
			APIBaseURL: os.Getenv("ELEVEN_LABS_API_BASE_URL"),
			VoiceID:    os.Getenv("ELEVEN_LABS_VOICE_ID"),
			ModelID:    os.Getenv("ELEVEN_LABS_MODEL_ID"),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getEnv("MONGODB_DATABASE", defaultMongoDatabase),
		},
	}

	cfg.ExternalCallTimeout = defaultExternalTimeout
	if raw := os.Getenv("EXTERNAL_CALL_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid EXTERNAL_CALL_TIMEOUT %q: %w", raw, err)
		}
		cfg.ExternalCallTimeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks provider names and the credentials each provider needs
func (c *Config) Validate() error {
	if c.ExternalCallTimeout <= 0 {
		return fmt.Errorf("external call timeout must be positive, got %s", c.ExternalCallTimeout)
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if c.MaxUploadSize != "" {
		if _, err := bytes.Parse(c.MaxUploadSize); err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_SIZE %q: %w", c.MaxUploadSize, err)
		}
	}

	switch c.STTProvider {
	case ProviderGoogle, ProviderMock:
	default:
		return fmt.Errorf("unsupported STT_PROVIDER %q", c.STTProvider)
	}

	switch c.TTSProvider {
	case ProviderGoogle, ProviderMock:
	case ProviderElevenLabs:
		if c.ElevenLabs.APIKey == "" {
			return errors.New("ELEVEN_LABS_API_KEY is required when TTS_PROVIDER=elevenlabs")
		}
	default:
		return fmt.Errorf("unsupported TTS_PROVIDER %q", c.TTSProvider)
	}

	switch c.SentimentProvider {
	case ProviderGoogle, ProviderVader:
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is required when SENTIMENT_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unsupported SENTIMENT_PROVIDER %q", c.SentimentProvider)
	}

	if c.UsesGoogle() && c.CredentialsFile == "" {
		return fmt.Errorf("%s is required for the Google providers", credentialsEnvVariable)
	}

	return nil
}

// UsesGoogle reports whether any provider needs the Google credential bundle
func (c *Config) UsesGoogle() bool {
	return c.STTProvider == ProviderGoogle ||
		c.TTSProvider == ProviderGoogle ||
		c.SentimentProvider == ProviderGoogle
}

// IsDevelopment selects the development logger and verbose defaults
func (c *Config) IsDevelopment() bool {
	return c.Environment == developmentEnvironment
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
