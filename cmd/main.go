package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/sentivox/adapters"
	"github.com/satriahrh/sentivox/adapters/mongo"
	"github.com/satriahrh/sentivox/adapters/sentiment"
	"github.com/satriahrh/sentivox/adapters/storage"
	"github.com/satriahrh/sentivox/adapters/stt"
	"github.com/satriahrh/sentivox/adapters/tts"
	"github.com/satriahrh/sentivox/domain/repositories"
	"github.com/satriahrh/sentivox/internal/api"
	"github.com/satriahrh/sentivox/internal/config"
	"github.com/satriahrh/sentivox/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var googleOpts []option.ClientOption
	if cfg.CredentialsFile != "" {
		googleOpts = append(googleOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	// Initialize adapters
	speechToText, closeSTT, err := newSpeechToText(ctx, cfg, logger, googleOpts)
	if err != nil {
		logger.Fatal("Failed to initialize speech recognizer", zap.Error(err))
	}
	closers = append(closers, closeSTT)

	textToSpeech, closeTTS, err := newTextToSpeech(ctx, cfg, logger, googleOpts)
	if err != nil {
		logger.Fatal("Failed to initialize speech synthesizer", zap.Error(err))
	}
	closers = append(closers, closeTTS)

	analyzer, closeAnalyzer, err := newSentimentAnalyzer(ctx, cfg, logger, googleOpts)
	if err != nil {
		logger.Fatal("Failed to initialize sentiment analyzer", zap.Error(err))
	}
	closers = append(closers, closeAnalyzer)

	store, err := storage.NewFileSystemStore(cfg.OutputDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize output directory", zap.Error(err))
	}

	index, closeIndex, err := newResultIndex(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize result index", zap.Error(err))
	}
	closers = append(closers, closeIndex)

	// Initialize usecase services
	sentimentService := usecase.NewSentimentService(analyzer, cfg.ExternalCallTimeout, logger)
	transcriptionService := usecase.NewTranscriptionService(speechToText, sentimentService, store, index, cfg.ExternalCallTimeout, logger)
	synthesisService := usecase.NewSynthesisService(textToSpeech, sentimentService, store, index, cfg.ExternalCallTimeout, logger)
	outputService := usecase.NewOutputService(store, index)

	handler := api.NewHandler(transcriptionService, synthesisService, outputService, logger)
	e, err := api.NewServer(handler, cfg.MaxUploadSize, logger)
	if err != nil {
		logger.Fatal("Failed to create HTTP server", zap.Error(err))
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("outputDir", cfg.OutputDir),
		zap.String("sttProvider", cfg.STTProvider),
		zap.String("ttsProvider", cfg.TTSProvider),
		zap.String("sentimentProvider", cfg.SentimentProvider))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func noop() {}

func newSpeechToText(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts []option.ClientOption) (repositories.SpeechToText, func(), error) {
	switch cfg.STTProvider {
	case config.ProviderMock:
		return stt.NewMockSpeechToText(logger), noop, nil
	default:
		client, err := stt.NewGoogleSpeechToText(ctx, logger, opts...)
		if err != nil {
			return nil, nil, err
		}
		return client, closeLogged(logger, "speech client", client.Close), nil
	}
}

func newTextToSpeech(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts []option.ClientOption) (repositories.TextToSpeech, func(), error) {
	switch cfg.TTSProvider {
	case config.ProviderMock:
		return tts.NewMockTextToSpeech(logger), noop, nil
	case config.ProviderElevenLabs:
		client, err := tts.NewElevenLabsTTS(tts.ElevenLabsConfig{
			APIKey:     cfg.ElevenLabs.APIKey,
			APIBaseURL: cfg.ElevenLabs.APIBaseURL,
			VoiceID:    cfg.ElevenLabs.VoiceID,
			ModelID:    cfg.ElevenLabs.ModelID,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, noop, nil
	default:
		client, err := tts.NewGoogleTextToSpeech(ctx, logger, opts...)
		if err != nil {
			return nil, nil, err
		}
		return client, closeLogged(logger, "text-to-speech client", client.Close), nil
	}
}

func newSentimentAnalyzer(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts []option.ClientOption) (repositories.SentimentAnalyzer, func(), error) {
	switch cfg.SentimentProvider {
	case config.ProviderVader:
		return sentiment.NewVaderSentimentAnalyzer(), noop, nil
	case config.ProviderGemini:
		client, err := sentiment.NewGeminiSentimentAnalyzer(ctx, sentiment.GeminiConfig{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, noop, nil
	default:
		client, err := sentiment.NewGoogleSentimentAnalyzer(ctx, logger, opts...)
		if err != nil {
			return nil, nil, err
		}
		return client, closeLogged(logger, "language client", client.Close), nil
	}
}

// newResultIndex uses MongoDB when a URI is configured and an in-memory index otherwise
func newResultIndex(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.ResultIndex, func(), error) {
	if cfg.Mongo.URI == "" {
		logger.Info("MONGODB_URI not set, keeping the result index in memory")
		return adapters.NewMemoryResultIndex(), noop, nil
	}

	client, err := mongo.NewClient(ctx, cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	index, err := mongo.NewResultIndex(ctx, client.Database, logger)
	if err != nil {
		client.Close(context.Background())
		return nil, nil, err
	}

	return index, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		client.Close(closeCtx)
	}, nil
}

func closeLogged(logger *zap.Logger, name string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			logger.Warn("Failed to close "+name, zap.Error(err))
		}
	}
}
