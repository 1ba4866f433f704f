package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
	"github.com/satriahrh/sentivox/domain/repositories"
)

// TranscriptionService orchestrates recognize -> classify -> persist
type TranscriptionService struct {
	speechToText repositories.SpeechToText
	sentiment    *SentimentService
	store        repositories.OutputStore
	index        repositories.ResultIndex
	timeout      time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	stt repositories.SpeechToText,
	sentiment *SentimentService,
	store repositories.OutputStore,
	index repositories.ResultIndex,
	timeout time.Duration,
	logger *zap.Logger,
) *TranscriptionService {
	return &TranscriptionService{
		speechToText: stt,
		sentiment:    sentiment,
		store:        store,
		index:        index,
		timeout:      timeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Transcribe recognizes uploaded audio, classifies the transcript and stores
// a text record under a new identifier.
func (s *TranscriptionService) Transcribe(ctx context.Context, audioData []byte) (*entities.TranscriptionResult, error) {
	if len(audioData) == 0 {
		return nil, fmt.Errorf("empty audio content: %w", domain.ErrInvalidInput)
	}

	s.logger.Info("Transcribing uploaded audio", zap.Int("audioSize", len(audioData)))

	transcript, err := callExternal(ctx, s.timeout, "speech recognition", func(ctx context.Context) (string, error) {
		return s.speechToText.TranscribeAudio(ctx, audioData, repositories.UploadAudioConfig)
	})
	if err != nil {
		return nil, err
	}

	if transcript == "" {
		s.logger.Warn("No transcription results returned from the API")
		transcript = entities.NoTranscriptionText
	}

	id := entities.NewResultID()
	result := &entities.TranscriptionResult{
		ID:         id,
		Transcript: transcript,
		Sentiment:  s.sentiment.Analyze(ctx, transcript),
		FileName:   entities.OutputName(id, entities.ExtText),
		CreatedAt:  s.now(),
	}

	if err := s.store.Save(ctx, result.FileName, result.Record()); err != nil {
		return nil, fmt.Errorf("failed to store transcription: %w", err)
	}

	if s.index != nil {
		if err := s.index.Record(ctx, entities.RecordFromTranscription(result)); err != nil {
			s.logger.Warn("Failed to index transcription", zap.String("id", id), zap.Error(err))
		}
	}

	s.logger.Info("Transcription completed",
		zap.String("id", id),
		zap.String("sentiment", result.Sentiment.String()))

	return result, nil
}
