package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
	"github.com/satriahrh/sentivox/domain/repositories"
)

// SynthesisService orchestrates synthesize -> persist audio -> classify -> persist record
type SynthesisService struct {
	textToSpeech repositories.TextToSpeech
	sentiment    *SentimentService
	store        repositories.OutputStore
	index        repositories.ResultIndex
	timeout      time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

// NewSynthesisService creates a new synthesis service
func NewSynthesisService(
	tts repositories.TextToSpeech,
	sentiment *SentimentService,
	store repositories.OutputStore,
	index repositories.ResultIndex,
	timeout time.Duration,
	logger *zap.Logger,
) *SynthesisService {
	return &SynthesisService{
		textToSpeech: tts,
		sentiment:    sentiment,
		store:        store,
		index:        index,
		timeout:      timeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Synthesize converts text to MP3 and stores the audio plus a sentiment
// record under one new identifier.
func (s *SynthesisService) Synthesize(ctx context.Context, text string) (*entities.SynthesisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text provided: %w", domain.ErrInvalidInput)
	}

	s.logger.Info("Synthesizing speech", zap.String("text", text))

	audio, err := callExternal(ctx, s.timeout, "speech synthesis", func(ctx context.Context) ([]byte, error) {
		return s.textToSpeech.SynthesizeAudio(ctx, text, repositories.DefaultVoiceConfig)
	})
	if err != nil {
		return nil, err
	}

	id := entities.NewResultID()
	result := &entities.SynthesisResult{
		ID:        id,
		Text:      text,
		Audio:     audio,
		AudioFile: entities.OutputName(id, entities.ExtAudio),
		TextFile:  entities.OutputName(id, entities.ExtText),
		CreatedAt: s.now(),
	}

	if err := s.store.Save(ctx, result.AudioFile, audio); err != nil {
		return nil, fmt.Errorf("failed to store synthesized audio: %w", err)
	}

	result.Sentiment = s.sentiment.Analyze(ctx, text)

	if err := s.store.Save(ctx, result.TextFile, result.Record()); err != nil {
		s.logger.Error("Synthesized audio stored without a record", zap.String("audioFile", result.AudioFile), zap.Error(err))
		return nil, fmt.Errorf("failed to store synthesis record: %w", err)
	}

	if s.index != nil {
		if err := s.index.Record(ctx, entities.RecordFromSynthesis(result)); err != nil {
			s.logger.Warn("Failed to index synthesis", zap.String("id", id), zap.Error(err))
		}
	}

	s.logger.Info("Synthesis completed",
		zap.String("id", id),
		zap.Int("audioSize", len(audio)),
		zap.String("sentiment", result.Sentiment.String()))

	return result, nil
}
