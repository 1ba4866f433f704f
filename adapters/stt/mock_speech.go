package stt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition,
// used for local development without Google credentials
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// TranscribeAudio implements repositories.SpeechToText
func (s *MockSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.Int("audioSize", len(audioData)),
		zap.Int("sampleRate", config.SampleRate),
		zap.String("encoding", config.Encoding))

	if len(audioData) == 0 {
		return "", fmt.Errorf("no audio data received")
	}

	// Mock transcription based on audio size
	switch {
	case len(audioData) > 10000:
		return "I really enjoyed the presentation today, it was wonderful.", nil
	case len(audioData) > 5000:
		return "The meeting was moved to Thursday afternoon.", nil
	case len(audioData) > 1000:
		return "This is terrible, nothing works.", nil
	default:
		return "", nil
	}
}
