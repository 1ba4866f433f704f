package tts

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain/repositories"
)

// mp3FrameHeader starts an MPEG-1 Layer III frame, enough for players to sniff the type
var mp3FrameHeader = []byte{0xff, 0xfb, 0x90, 0x64}

// MockTextToSpeech returns placeholder audio for local development
type MockTextToSpeech struct {
	logger *zap.Logger
}

// NewMockTextToSpeech creates a new mock text-to-speech service
func NewMockTextToSpeech(logger *zap.Logger) repositories.TextToSpeech {
	return &MockTextToSpeech{logger: logger}
}

// SynthesizeAudio implements repositories.TextToSpeech
func (m *MockTextToSpeech) SynthesizeAudio(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	m.logger.Info("Processing mock text-to-speech",
		zap.Int("textLength", len(text)),
		zap.String("language", config.Language))

	audio := make([]byte, 0, len(mp3FrameHeader)+len(text))
	audio = append(audio, mp3FrameHeader...)
	audio = append(audio, text...)
	return audio, nil
}
