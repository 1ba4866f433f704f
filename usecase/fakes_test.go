package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/satriahrh/sentivox/domain/repositories"
)

type fakeSpeechToText struct {
	transcript string
	err        error
	block      bool
	gotConfig  repositories.AudioConfig
}

func (f *fakeSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	f.gotConfig = config
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.transcript, f.err
}

type fakeTextToSpeech struct {
	audio     []byte
	err       error
	gotConfig repositories.VoiceConfig
}

func (f *fakeTextToSpeech) SynthesizeAudio(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	f.gotConfig = config
	return f.audio, f.err
}

type fakeAnalyzer struct {
	score float64
	err   error
	block bool
	calls int
}

func (f *fakeAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	return f.score, f.err
}

type failingStore struct {
	repositories.OutputStore
	mu    sync.Mutex
	saves int
}

func (f *failingStore) Save(ctx context.Context, name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return errors.New("disk full")
}
