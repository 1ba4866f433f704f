package repositories

import "context"

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// TranscribeAudio converts audio data to text. An empty transcript with a
	// nil error means the service recognized nothing.
	TranscribeAudio(ctx context.Context, audioData []byte, config AudioConfig) (string, error)
}

// AudioConfig represents audio configuration for speech recognition
type AudioConfig struct {
	SampleRate int    `json:"sample_rate"`
	Encoding   string `json:"encoding"`
	Language   string `json:"language"`
}

// UploadAudioConfig is the fixed configuration for uploaded browser recordings
var UploadAudioConfig = AudioConfig{
	SampleRate: 48000,
	Encoding:   "WEBM_OPUS",
	Language:   "en-US",
}
