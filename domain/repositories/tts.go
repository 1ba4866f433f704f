package repositories

import "context"

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// SynthesizeAudio converts text to encoded audio bytes
	SynthesizeAudio(ctx context.Context, text string, config VoiceConfig) ([]byte, error)
}

// VoiceConfig represents voice configuration for TTS
type VoiceConfig struct {
	Language string `json:"language"`
	Gender   string `json:"gender"`
	Encoding string `json:"encoding"`
}

// DefaultVoiceConfig is the fixed voice used by the synthesis endpoint
var DefaultVoiceConfig = VoiceConfig{
	Language: "en-US",
	Gender:   "NEUTRAL",
	Encoding: "MP3",
}
