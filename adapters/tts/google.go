package tts

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/sentivox/domain/repositories"
)

// GoogleTextToSpeech implements TextToSpeech using Google Cloud Text-to-Speech
type GoogleTextToSpeech struct {
	client *texttospeech.Client
	logger *zap.Logger
}

// Ensure GoogleTextToSpeech implements the TextToSpeech interface
var _ repositories.TextToSpeech = (*GoogleTextToSpeech)(nil)

// NewGoogleTextToSpeech creates a Text-to-Speech client
func NewGoogleTextToSpeech(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleTextToSpeech, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &GoogleTextToSpeech{
		client: client,
		logger: logger,
	}, nil
}

// SynthesizeAudio converts text to encoded audio
func (g *GoogleTextToSpeech) SynthesizeAudio(ctx context.Context, text string, config repositories.VoiceConfig) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	request, err := buildSynthesizeRequest(text, config)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Sending request to Google Text-to-Speech API",
		zap.String("text", text),
		zap.String("language", config.Language),
		zap.String("gender", config.Gender))

	resp, err := g.client.SynthesizeSpeech(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	g.logger.Info("Received response from Google Text-to-Speech API",
		zap.Int("audioSize", len(resp.GetAudioContent())))

	return resp.GetAudioContent(), nil
}

// Close releases the underlying gRPC connection
func (g *GoogleTextToSpeech) Close() error {
	return g.client.Close()
}

func buildSynthesizeRequest(text string, config repositories.VoiceConfig) (*texttospeechpb.SynthesizeSpeechRequest, error) {
	gender, err := getVoiceGender(config.Gender)
	if err != nil {
		return nil, err
	}

	encoding, err := getAudioEncoding(config.Encoding)
	if err != nil {
		return nil, err
	}

	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: config.Language,
			SsmlGender:   gender,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	}, nil
}

func getVoiceGender(gender string) (texttospeechpb.SsmlVoiceGender, error) {
	switch strings.ToUpper(gender) {
	case "", "NEUTRAL":
		return texttospeechpb.SsmlVoiceGender_NEUTRAL, nil
	case "MALE":
		return texttospeechpb.SsmlVoiceGender_MALE, nil
	case "FEMALE":
		return texttospeechpb.SsmlVoiceGender_FEMALE, nil
	default:
		return texttospeechpb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED, fmt.Errorf("unsupported voice gender: %s", gender)
	}
}

func getAudioEncoding(encoding string) (texttospeechpb.AudioEncoding, error) {
	switch strings.ToUpper(encoding) {
	case "", "MP3":
		return texttospeechpb.AudioEncoding_MP3, nil
	case "OGG_OPUS":
		return texttospeechpb.AudioEncoding_OGG_OPUS, nil
	case "LINEAR16":
		return texttospeechpb.AudioEncoding_LINEAR16, nil
	default:
		return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported audio encoding: %s", encoding)
	}
}
