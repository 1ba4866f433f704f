package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/sentivox/domain/repositories"
)

// GoogleSpeechToText implements SpeechToText for Google Cloud
type GoogleSpeechToText struct {
	client *speech.Client
	logger *zap.Logger
}

// Ensure GoogleSpeechToText implements the SpeechToText interface
var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a speech client. Client options carry the
// credentials, e.g. option.WithCredentialsFile.
func NewGoogleSpeechToText(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client: client,
		logger: logger,
	}, nil
}

// TranscribeAudio converts audio data to text using Google Cloud Speech-to-Text (non-streaming)
func (g *GoogleSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	request, err := buildRecognizeRequest(audioData, config)
	if err != nil {
		return "", err
	}

	g.logger.Info("Sending request to Google Speech-to-Text API",
		zap.Int("audioSize", len(audioData)),
		zap.String("encoding", config.Encoding),
		zap.Int("sampleRate", config.SampleRate))

	resp, err := g.client.Recognize(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to recognize speech: %w", err)
	}

	transcript := firstTranscript(resp)
	g.logger.Info("Received response from Google Speech-to-Text API",
		zap.Int("results", len(resp.GetResults())),
		zap.String("transcript", transcript))

	return transcript, nil
}

// Close releases the underlying gRPC connection
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

func buildRecognizeRequest(audioData []byte, config repositories.AudioConfig) (*speechpb.RecognizeRequest, error) {
	encoding, err := getAudioEncoding(config.Encoding)
	if err != nil {
		return nil, err
	}

	return &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        encoding,
			SampleRateHertz: int32(config.SampleRate),
			LanguageCode:    config.Language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	}, nil
}

// firstTranscript takes the top alternative of the first result
func firstTranscript(resp *speechpb.RecognizeResponse) string {
	results := resp.GetResults()
	if len(results) == 0 {
		return ""
	}
	alternatives := results[0].GetAlternatives()
	if len(alternatives) == 0 {
		return ""
	}
	return alternatives[0].GetTranscript()
}

// getAudioEncoding converts string encoding to Google Speech API enum
func getAudioEncoding(encoding string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch encoding {
	case "WAV", "LINEAR16":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "FLAC":
		return speechpb.RecognitionConfig_FLAC, nil
	case "MULAW":
		return speechpb.RecognitionConfig_MULAW, nil
	case "OGG_OPUS":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "WEBM_OPUS":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}
