package sentiment

import (
	"context"
	"fmt"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/sentivox/domain/repositories"
)

// GoogleSentimentAnalyzer scores text with the Cloud Natural Language API
type GoogleSentimentAnalyzer struct {
	client *language.Client
	logger *zap.Logger
}

var _ repositories.SentimentAnalyzer = (*GoogleSentimentAnalyzer)(nil)

// NewGoogleSentimentAnalyzer creates a Natural Language client
func NewGoogleSentimentAnalyzer(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSentimentAnalyzer, error) {
	client, err := language.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create language client: %w", err)
	}

	return &GoogleSentimentAnalyzer{
		client: client,
		logger: logger,
	}, nil
}

// AnalyzeSentiment returns the document sentiment score
func (g *GoogleSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	resp, err := g.client.AnalyzeSentiment(ctx, buildSentimentRequest(text))
	if err != nil {
		return 0, fmt.Errorf("failed to analyze sentiment: %w", err)
	}

	sentiment := resp.GetDocumentSentiment()
	if sentiment == nil {
		return 0, fmt.Errorf("response carried no document sentiment")
	}

	g.logger.Debug("Received sentiment from Natural Language API",
		zap.Float32("score", sentiment.GetScore()),
		zap.Float32("magnitude", sentiment.GetMagnitude()))

	return float64(sentiment.GetScore()), nil
}

// Close releases the underlying gRPC connection
func (g *GoogleSentimentAnalyzer) Close() error {
	return g.client.Close()
}

func buildSentimentRequest(text string) *languagepb.AnalyzeSentimentRequest {
	return &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{Content: text},
			Type:   languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}
}
