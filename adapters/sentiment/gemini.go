package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/sentivox/domain/repositories"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"

	sentimentPrompt = `Rate the overall sentiment of the text between the <text> tags.
Answer with JSON only, in the form {"score": <number>}, where the number is between -1.0 (very negative) and 1.0 (very positive) and 0 is neutral.

<text>
%s
</text>`
)

// GeminiConfig holds configuration for the Gemini sentiment analyzer
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("Google AI API key is required")
	}
	return nil
}

// GeminiSentimentAnalyzer asks a Gemini model for a sentiment score
type GeminiSentimentAnalyzer struct {
	client *genai.Client
	logger *zap.Logger
	model  string
}

var _ repositories.SentimentAnalyzer = (*GeminiSentimentAnalyzer)(nil)

// NewGeminiSentimentAnalyzer creates a new Gemini client
func NewGeminiSentimentAnalyzer(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiSentimentAnalyzer, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
		logger.Info("Using default model", zap.String("model", model))
	}

	return &GeminiSentimentAnalyzer{
		client: client,
		logger: logger,
		model:  model,
	}, nil
}

// AnalyzeSentiment implements repositories.SentimentAnalyzer
func (g *GeminiSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(sentimentPrompt, text)), config)
	if err != nil {
		return 0, fmt.Errorf("failed to generate content: %w", err)
	}

	score, err := parseScore(resp.Text())
	if err != nil {
		g.logger.Warn("Unusable sentiment answer from Gemini", zap.String("model", g.model), zap.Error(err))
		return 0, err
	}

	return score, nil
}

// parseScore reads {"score": x} and clamps x into [-1, 1]
func parseScore(answer string) (float64, error) {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")

	var payload struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(answer)), &payload); err != nil {
		return 0, fmt.Errorf("failed to decode sentiment answer: %w", err)
	}
	if payload.Score == nil {
		return 0, fmt.Errorf("sentiment answer has no score")
	}

	score := *payload.Score
	if math.IsNaN(score) {
		return 0, fmt.Errorf("sentiment score is not a number")
	}
	return math.Max(-1, math.Min(1, score)), nil
}
