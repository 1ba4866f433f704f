package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain/entities"
	"github.com/satriahrh/sentivox/domain/repositories"
)

// SentimentService turns text into a bucketed sentiment
type SentimentService struct {
	analyzer repositories.SentimentAnalyzer
	timeout  time.Duration
	logger   *zap.Logger
}

// NewSentimentService creates a new sentiment service
func NewSentimentService(analyzer repositories.SentimentAnalyzer, timeout time.Duration, logger *zap.Logger) *SentimentService {
	return &SentimentService{
		analyzer: analyzer,
		timeout:  timeout,
		logger:   logger,
	}
}

// Analyze never fails: a classifier error yields an unavailable sentiment
// that callers render as a placeholder.
func (s *SentimentService) Analyze(ctx context.Context, text string) entities.Sentiment {
	score, err := callExternal(ctx, s.timeout, "sentiment analysis", func(ctx context.Context) (float64, error) {
		return s.analyzer.AnalyzeSentiment(ctx, text)
	})
	if err != nil {
		s.logger.Error("Error in sentiment analysis", zap.Error(err))
		return entities.UnavailableSentiment(err)
	}

	sentiment := entities.NewSentiment(score)
	s.logger.Info("Sentiment analyzed",
		zap.Float64("score", score),
		zap.String("label", string(sentiment.Label)))

	return sentiment
}
