package repositories

import "context"

// SentimentAnalyzer abstracts sentiment scoring services
type SentimentAnalyzer interface {
	// AnalyzeSentiment returns a document score in roughly [-1, 1]
	AnalyzeSentiment(ctx context.Context, text string) (float64, error)
}
