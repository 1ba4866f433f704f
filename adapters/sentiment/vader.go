package sentiment

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/satriahrh/sentivox/domain/repositories"
)

var urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// VaderSentimentAnalyzer scores text locally with the VADER lexicon. It needs
// no credentials and is meant for development and offline use.
type VaderSentimentAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ repositories.SentimentAnalyzer = (*VaderSentimentAnalyzer)(nil)

// NewVaderSentimentAnalyzer loads the VADER lexicon
func NewVaderSentimentAnalyzer() *VaderSentimentAnalyzer {
	return &VaderSentimentAnalyzer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// AnalyzeSentiment returns the VADER compound score, which lies in [-1, 1]
func (v *VaderSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	plain := strings.Join(strings.Fields(urlPattern.ReplaceAllString(text, "")), " ")
	return v.analyzer.PolarityScores(plain).Compound, nil
}
