package entities

// SentimentLabel is one of the three buckets a sentiment score falls into
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// SentimentUnavailableText is what callers see when the classifier could not
// produce a score.
const SentimentUnavailableText = "Error in sentiment analysis"

const (
	positiveThreshold = 0.25
	negativeThreshold = -0.25
)

// LabelForScore buckets a score in roughly [-1, 1]. Both thresholds belong to
// the neutral bucket.
func LabelForScore(score float64) SentimentLabel {
	switch {
	case score > positiveThreshold:
		return SentimentPositive
	case score < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Sentiment is the outcome of classifying a piece of text. It is either
// available (Label and Score are set) or unavailable (Err is set).
type Sentiment struct {
	Label SentimentLabel
	Score float64
	Err   error
}

// NewSentiment builds an available sentiment from a raw score
func NewSentiment(score float64) Sentiment {
	return Sentiment{
		Label: LabelForScore(score),
		Score: score,
	}
}

// UnavailableSentiment records a classifier failure
func UnavailableSentiment(err error) Sentiment {
	return Sentiment{Err: err}
}

// Available reports whether the classifier produced a score
func (s Sentiment) Available() bool {
	return s.Err == nil && s.Label != ""
}

// String renders the sentiment for responses and text records
func (s Sentiment) String() string {
	if !s.Available() {
		return SentimentUnavailableText
	}
	return string(s.Label)
}

// ScorePtr returns the score, or nil when unavailable. Used for optional JSON fields.
func (s Sentiment) ScorePtr() *float64 {
	if !s.Available() {
		return nil
	}
	score := s.Score
	return &score
}
