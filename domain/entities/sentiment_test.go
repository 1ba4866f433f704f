package entities

import (
	"errors"
	"testing"
)

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  SentimentLabel
	}{
		{name: "strongly positive", score: 0.9, want: SentimentPositive},
		{name: "just above upper threshold", score: 0.2500001, want: SentimentPositive},
		{name: "upper threshold is neutral", score: 0.25, want: SentimentNeutral},
		{name: "zero", score: 0, want: SentimentNeutral},
		{name: "lower threshold is neutral", score: -0.25, want: SentimentNeutral},
		{name: "just below lower threshold", score: -0.2500001, want: SentimentNegative},
		{name: "strongly negative", score: -1, want: SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelForScore(tt.score); got != tt.want {
				t.Errorf("LabelForScore(%v) = %s, want %s", tt.score, got, tt.want)
			}
		})
	}
}

func TestSentimentVariants(t *testing.T) {
	ok := NewSentiment(0.8)
	if !ok.Available() {
		t.Fatal("expected sentiment to be available")
	}
	if ok.String() != "Positive" {
		t.Errorf("expected Positive, got %s", ok.String())
	}
	if ok.ScorePtr() == nil || *ok.ScorePtr() != 0.8 {
		t.Errorf("expected score 0.8, got %v", ok.ScorePtr())
	}

	failed := UnavailableSentiment(errors.New("quota exceeded"))
	if failed.Available() {
		t.Fatal("expected sentiment to be unavailable")
	}
	if failed.String() != SentimentUnavailableText {
		t.Errorf("expected %q, got %q", SentimentUnavailableText, failed.String())
	}
	if failed.ScorePtr() != nil {
		t.Error("expected nil score for unavailable sentiment")
	}

	var zero Sentiment
	if zero.Available() {
		t.Error("zero value must not be reported as available")
	}
}
