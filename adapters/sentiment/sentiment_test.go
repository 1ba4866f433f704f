package sentiment

import (
	"context"
	"testing"

	"cloud.google.com/go/language/apiv1/languagepb"
	"go.uber.org/zap/zaptest"
)

func TestBuildSentimentRequest(t *testing.T) {
	req := buildSentimentRequest("I love this!")

	if req.GetDocument().GetContent() != "I love this!" {
		t.Errorf("expected content to be forwarded, got %q", req.GetDocument().GetContent())
	}
	if req.GetDocument().GetType() != languagepb.Document_PLAIN_TEXT {
		t.Errorf("expected PLAIN_TEXT, got %v", req.GetDocument().GetType())
	}
}

func TestVaderSentimentAnalyzer(t *testing.T) {
	analyzer := NewVaderSentimentAnalyzer()
	ctx := context.Background()

	tests := []struct {
		name  string
		text  string
		check func(float64) bool
	}{
		{name: "positive", text: "I love this! It is great.", check: func(s float64) bool { return s > 0.25 }},
		{name: "negative", text: "This is terrible and I hate it.", check: func(s float64) bool { return s < -0.25 }},
		{name: "neutral", text: "The meeting is on Thursday.", check: func(s float64) bool { return s >= -0.25 && s <= 0.25 }},
		{name: "links ignored", text: "https://example.com/awful", check: func(s float64) bool { return s == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := analyzer.AnalyzeSentiment(ctx, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(score) {
				t.Errorf("unexpected score %v for %q", score, tt.text)
			}
		})
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := analyzer.AnalyzeSentiment(cancelled, "hello"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    float64
		wantErr bool
	}{
		{name: "plain json", answer: `{"score": 0.8}`, want: 0.8},
		{name: "fenced json", answer: "```json\n{\"score\": -0.4}\n```", want: -0.4},
		{name: "clamped high", answer: `{"score": 3}`, want: 1},
		{name: "clamped low", answer: `{"score": -7.5}`, want: -1},
		{name: "zero", answer: `{"score": 0}`, want: 0},
		{name: "missing score", answer: `{"label": "positive"}`, wantErr: true},
		{name: "not json", answer: "Positive", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScore(tt.answer)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.answer)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseScore(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestNewGeminiSentimentAnalyzer_RequiresKey(t *testing.T) {
	_, err := NewGeminiSentimentAnalyzer(context.Background(), GeminiConfig{}, zaptest.NewLogger(t))
	if err == nil {
		t.Error("expected error without API key")
	}
}
