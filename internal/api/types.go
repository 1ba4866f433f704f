package api

import "time"

// TranscriptionResponse is returned by POST /upload
type TranscriptionResponse struct {
	Transcript     string   `json:"transcript"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	FileURL        string   `json:"file_url"`
}

// SynthesisRequest is the body of POST /synthesize
type SynthesisRequest struct {
	Text string `json:"text"`
}

// SynthesisResponse is returned by POST /synthesize
type SynthesisResponse struct {
	AudioURL       string   `json:"audio_url"`
	TextURL        string   `json:"text_url"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
}

// ResultResponse describes one indexed result
type ResultResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Text           string    `json:"text"`
	Sentiment      string    `json:"sentiment"`
	SentimentScore *float64  `json:"sentiment_score,omitempty"`
	FileURLs       []string  `json:"file_urls"`
	CreatedAt      time.Time `json:"created_at"`
}

// ResultListResponse is returned by GET /api/v1/results
type ResultListResponse struct {
	Results []ResultResponse `json:"results"`
	Count   int              `json:"count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
