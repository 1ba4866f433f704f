package entities

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoTranscriptionText stands in for the transcript when the recognizer
// returns no results.
const NoTranscriptionText = "No transcription available"

// File extensions of persisted outputs
const (
	ExtText  = ".txt"
	ExtAudio = ".mp3"
)

// ResultKind tells which operation produced a result
type ResultKind string

const (
	ResultKindTranscription ResultKind = "transcription"
	ResultKindSynthesis     ResultKind = "synthesis"
)

var ErrInvalidOutputName = errors.New("invalid output file name")

// NewResultID generates a fresh identifier for one result's files
func NewResultID() string {
	return uuid.NewString()
}

// OutputName joins an identifier and an extension into a file name
func OutputName(id, ext string) string {
	return id + ext
}

// OutputURL is the retrieval path for a stored output file
func OutputURL(name string) string {
	return "/output/" + name
}

// ParseOutputName validates a requested file name. Only canonical
// "<uuid>.txt" and "<uuid>.mp3" names are accepted.
func ParseOutputName(name string) (id string, ext string, err error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return "", "", ErrInvalidOutputName
	}

	ext = filepath.Ext(name)
	if ext != ExtText && ext != ExtAudio {
		return "", "", fmt.Errorf("%w: unsupported extension %q", ErrInvalidOutputName, ext)
	}

	id = strings.TrimSuffix(name, ext)
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidOutputName, err)
	}
	// uuid.Parse also accepts urn: and braced forms
	if parsed.String() != id {
		return "", "", fmt.Errorf("%w: non-canonical identifier", ErrInvalidOutputName)
	}

	return id, ext, nil
}

// TranscriptionResult is the outcome of one upload
type TranscriptionResult struct {
	ID         string
	Transcript string
	Sentiment  Sentiment
	FileName   string
	CreatedAt  time.Time
}

// Record renders the human readable text file content
func (r *TranscriptionResult) Record() []byte {
	return []byte(fmt.Sprintf("Transcript: %s\n\nSentiment: %s", r.Transcript, r.Sentiment))
}

// SynthesisResult is the outcome of one synthesis request
type SynthesisResult struct {
	ID        string
	Text      string
	Audio     []byte
	Sentiment Sentiment
	AudioFile string
	TextFile  string
	CreatedAt time.Time
}

// Record renders the human readable text file content
func (r *SynthesisResult) Record() []byte {
	return []byte(fmt.Sprintf("Text: %s\n\nSentiment: %s", r.Text, r.Sentiment))
}

// ResultRecord is the index entry describing a stored result
type ResultRecord struct {
	ID        string     `json:"id" bson:"_id"`
	Kind      ResultKind `json:"kind" bson:"kind"`
	Text      string     `json:"text" bson:"text"`
	Sentiment string     `json:"sentiment" bson:"sentiment"`
	Score     *float64   `json:"sentiment_score,omitempty" bson:"score,omitempty"`
	Files     []string   `json:"files" bson:"files"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// RecordFromTranscription builds the index entry for a transcription
func RecordFromTranscription(r *TranscriptionResult) ResultRecord {
	return ResultRecord{
		ID:        r.ID,
		Kind:      ResultKindTranscription,
		Text:      r.Transcript,
		Sentiment: r.Sentiment.String(),
		Score:     r.Sentiment.ScorePtr(),
		Files:     []string{r.FileName},
		CreatedAt: r.CreatedAt,
	}
}

// RecordFromSynthesis builds the index entry for a synthesis
func RecordFromSynthesis(r *SynthesisResult) ResultRecord {
	return ResultRecord{
		ID:        r.ID,
		Kind:      ResultKindSynthesis,
		Text:      r.Text,
		Sentiment: r.Sentiment.String(),
		Score:     r.Sentiment.ScorePtr(),
		Files:     []string{r.AudioFile, r.TextFile},
		CreatedAt: r.CreatedAt,
	}
}
