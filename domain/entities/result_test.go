package entities

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseOutputName(t *testing.T) {
	id := NewResultID()

	tests := []struct {
		name    string
		input   string
		wantExt string
		wantErr bool
	}{
		{name: "text file", input: id + ".txt", wantExt: ExtText},
		{name: "audio file", input: id + ".mp3", wantExt: ExtAudio},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown file", input: "does-not-exist.txt", wantErr: true},
		{name: "unsupported extension", input: id + ".wav", wantErr: true},
		{name: "no extension", input: id, wantErr: true},
		{name: "path traversal", input: "../" + id + ".txt", wantErr: true},
		{name: "nested path", input: "a/" + id + ".txt", wantErr: true},
		{name: "backslash", input: `..\` + id + ".txt", wantErr: true},
		{name: "upper case id", input: strings.ToUpper(id) + ".txt", wantErr: true},
		{name: "braced id", input: "{" + id + "}.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotExt, err := ParseOutputName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				if !errors.Is(err, ErrInvalidOutputName) {
					t.Errorf("expected ErrInvalidOutputName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotID != id {
				t.Errorf("expected id %s, got %s", id, gotID)
			}
			if gotExt != tt.wantExt {
				t.Errorf("expected ext %s, got %s", tt.wantExt, gotExt)
			}
		})
	}
}

func TestNewResultIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewResultID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestResultRecords(t *testing.T) {
	now := time.Now()
	tr := &TranscriptionResult{
		ID:         "abc",
		Transcript: "hello there",
		Sentiment:  NewSentiment(-0.6),
		FileName:   OutputName("abc", ExtText),
		CreatedAt:  now,
	}

	if got := string(tr.Record()); got != "Transcript: hello there\n\nSentiment: Negative" {
		t.Errorf("unexpected transcription record %q", got)
	}

	rec := RecordFromTranscription(tr)
	if rec.Kind != ResultKindTranscription || rec.Sentiment != "Negative" || rec.Score == nil {
		t.Errorf("unexpected index record %+v", rec)
	}
	if len(rec.Files) != 1 || rec.Files[0] != "abc.txt" {
		t.Errorf("unexpected files %v", rec.Files)
	}

	sr := &SynthesisResult{
		ID:        "def",
		Text:      "I love this!",
		Sentiment: UnavailableSentiment(errors.New("boom")),
		AudioFile: OutputName("def", ExtAudio),
		TextFile:  OutputName("def", ExtText),
		CreatedAt: now,
	}

	if got := string(sr.Record()); got != "Text: I love this!\n\nSentiment: Error in sentiment analysis" {
		t.Errorf("unexpected synthesis record %q", got)
	}

	rec = RecordFromSynthesis(sr)
	if rec.Score != nil {
		t.Error("expected no score for unavailable sentiment")
	}
	if len(rec.Files) != 2 || rec.Files[0] != "def.mp3" || rec.Files[1] != "def.txt" {
		t.Errorf("unexpected files %v", rec.Files)
	}
	if OutputURL(rec.Files[0]) != "/output/def.mp3" {
		t.Errorf("unexpected url %s", OutputURL(rec.Files[0]))
	}
}
