package mongo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
)

// TestResultIndex_Integration requires a running MongoDB instance (skipped if MONGODB_URI is not set)
func TestResultIndex_Integration(t *testing.T) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		t.Skip("Skipping MongoDB integration test - MONGODB_URI not set")
	}

	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	client, err := NewClient(ctx, mongoURI, "sentivox_test", logger)
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Close(ctx)
	defer client.Database.Drop(ctx)

	index, err := NewResultIndex(ctx, client.Database, logger)
	if err != nil {
		t.Fatalf("Failed to create result index: %v", err)
	}

	base := time.Now().Truncate(time.Millisecond)
	older := entities.RecordFromTranscription(&entities.TranscriptionResult{
		ID:         entities.NewResultID(),
		Transcript: "hello",
		Sentiment:  entities.NewSentiment(0.1),
		FileName:   "a.txt",
		CreatedAt:  base,
	})
	newer := entities.RecordFromSynthesis(&entities.SynthesisResult{
		ID:        entities.NewResultID(),
		Text:      "I love this!",
		Sentiment: entities.NewSentiment(0.9),
		AudioFile: "b.mp3",
		TextFile:  "b.txt",
		CreatedAt: base.Add(time.Second),
	})

	t.Run("RecordAndGet", func(t *testing.T) {
		if err := index.Record(ctx, older); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if err := index.Record(ctx, newer); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		got, err := index.GetByID(ctx, newer.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Kind != entities.ResultKindSynthesis || got.Sentiment != "Positive" {
			t.Errorf("unexpected record %+v", got)
		}
		if len(got.Files) != 2 {
			t.Errorf("expected 2 files, got %v", got.Files)
		}
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		if err := index.Record(ctx, older); err == nil {
			t.Error("expected error for duplicate ID")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := index.GetByID(ctx, "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		records, err := index.List(ctx, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].ID != newer.ID {
			t.Errorf("expected newest record first, got %s", records[0].ID)
		}
	})
}
