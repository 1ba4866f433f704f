package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
	"github.com/satriahrh/sentivox/domain/repositories"
)

const resultsCollection = "results"

// ResultIndex implements repositories.ResultIndex using MongoDB
type ResultIndex struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

var _ repositories.ResultIndex = (*ResultIndex)(nil)

// NewResultIndex creates the repository and its created_at index
func NewResultIndex(ctx context.Context, db *mongo.Database, logger *zap.Logger) (*ResultIndex, error) {
	collection := db.Collection(resultsCollection)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create results index: %w", err)
	}

	return &ResultIndex{
		collection: collection,
		logger:     logger,
	}, nil
}

// Record implements repositories.ResultIndex
func (r *ResultIndex) Record(ctx context.Context, record entities.ResultRecord) error {
	if record.ID == "" {
		return errors.New("record ID cannot be empty")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert result record %s: %w", record.ID, err)
	}
	return nil
}

// GetByID implements repositories.ResultIndex
func (r *ResultIndex) GetByID(ctx context.Context, id string) (*entities.ResultRecord, error) {
	var record entities.ResultRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get result record %s: %w", id, err)
	}
	return &record, nil
}

// List implements repositories.ResultIndex
func (r *ResultIndex) List(ctx context.Context, limit int) ([]entities.ResultRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list result records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]entities.ResultRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode result records: %w", err)
	}
	return records, nil
}
