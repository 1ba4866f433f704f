package repositories

import (
	"context"
	"io"

	"github.com/satriahrh/sentivox/domain/entities"
)

// OutputStore holds the persisted result files, keyed by file name
type OutputStore interface {
	// Save writes a new file. Saving over an existing name is an error.
	Save(ctx context.Context, name string, data []byte) error
	// Open returns the file content. Missing files yield domain.ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ResultIndex keeps metadata about stored results for listing
type ResultIndex interface {
	Record(ctx context.Context, record entities.ResultRecord) error
	GetByID(ctx context.Context, id string) (*entities.ResultRecord, error)
	// List returns the newest records first
	List(ctx context.Context, limit int) ([]entities.ResultRecord, error)
}
