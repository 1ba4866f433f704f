package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
	"github.com/satriahrh/sentivox/domain/repositories"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// OutputService serves stored files and indexed result metadata
type OutputService struct {
	store repositories.OutputStore
	index repositories.ResultIndex
}

// NewOutputService creates a new output service
func NewOutputService(store repositories.OutputStore, index repositories.ResultIndex) *OutputService {
	return &OutputService{
		store: store,
		index: index,
	}
}

// OpenFile returns a stored output. Names that are not a generated
// identifier plus a known extension are reported as not found.
func (s *OutputService) OpenFile(ctx context.Context, name string) (io.ReadCloser, string, error) {
	_, ext, err := entities.ParseOutputName(name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	reader, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, "", err
	}
	return reader, ext, nil
}

// ListResults returns the newest indexed results
func (s *OutputService) ListResults(ctx context.Context, limit int) ([]entities.ResultRecord, error) {
	if limit < 0 || limit > MaxListLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d: %w", MaxListLimit, domain.ErrInvalidInput)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	return s.index.List(ctx, limit)
}

// GetResult returns one indexed result
func (s *OutputService) GetResult(ctx context.Context, id string) (*entities.ResultRecord, error) {
	return s.index.GetByID(ctx, id)
}
