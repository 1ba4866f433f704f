package adapters

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
	"github.com/satriahrh/sentivox/domain/repositories"
)

// DefaultMemoryIndexCapacity is the number of records kept by NewMemoryResultIndex
const DefaultMemoryIndexCapacity = 1000

// MemoryResultIndex is an in-memory ResultIndex. Records are lost on restart;
// it is the default when no MongoDB is configured. Once full, the oldest
// record is evicted for every new one.
type MemoryResultIndex struct {
	mu       sync.RWMutex
	capacity int
	records  map[string]entities.ResultRecord // id -> record mapping
	order    []string                         // ids in insertion order, oldest first
}

var _ repositories.ResultIndex = (*MemoryResultIndex)(nil)

// NewMemoryResultIndex creates an empty index holding DefaultMemoryIndexCapacity records
func NewMemoryResultIndex() *MemoryResultIndex {
	return NewMemoryResultIndexWithCapacity(DefaultMemoryIndexCapacity)
}

// NewMemoryResultIndexWithCapacity creates an empty index holding at most
// capacity records. A non-positive capacity falls back to the default.
func NewMemoryResultIndexWithCapacity(capacity int) *MemoryResultIndex {
	if capacity <= 0 {
		capacity = DefaultMemoryIndexCapacity
	}
	return &MemoryResultIndex{
		capacity: capacity,
		records:  make(map[string]entities.ResultRecord, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Record implements repositories.ResultIndex
func (m *MemoryResultIndex) Record(ctx context.Context, record entities.ResultRecord) error {
	if record.ID == "" {
		return errors.New("record ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		return fmt.Errorf("record %s already exists", record.ID)
	}

	record.Files = append([]string(nil), record.Files...)
	if len(m.order) >= m.capacity {
		delete(m.records, m.order[0])
		copy(m.order, m.order[1:])
		m.order = m.order[:len(m.order)-1]
	}

	m.records[record.ID] = record
	m.order = append(m.order, record.ID)
	return nil
}

// GetByID implements repositories.ResultIndex
func (m *MemoryResultIndex) GetByID(ctx context.Context, id string) (*entities.ResultRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[id]
	if !exists {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return &record, nil
}

// List implements repositories.ResultIndex. Records arrive in creation
// order, so walking the ids backwards yields newest first.
func (m *MemoryResultIndex) List(ctx context.Context, limit int) ([]entities.ResultRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.order)
	if limit > 0 && limit < n {
		n = limit
	}

	records := make([]entities.ResultRecord, 0, n)
	for i := len(m.order) - 1; i >= 0 && len(records) < n; i-- {
		records = append(records, m.records[m.order[i]])
	}
	return records, nil
}
