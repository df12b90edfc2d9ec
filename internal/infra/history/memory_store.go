// Package history implements repository.ShownHistoryStore in memory and on BadgerDB.
package history

import (
	"context"
	"sync"
	"time"

	"eventpulse/internal/domain/repository"

	"github.com/google/uuid"
)

type recordKey struct {
	userID     uuid.UUID
	trackingID string
}

type memoryStore struct {
	mu      sync.Mutex
	records map[recordKey]time.Time
}

// NewMemoryStore creates a process-local history store
func NewMemoryStore() repository.ShownHistoryStore {
	return &memoryStore{records: make(map[recordKey]time.Time)}
}

func (s *memoryStore) Get(_ context.Context, userID uuid.UUID, trackingID string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shownAt, ok := s.records[recordKey{userID, trackingID}]

	return shownAt, ok, nil
}

func (s *memoryStore) Put(_ context.Context, userID uuid.UUID, trackingID string, shownAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[recordKey{userID, trackingID}] = shownAt

	return nil
}

func (s *memoryStore) Claim(_ context.Context, userID uuid.UUID, trackingID string, shownAt, cutoff time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey{userID, trackingID}
	if prev, ok := s.records[key]; ok && !prev.Before(cutoff) {
		return false, nil
	}
	s.records[key] = shownAt

	return true, nil
}

func (s *memoryStore) PruneOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for key, shownAt := range s.records {
		if shownAt.Before(cutoff) {
			delete(s.records, key)
			pruned++
		}
	}

	return pruned, nil
}
