package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"PATHFINDER_BACK-END/internal/models"
)

// MemoryStore keeps itineraries in process memory. Used for local runs without a
// database and in handler tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]models.SavedItinerary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]models.SavedItinerary)}
}

func (s *MemoryStore) Create(_ context.Context, rec *models.SavedItinerary) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedItinerarySummary, int, error) {
	s.mu.RLock()
	owned := lo.Filter(lo.Values(s.records), func(r models.SavedItinerary, _ int) bool {
		return r.UserID == userID
	})
	s.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	total := len(owned)
	page := lo.Subset(owned, offset, uint(max(limit, 0)))
	return lo.Map(page, func(r models.SavedItinerary, _ int) models.SavedItinerarySummary {
		return summarize(&r)
	}), total, nil
}

func (s *MemoryStore) Get(_ context.Context, id, userID uuid.UUID) (*models.SavedItinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok || rec.UserID != userID {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
