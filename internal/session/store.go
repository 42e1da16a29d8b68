// Package session holds the "current trip" between generation and save or restart.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"PATHFINDER_BACK-END/internal/models"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions
	ErrSessionNotFound = errors.New("planning session not found or expired")
	// ErrRegenerationLimit is returned once a session has used all whole-trip regenerations
	ErrRegenerationLimit = errors.New("regeneration limit reached")
)

// Session is one user's planning state. All access goes through its methods.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu                sync.Mutex
	request           models.TripRequest
	itinerary         models.Itinerary
	weather           *models.Weather
	hotels            []models.Hotel
	regenerations     int
	regenerationLimit int
	closed            bool
}

// Snapshot is a consistent copy of a session's state
type Snapshot struct {
	ID                   string
	Request              models.TripRequest
	Itinerary            models.Itinerary
	Weather              *models.Weather
	Hotels               []models.Hotel
	RegenerationsUsed    int
	RegenerationsAllowed int
}

// Content is what a successful generation contributes to a session
type Content struct {
	Itinerary models.Itinerary
	Weather   *models.Weather
	Hotels    []models.Hotel
}

// Snapshot returns a deep copy of the session state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:                   s.ID,
		Request:              s.request,
		Itinerary:            cloneItinerary(s.itinerary),
		Weather:              s.weather,
		Hotels:               append([]models.Hotel(nil), s.hotels...),
		RegenerationsUsed:    s.regenerations,
		RegenerationsAllowed: s.regenerationLimit,
	}
}

// Mutate runs fn against the live itinerary under the session lock and returns the
// resulting snapshot. fn's error is returned unchanged; fn must leave the itinerary
// untouched when it fails. A session that was deleted or taken for saving is not
// touched and yields ErrSessionNotFound.
func (s *Session) Mutate(fn func(it *models.Itinerary) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.snapshotLocked(), ErrSessionNotFound
	}
	err := fn(&s.itinerary)
	return s.snapshotLocked(), err
}

// CheckRegeneration fails with ErrRegenerationLimit when no whole-trip regenerations remain
func (s *Session) CheckRegeneration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.regenerations >= s.regenerationLimit {
		return ErrRegenerationLimit
	}
	return nil
}

// Regenerate replaces the whole itinerary with fresh content and counts the regeneration.
// It fails with ErrSessionNotFound once the session has left its store.
func (s *Session) Regenerate(c Content) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.snapshotLocked(), ErrSessionNotFound
	}
	if s.regenerations >= s.regenerationLimit {
		return s.snapshotLocked(), ErrRegenerationLimit
	}
	s.regenerations++
	s.apply(c)
	return s.snapshotLocked(), nil
}

func (s *Session) setClosed(closed bool) {
	s.mu.Lock()
	s.closed = closed
	s.mu.Unlock()
}

func (s *Session) apply(c Content) {
	s.itinerary = cloneItinerary(c.Itinerary)
	s.weather = c.Weather
	s.hotels = append([]models.Hotel(nil), c.Hotels...)
}

func cloneItinerary(it models.Itinerary) models.Itinerary {
	return models.Itinerary{
		Days:   append([]models.DayPlan(nil), it.Days...),
		Budget: it.Budget,
	}
}

// Store keeps sessions in memory with expiry
type Store struct {
	// mu makes lookup-and-refresh and take atomic; the cache alone has no compare-and-delete
	mu                sync.Mutex
	cache             *cache.Cache
	regenerationLimit int
}

// NewStore creates a store whose sessions expire after ttl
func NewStore(ttl, cleanupInterval time.Duration, regenerationLimit int) *Store {
	return &Store{
		cache:             cache.New(ttl, cleanupInterval),
		regenerationLimit: regenerationLimit,
	}
}

// Create opens a session for a freshly generated trip
func (st *Store) Create(req models.TripRequest, c Content) *Session {
	s := &Session{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now(),
		request:           req,
		regenerationLimit: st.regenerationLimit,
	}
	s.apply(c)
	st.cache.Set(s.ID, s, cache.DefaultExpiration)
	return s
}

// Get looks a session up and extends its lifetime
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.getLocked(id)
	if err != nil {
		return nil, err
	}
	st.cache.Set(id, s, cache.DefaultExpiration)
	return s, nil
}

func (st *Store) getLocked(id string) (*Session, error) {
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s, ok := v.(*Session)
	if !ok {
		st.cache.Delete(id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Take removes a session from the store and closes it, so exactly one caller
// gets it. Later mutations on the returned session fail with ErrSessionNotFound.
func (st *Store) Take(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.getLocked(id)
	if err != nil {
		return nil, err
	}
	st.cache.Delete(id)
	s.setClosed(true)
	return s, nil
}

// Restore puts back a session obtained from Take
func (st *Store) Restore(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s.setClosed(false)
	st.cache.Set(s.ID, s, cache.DefaultExpiration)
}

// Delete tears a session down. A request still holding it can no longer change it.
func (st *Store) Delete(id string) error {
	_, err := st.Take(id)
	return err
}

// Count returns the number of live sessions
func (st *Store) Count() int {
	return st.cache.ItemCount()
}
