package session

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a generation for the same key is already running
var ErrInFlight = errors.New("a generation request is already in progress")

// Guard allows at most one outstanding generation per key
type Guard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{running: make(map[string]struct{})}
}

// TryAcquire claims key. The returned release func must be called once the work is done.
func (g *Guard) TryAcquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[key]; busy {
		return nil, ErrInFlight
	}
	g.running[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.running, key)
			g.mu.Unlock()
		})
	}, nil
}

// Busy reports whether key currently holds the guard
func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.running[key]
	return busy
}
