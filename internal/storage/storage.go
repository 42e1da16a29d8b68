// Package storage persists saved itineraries.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"PATHFINDER_BACK-END/internal/models"
)

// ErrNotFound is returned when no itinerary matches the id and owner
var ErrNotFound = errors.New("itinerary not found")

// ItineraryStore is implemented by every itinerary backend
type ItineraryStore interface {
	// Create stores rec, assigning ID and CreatedAt when unset
	Create(ctx context.Context, rec *models.SavedItinerary) error
	// ListByOwner returns the owner's itineraries, newest first
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedItinerarySummary, int, error)
	// Get returns one itinerary if it belongs to userID
	Get(ctx context.Context, id, userID uuid.UUID) (*models.SavedItinerary, error)
	Ping(ctx context.Context) error
}

func summarize(rec *models.SavedItinerary) models.SavedItinerarySummary {
	return models.SavedItinerarySummary{
		ID:          rec.ID,
		Destination: rec.Destination,
		Days:        rec.Days,
		Total:       rec.Budget.Total,
		Currency:    rec.Budget.Currency,
		CreatedAt:   rec.CreatedAt,
	}
}
