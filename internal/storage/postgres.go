package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"PATHFINDER_BACK-END/internal/models"
)

const itinerariesSchema = `
CREATE TABLE IF NOT EXISTS itineraries (
    id               UUID PRIMARY KEY,
    user_id          UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    destination      TEXT NOT NULL,
    days             INTEGER NOT NULL,
    travelers        INTEGER NOT NULL DEFAULT 1,
    budget_limit     BIGINT NOT NULL DEFAULT 0,
    start_date       DATE,
    itinerary_data   JSONB NOT NULL,
    budget_breakdown JSONB NOT NULL,
    weather          JSONB,
    hotels           JSONB,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS itineraries_user_created_idx ON itineraries (user_id, created_at DESC);
`

// PostgresStore keeps itineraries in the itineraries table, with the itinerary
// body and budget in jsonb columns
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the itineraries table when it is missing
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, itinerariesSchema); err != nil {
		return fmt.Errorf("create itineraries table: %w", err)
	}
	return nil
}

func jsonText(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func (s *PostgresStore) Create(ctx context.Context, rec *models.SavedItinerary) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	days, err := jsonText(rec.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	breakdown, err := jsonText(rec.Budget)
	if err != nil {
		return fmt.Errorf("encode budget: %w", err)
	}
	var weather, hotels *string
	if rec.Weather != nil {
		if weather, err = jsonText(rec.Weather); err != nil {
			return fmt.Errorf("encode weather: %w", err)
		}
	}
	if len(rec.Hotels) > 0 {
		if hotels, err = jsonText(rec.Hotels); err != nil {
			return fmt.Errorf("encode hotels: %w", err)
		}
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO itineraries (id, user_id, destination, days, travelers, budget_limit, start_date,
                                  itinerary_data, budget_breakdown, weather, hotels, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb, $10::jsonb, $11::jsonb, $12)`,
		rec.ID, rec.UserID, rec.Destination, rec.Days, rec.Travelers, rec.BudgetLimit, rec.StartDate,
		*days, *breakdown, weather, hotels, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedItinerarySummary, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(1) FROM itineraries WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count itineraries: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, destination, days, COALESCE((budget_breakdown->>'total')::bigint, 0),
                COALESCE(budget_breakdown->>'currency', ''), created_at
           FROM itineraries
          WHERE user_id = $1
          ORDER BY created_at DESC
          LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list itineraries: %w", err)
	}
	defer rows.Close()

	items := make([]models.SavedItinerarySummary, 0, limit)
	for rows.Next() {
		var it models.SavedItinerarySummary
		if err := rows.Scan(&it.ID, &it.Destination, &it.Days, &it.Total, &it.Currency, &it.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan itinerary: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *PostgresStore) Get(ctx context.Context, id, userID uuid.UUID) (*models.SavedItinerary, error) {
	var (
		rec                     models.SavedItinerary
		days, breakdown         []byte
		weatherJSON, hotelsJSON []byte
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, destination, days, travelers, budget_limit, start_date,
                itinerary_data, budget_breakdown, weather, hotels, created_at
           FROM itineraries
          WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&rec.ID, &rec.UserID, &rec.Destination, &rec.Days, &rec.Travelers, &rec.BudgetLimit, &rec.StartDate,
			&days, &breakdown, &weatherJSON, &hotelsJSON, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}

	if err := json.Unmarshal(days, &rec.Itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary_data: %w", err)
	}
	if err := json.Unmarshal(breakdown, &rec.Budget); err != nil {
		return nil, fmt.Errorf("decode budget_breakdown: %w", err)
	}
	if len(weatherJSON) > 0 {
		rec.Weather = &models.Weather{}
		if err := json.Unmarshal(weatherJSON, rec.Weather); err != nil {
			return nil, fmt.Errorf("decode weather: %w", err)
		}
	}
	if len(hotelsJSON) > 0 {
		if err := json.Unmarshal(hotelsJSON, &rec.Hotels); err != nil {
			return nil, fmt.Errorf("decode hotels: %w", err)
		}
	}
	return &rec, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
