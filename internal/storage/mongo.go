package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"PATHFINDER_BACK-END/internal/models"
)

// itineraryDoc is the document layout in the itineraries collection
type itineraryDoc struct {
	ID          string           `bson:"_id"`
	UserID      string           `bson:"user_id"`
	Destination string           `bson:"destination"`
	Days        int              `bson:"days"`
	Travelers   int              `bson:"travelers"`
	BudgetLimit int64            `bson:"budget_limit"`
	StartDate   *time.Time       `bson:"start_date,omitempty"`
	Itinerary   []models.DayPlan `bson:"itinerary_data"`
	Budget      models.Budget    `bson:"budget_breakdown"`
	Weather     *models.Weather  `bson:"weather,omitempty"`
	Hotels      []models.Hotel   `bson:"hotels,omitempty"`
	CreatedAt   time.Time        `bson:"created_at"`
}

func (d *itineraryDoc) record() (*models.SavedItinerary, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("bad itinerary id %q: %w", d.ID, err)
	}
	owner, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("bad owner id %q: %w", d.UserID, err)
	}
	return &models.SavedItinerary{
		ID: id, UserID: owner,
		Destination: d.Destination, Days: d.Days, Travelers: d.Travelers,
		BudgetLimit: d.BudgetLimit, StartDate: d.StartDate,
		Itinerary: d.Itinerary, Budget: d.Budget,
		Weather: d.Weather, Hotels: d.Hotels,
		CreatedAt: d.CreatedAt,
	}, nil
}

// MongoStore keeps itineraries as documents in MongoDB
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo dials uri and uses the itineraries collection of database
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	coll := client.Database(database).Collection("itineraries")
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create mongo index: %w", err)
	}
	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Create(ctx context.Context, rec *models.SavedItinerary) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	doc := itineraryDoc{
		ID: rec.ID.String(), UserID: rec.UserID.String(),
		Destination: rec.Destination, Days: rec.Days, Travelers: rec.Travelers,
		BudgetLimit: rec.BudgetLimit, StartDate: rec.StartDate,
		Itinerary: rec.Itinerary, Budget: rec.Budget,
		Weather: rec.Weather, Hotels: rec.Hotels,
		CreatedAt: rec.CreatedAt,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}
	return nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.SavedItinerarySummary, int, error) {
	filter := bson.M{"user_id": userID.String()}
	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count itineraries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"itinerary_data": 0, "hotels": 0, "weather": 0})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list itineraries: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.SavedItinerarySummary, 0, limit)
	for cursor.Next(ctx) {
		var d itineraryDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode itinerary: %w", err)
		}
		rec, err := d.record()
		if err != nil {
			return nil, 0, err
		}
		items = append(items, summarize(rec))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (s *MongoStore) Get(ctx context.Context, id, userID uuid.UUID) (*models.SavedItinerary, error) {
	var d itineraryDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id.String(), "user_id": userID.String()}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}
	return d.record()
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
