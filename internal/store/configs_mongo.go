package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"maets/internal/domain"
)

// ConfigCollection is the collection holding configuration documents.
const ConfigCollection = "gameconfigs"

type configDocument struct {
	ID              bson.ObjectID     `bson:"_id,omitempty"`
	UserID          int64             `bson:"userId"`
	GameID          int64             `bson:"gameId"`
	Resolution      domain.Resolution `bson:"resolution"`
	GraphicsQuality string            `bson:"graphicsQuality"`
	FrameRateLimit  int               `bson:"frameRateLimit"`
	CreatedAt       time.Time         `bson:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt"`
}

func (d configDocument) toDomain() *domain.GameConfig {
	return &domain.GameConfig{
		ID:              d.ID.Hex(),
		UserID:          uint(d.UserID),
		GameID:          uint(d.GameID),
		Resolution:      d.Resolution,
		GraphicsQuality: domain.GraphicsQuality(d.GraphicsQuality),
		FrameRateLimit:  d.FrameRateLimit,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func pairFilter(userID, gameID uint) bson.D {
	return bson.D{{Key: "userId", Value: int64(userID)}, {Key: "gameId", Value: int64(gameID)}}
}

// MongoConfigStore keeps configuration documents in MongoDB.
type MongoConfigStore struct {
	coll *mongo.Collection
}

// NewMongoConfigStore returns a MongoConfigStore using the gameconfigs collection of db.
func NewMongoConfigStore(db *mongo.Database) *MongoConfigStore {
	return &MongoConfigStore{coll: db.Collection(ConfigCollection)}
}

// EnsureIndexes creates the unique (userId, gameId) index.
func (s *MongoConfigStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "gameId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("userId_gameId_unique"),
	})
	return err
}

// Get returns the configuration for the pair.
func (s *MongoConfigStore) Get(ctx context.Context, userID, gameID uint) (*domain.GameConfig, error) {
	var doc configDocument
	err := s.coll.FindOne(ctx, pairFilter(userID, gameID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Insert stores a new configuration and sets its ID.
func (s *MongoConfigStore) Insert(ctx context.Context, cfg *domain.GameConfig) error {
	doc := configDocument{
		UserID:          int64(cfg.UserID),
		GameID:          int64(cfg.GameID),
		Resolution:      cfg.Resolution,
		GraphicsQuality: string(cfg.GraphicsQuality),
		FrameRateLimit:  cfg.FrameRateLimit,
		CreatedAt:       cfg.CreatedAt,
		UpdatedAt:       cfg.UpdatedAt,
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return errors.Join(ErrDuplicate, err)
	}
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		cfg.ID = id.Hex()
	}
	return nil
}

// Update overwrites the mutable fields of the configuration for the pair.
func (s *MongoConfigStore) Update(ctx context.Context, cfg *domain.GameConfig) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "resolution", Value: cfg.Resolution},
		{Key: "graphicsQuality", Value: string(cfg.GraphicsQuality)},
		{Key: "frameRateLimit", Value: cfg.FrameRateLimit},
		{Key: "updatedAt", Value: cfg.UpdatedAt},
	}}}
	res, err := s.coll.UpdateOne(ctx, pairFilter(cfg.UserID, cfg.GameID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the configuration for the pair.
func (s *MongoConfigStore) Delete(ctx context.Context, userID, gameID uint) error {
	res, err := s.coll.DeleteOne(ctx, pairFilter(userID, gameID))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
