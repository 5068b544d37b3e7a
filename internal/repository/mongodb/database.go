// Package mongodb implements the persistence ports on top of the MongoDB
// official driver. Records are stored with ULID string _ids and the field
// names the REST layer exposes, so documents round-trip to the wire format
// without mapping tables.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"studydeck/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection         = "users"
	quizzesCollection       = "quizzes"
	flashcardSetsCollection = "flashcard_sets"
	attemptsCollection      = "quiz_attempts"
)

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo configuration is missing or URI is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the query paths rely on. It is safe to
// call on every startup; existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	ownerRecency := bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}
	_, err = db.Collection(quizzesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: ownerRecency})
	if err != nil {
		return fmt.Errorf("failed to create quiz indexes: %w", err)
	}
	_, err = db.Collection(flashcardSetsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: ownerRecency})
	if err != nil {
		return fmt.Errorf("failed to create flashcard set indexes: %w", err)
	}

	_, err = db.Collection(attemptsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create attempt indexes: %w", err)
	}
	return nil
}
