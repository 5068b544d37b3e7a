package mongodb

import (
	"context"
	"fmt"

	"studydeck/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlashcardSetRepository implements domain.FlashcardSetRepository.
type MongoFlashcardSetRepository struct {
	coll *mongo.Collection
}

func NewFlashcardSetRepository(db *mongo.Database) domain.FlashcardSetRepository {
	return &MongoFlashcardSetRepository{coll: db.Collection(flashcardSetsCollection)}
}

func (r *MongoFlashcardSetRepository) CreateSet(ctx context.Context, set *domain.FlashcardSet) error {
	if _, err := r.coll.InsertOne(ctx, set); err != nil {
		return fmt.Errorf("failed to insert flashcard set: %w", err)
	}
	return nil
}

func (r *MongoFlashcardSetRepository) GetSetsByOwner(ctx context.Context, ownerID string) ([]domain.FlashcardSet, error) {
	return r.findByOwner(ctx, ownerID, 0)
}

func (r *MongoFlashcardSetRepository) GetRecentSetsByOwner(ctx context.Context, ownerID string, limit int) ([]domain.FlashcardSet, error) {
	return r.findByOwner(ctx, ownerID, int64(limit))
}

func (r *MongoFlashcardSetRepository) CountSetsByOwner(ctx context.Context, ownerID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count flashcard sets for owner %s: %w", ownerID, err)
	}
	return count, nil
}

func (r *MongoFlashcardSetRepository) findByOwner(ctx context.Context, ownerID string, limit int64) ([]domain.FlashcardSet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find flashcard sets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	sets := []domain.FlashcardSet{}
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, fmt.Errorf("failed to decode flashcard sets: %w", err)
	}
	return sets, nil
}

var _ domain.FlashcardSetRepository = (*MongoFlashcardSetRepository)(nil)
