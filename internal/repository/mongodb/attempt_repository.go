package mongodb

import (
	"context"
	"fmt"
	"time"

	"studydeck/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQuizAttemptRepository implements domain.QuizAttemptRepository.
// Attempts are append-only; this repository intentionally has no update or
// delete methods.
type MongoQuizAttemptRepository struct {
	coll *mongo.Collection
}

func NewQuizAttemptRepository(db *mongo.Database) domain.QuizAttemptRepository {
	return &MongoQuizAttemptRepository{coll: db.Collection(attemptsCollection)}
}

func (r *MongoQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if _, err := r.coll.InsertOne(ctx, attempt); err != nil {
		return fmt.Errorf("failed to insert quiz attempt: %w", err)
	}
	return nil
}

func (r *MongoQuizAttemptRepository) GetAttemptsByUser(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	return r.find(ctx, bson.M{"userId": userID}, 0)
}

func (r *MongoQuizAttemptRepository) GetRecentAttemptsByUser(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	return r.find(ctx, bson.M{"userId": userID}, int64(limit))
}

func (r *MongoQuizAttemptRepository) GetAttemptsByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.QuizAttempt, error) {
	return r.find(ctx, bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}, 0)
}

func (r *MongoQuizAttemptRepository) find(ctx context.Context, filter bson.M, limit int64) ([]domain.QuizAttempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find quiz attempts: %w", err)
	}
	defer cursor.Close(ctx)

	attempts := []domain.QuizAttempt{}
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, fmt.Errorf("failed to decode quiz attempts: %w", err)
	}
	return attempts, nil
}

var _ domain.QuizAttemptRepository = (*MongoQuizAttemptRepository)(nil)
