package mongodb

import (
	"context"
	"errors"
	"fmt"

	"studydeck/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQuizRepository implements domain.QuizRepository.
type MongoQuizRepository struct {
	coll *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) domain.QuizRepository {
	return &MongoQuizRepository{coll: db.Collection(quizzesCollection)}
}

func (r *MongoQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if _, err := r.coll.InsertOne(ctx, quiz); err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}
	return nil
}

// GetQuizByID returns (nil, nil) when no quiz matches; services translate
// that into a NotFound domain error.
func (r *MongoQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find quiz %s: %w", id, err)
	}
	return &quiz, nil
}

func (r *MongoQuizRepository) GetQuizzesByIDs(ctx context.Context, ids []string) ([]domain.Quiz, error) {
	if len(ids) == 0 {
		return []domain.Quiz{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find quizzes by ids: %w", err)
	}
	defer cursor.Close(ctx)

	quizzes := []domain.Quiz{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, fmt.Errorf("failed to decode quizzes: %w", err)
	}
	return quizzes, nil
}

func (r *MongoQuizRepository) GetQuizzesByOwner(ctx context.Context, ownerID string) ([]domain.Quiz, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find quizzes for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	quizzes := []domain.Quiz{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, fmt.Errorf("failed to decode quizzes: %w", err)
	}
	return quizzes, nil
}

var _ domain.QuizRepository = (*MongoQuizRepository)(nil)
