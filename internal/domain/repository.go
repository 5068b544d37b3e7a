package domain

import (
	"context"
	"time"
)

// QuizRepository is the persistence port for quizzes.
// Lookups return (nil, nil) when no document matches; services translate that
// into a NotFound domain error.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	// GetQuizzesByIDs returns the quizzes matching the given ids in one
	// query; ids with no matching quiz are simply absent from the result.
	GetQuizzesByIDs(ctx context.Context, ids []string) ([]Quiz, error)
	// GetQuizzesByOwner returns the owner's quizzes, newest first.
	GetQuizzesByOwner(ctx context.Context, ownerID string) ([]Quiz, error)
}

// FlashcardSetRepository is the persistence port for flashcard sets.
type FlashcardSetRepository interface {
	CreateSet(ctx context.Context, set *FlashcardSet) error
	// GetSetsByOwner returns the owner's flashcard sets, newest first.
	GetSetsByOwner(ctx context.Context, ownerID string) ([]FlashcardSet, error)
	GetRecentSetsByOwner(ctx context.Context, ownerID string, limit int) ([]FlashcardSet, error)
	CountSetsByOwner(ctx context.Context, ownerID string) (int64, error)
}

// QuizAttemptRepository is the persistence port for scored attempts.
// Attempts are append-only; there is no update or delete.
type QuizAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	// GetAttemptsByUser returns all of a user's attempts, newest first.
	GetAttemptsByUser(ctx context.Context, userID string) ([]QuizAttempt, error)
	GetRecentAttemptsByUser(ctx context.Context, userID string, limit int) ([]QuizAttempt, error)
	GetAttemptsByUserSince(ctx context.Context, userID string, since time.Time) ([]QuizAttempt, error)
}

// UserRepository is the persistence port for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserByEmailOrUsername supports the uniqueness check at registration.
	GetUserByEmailOrUsername(ctx context.Context, email, username string) (*User, error)
}
