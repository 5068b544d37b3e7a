package service

import (
	"context"
	"time"

	"studydeck/internal/domain"
)

// Hand-rolled port mocks with overridable func fields. Unset funcs return
// zero values so each test only wires what it asserts on.

type mockQuizRepo struct {
	createQuizFn        func(ctx context.Context, quiz *domain.Quiz) error
	getQuizByIDFn       func(ctx context.Context, id string) (*domain.Quiz, error)
	getQuizzesByIDsFn   func(ctx context.Context, ids []string) ([]domain.Quiz, error)
	getQuizzesByOwnerFn func(ctx context.Context, ownerID string) ([]domain.Quiz, error)
}

func (m *mockQuizRepo) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if m.createQuizFn != nil {
		return m.createQuizFn(ctx, quiz)
	}
	return nil
}

func (m *mockQuizRepo) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	if m.getQuizByIDFn != nil {
		return m.getQuizByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockQuizRepo) GetQuizzesByIDs(ctx context.Context, ids []string) ([]domain.Quiz, error) {
	if m.getQuizzesByIDsFn != nil {
		return m.getQuizzesByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockQuizRepo) GetQuizzesByOwner(ctx context.Context, ownerID string) ([]domain.Quiz, error) {
	if m.getQuizzesByOwnerFn != nil {
		return m.getQuizzesByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

type mockAttemptRepo struct {
	createAttemptFn           func(ctx context.Context, attempt *domain.QuizAttempt) error
	getAttemptsByUserFn       func(ctx context.Context, userID string) ([]domain.QuizAttempt, error)
	getRecentAttemptsByUserFn func(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error)
	getAttemptsByUserSinceFn  func(ctx context.Context, userID string, since time.Time) ([]domain.QuizAttempt, error)
}

func (m *mockAttemptRepo) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if m.createAttemptFn != nil {
		return m.createAttemptFn(ctx, attempt)
	}
	return nil
}

func (m *mockAttemptRepo) GetAttemptsByUser(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	if m.getAttemptsByUserFn != nil {
		return m.getAttemptsByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAttemptRepo) GetRecentAttemptsByUser(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	if m.getRecentAttemptsByUserFn != nil {
		return m.getRecentAttemptsByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockAttemptRepo) GetAttemptsByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.QuizAttempt, error) {
	if m.getAttemptsByUserSinceFn != nil {
		return m.getAttemptsByUserSinceFn(ctx, userID, since)
	}
	return nil, nil
}

type mockSetRepo struct {
	createSetFn            func(ctx context.Context, set *domain.FlashcardSet) error
	getSetsByOwnerFn       func(ctx context.Context, ownerID string) ([]domain.FlashcardSet, error)
	getRecentSetsByOwnerFn func(ctx context.Context, ownerID string, limit int) ([]domain.FlashcardSet, error)
	countSetsByOwnerFn     func(ctx context.Context, ownerID string) (int64, error)
}

func (m *mockSetRepo) CreateSet(ctx context.Context, set *domain.FlashcardSet) error {
	if m.createSetFn != nil {
		return m.createSetFn(ctx, set)
	}
	return nil
}

func (m *mockSetRepo) GetSetsByOwner(ctx context.Context, ownerID string) ([]domain.FlashcardSet, error) {
	if m.getSetsByOwnerFn != nil {
		return m.getSetsByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockSetRepo) GetRecentSetsByOwner(ctx context.Context, ownerID string, limit int) ([]domain.FlashcardSet, error) {
	if m.getRecentSetsByOwnerFn != nil {
		return m.getRecentSetsByOwnerFn(ctx, ownerID, limit)
	}
	return nil, nil
}

func (m *mockSetRepo) CountSetsByOwner(ctx context.Context, ownerID string) (int64, error) {
	if m.countSetsByOwnerFn != nil {
		return m.countSetsByOwnerFn(ctx, ownerID)
	}
	return 0, nil
}

type mockUserRepo struct {
	createUserFn               func(ctx context.Context, user *domain.User) error
	getUserByIDFn              func(ctx context.Context, id string) (*domain.User, error)
	getUserByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	getUserByEmailOrUsernameFn func(ctx context.Context, email, username string) (*domain.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *domain.User) error {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	if m.getUserByEmailOrUsernameFn != nil {
		return m.getUserByEmailOrUsernameFn(ctx, email, username)
	}
	return nil, nil
}

type mockTextCache struct {
	putFn func(ctx context.Context, fileID, text string) error
	getFn func(ctx context.Context, fileID string) (string, error)
}

func (m *mockTextCache) Put(ctx context.Context, fileID, text string) error {
	if m.putFn != nil {
		return m.putFn(ctx, fileID, text)
	}
	return nil
}

func (m *mockTextCache) Get(ctx context.Context, fileID string) (string, error) {
	if m.getFn != nil {
		return m.getFn(ctx, fileID)
	}
	return "", domain.ErrCacheMiss
}

type mockGenerator struct {
	generateFlashcardsFn func(ctx context.Context, documentText, request string) (string, error)
	generateQuizFn       func(ctx context.Context, documentText, request string) (string, error)
}

func (m *mockGenerator) GenerateFlashcards(ctx context.Context, documentText, request string) (string, error) {
	if m.generateFlashcardsFn != nil {
		return m.generateFlashcardsFn(ctx, documentText, request)
	}
	return "", nil
}

func (m *mockGenerator) GenerateQuiz(ctx context.Context, documentText, request string) (string, error) {
	if m.generateQuizFn != nil {
		return m.generateQuizFn(ctx, documentText, request)
	}
	return "", nil
}

type mockExtractor struct {
	extractTextFn func(data []byte) (string, error)
}

func (m *mockExtractor) ExtractText(data []byte) (string, error) {
	if m.extractTextFn != nil {
		return m.extractTextFn(data)
	}
	return "", nil
}
