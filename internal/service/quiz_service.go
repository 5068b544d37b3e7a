package service

import (
	"context"
	"errors"
	"time"

	"studydeck/internal/domain"
	"studydeck/internal/logger"
	"studydeck/internal/normalizer"
	"studydeck/internal/util"

	"go.uber.org/zap"
)

// QuizService covers the quiz lifecycle: generation from cached document
// text, owner-scoped reads, and attempt scoring.
type QuizService interface {
	GenerateQuiz(ctx context.Context, ownerID, fileID, prompt string) (*domain.Quiz, error)
	GetQuiz(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context, ownerID string) ([]domain.Quiz, error)
	SubmitAttempt(ctx context.Context, quizID, userID string, answers []domain.Answer) (*domain.QuizAttempt, error)
}

type quizServiceImpl struct {
	quizRepo    domain.QuizRepository
	attemptRepo domain.QuizAttemptRepository
	textCache   domain.TextCache
	generator   domain.TextGenerator
}

// NewQuizService creates a new instance of QuizService.
func NewQuizService(
	quizRepo domain.QuizRepository,
	attemptRepo domain.QuizAttemptRepository,
	textCache domain.TextCache,
	generator domain.TextGenerator,
) QuizService {
	return &quizServiceImpl{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		textCache:   textCache,
		generator:   generator,
	}
}

// GenerateQuiz runs the full generation flow: cached text lookup, upstream
// completion, normalization, persistence. A normalizer failure is terminal
// for this attempt; the text stays cached so the client can retry without
// re-uploading.
func (s *quizServiceImpl) GenerateQuiz(ctx context.Context, ownerID, fileID, prompt string) (*domain.Quiz, error) {
	documentText, err := s.textCache.Get(ctx, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError("File not processed or expired. Please upload the PDF again.")
		}
		return nil, domain.NewInternalError("Failed to read cached document text", err)
	}

	raw, err := s.generator.GenerateQuiz(ctx, documentText, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := normalizer.Questions(raw)
	if err != nil {
		logger.Get().Warn("Quiz completion failed normalization",
			zap.Error(err),
			zap.String("file_id", fileID),
			zap.String("raw_preview", preview(raw, 200)),
		)
		return nil, err
	}

	quiz := &domain.Quiz{
		ID:        util.NewULID(),
		OwnerID:   ownerID,
		Topic:     prompt,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewPersistenceError("Failed to save quiz", err)
	}

	logger.Get().Info("Generated quiz",
		zap.String("quiz_id", quiz.ID),
		zap.String("owner_id", ownerID),
		zap.Int("question_count", len(questions)),
	)
	return quiz, nil
}

// GetQuiz returns a quiz only to its owner. A quiz owned by someone else is
// reported as not found so quiz identifiers do not leak across accounts.
func (s *quizServiceImpl) GetQuiz(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil || quiz.OwnerID != ownerID {
		return nil, domain.NewNotFoundError("Quiz not found")
	}
	return quiz, nil
}

func (s *quizServiceImpl) ListQuizzes(ctx context.Context, ownerID string) ([]domain.Quiz, error) {
	quizzes, err := s.quizRepo.GetQuizzesByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return quizzes, nil
}

// SubmitAttempt scores a submission against the quiz's answer key and
// persists the result as an immutable attempt record.
//
// totalQuestions is fixed by the quiz, not the submission: answering fewer
// questions than exist is allowed and simply scores lower. An unmatched
// question index counts as unanswered, which is incorrect.
func (s *quizServiceImpl) SubmitAttempt(ctx context.Context, quizID, userID string, answers []domain.Answer) (*domain.QuizAttempt, error) {
	if len(answers) == 0 {
		return nil, domain.NewInvalidInputError("Answers array is required")
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil || quiz.OwnerID != userID {
		return nil, domain.NewNotFoundError("Quiz not found")
	}

	totalQuestions := len(quiz.Questions)
	if len(answers) != totalQuestions {
		logger.Get().Warn("Submission answer count differs from quiz question count",
			zap.String("quiz_id", quizID),
			zap.Int("submitted", len(answers)),
			zap.Int("total_questions", totalQuestions),
		)
	}

	score := 0
	for i, question := range quiz.Questions {
		for _, answer := range answers {
			if answer.QuestionIndex != i {
				continue
			}
			if answer.SelectedOptionIndex == question.CorrectAnswerIndex {
				score++
			}
			break
		}
	}

	attempt := &domain.QuizAttempt{
		ID:             util.NewULID(),
		QuizID:         quizID,
		UserID:         userID,
		Answers:        answers,
		Score:          score,
		TotalQuestions: totalQuestions,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewPersistenceError("Failed to save quiz attempt", err)
	}

	logger.Get().Info("Recorded quiz attempt",
		zap.String("attempt_id", attempt.ID),
		zap.String("quiz_id", quizID),
		zap.Int("score", score),
		zap.Int("total_questions", totalQuestions),
	)
	return attempt, nil
}

// preview bounds a string for log output.
func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
