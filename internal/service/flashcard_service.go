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

// FlashcardService generates and lists flashcard sets.
type FlashcardService interface {
	GenerateFlashcards(ctx context.Context, ownerID, fileID, prompt string) (*domain.FlashcardSet, error)
	ListSets(ctx context.Context, ownerID string) ([]domain.FlashcardSet, error)
}

type flashcardServiceImpl struct {
	setRepo   domain.FlashcardSetRepository
	textCache domain.TextCache
	generator domain.TextGenerator
}

// NewFlashcardService creates a new instance of FlashcardService.
func NewFlashcardService(
	setRepo domain.FlashcardSetRepository,
	textCache domain.TextCache,
	generator domain.TextGenerator,
) FlashcardService {
	return &flashcardServiceImpl{
		setRepo:   setRepo,
		textCache: textCache,
		generator: generator,
	}
}

func (s *flashcardServiceImpl) GenerateFlashcards(ctx context.Context, ownerID, fileID, prompt string) (*domain.FlashcardSet, error) {
	documentText, err := s.textCache.Get(ctx, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError("File not processed or expired. Please upload the PDF again.")
		}
		return nil, domain.NewInternalError("Failed to read cached document text", err)
	}

	raw, err := s.generator.GenerateFlashcards(ctx, documentText, prompt)
	if err != nil {
		return nil, err
	}

	cards, err := normalizer.Flashcards(raw)
	if err != nil {
		logger.Get().Warn("Flashcard completion failed normalization",
			zap.Error(err),
			zap.String("file_id", fileID),
			zap.String("raw_preview", preview(raw, 200)),
		)
		return nil, err
	}

	set := &domain.FlashcardSet{
		ID:        util.NewULID(),
		OwnerID:   ownerID,
		Topic:     prompt,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.setRepo.CreateSet(ctx, set); err != nil {
		return nil, domain.NewPersistenceError("Failed to save flashcard set", err)
	}

	logger.Get().Info("Generated flashcard set",
		zap.String("set_id", set.ID),
		zap.String("owner_id", ownerID),
		zap.Int("card_count", len(cards)),
	)
	return set, nil
}

func (s *flashcardServiceImpl) ListSets(ctx context.Context, ownerID string) ([]domain.FlashcardSet, error) {
	sets, err := s.setRepo.GetSetsByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list flashcard sets", err)
	}
	return sets, nil
}
