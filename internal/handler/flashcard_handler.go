package handler

import (
	"studydeck/internal/domain"
	"studydeck/internal/dto"
	"studydeck/internal/middleware"
	"studydeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FlashcardHandler handles flashcard-related HTTP requests.
type FlashcardHandler struct {
	documentService  service.DocumentService
	flashcardService service.FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler instance
func NewFlashcardHandler(documentService service.DocumentService, flashcardService service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{
		documentService:  documentService,
		flashcardService: flashcardService,
	}
}

// Upload godoc
// @Summary Upload a PDF for flashcard generation
// @Tags flashcards
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /flashcards/upload [post]
func (h *FlashcardHandler) Upload(c *fiber.Ctx) error {
	fileID, err := readUpload(c, h.documentService)
	if err != nil {
		return err
	}
	return c.JSON(dto.UploadResponse{FileID: fileID})
}

// Generate godoc
// @Summary Generate a flashcard set from an uploaded document
// @Tags flashcards
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "File identifier and prompt"
// @Success 201 {object} domain.FlashcardSet
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /flashcards/generate [post]
func (h *FlashcardHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.FileID == "" {
		return domain.NewInvalidInputError("fileId is required.")
	}
	if req.Prompt == "" {
		return domain.NewInvalidInputError("prompt is required.")
	}

	set, err := h.flashcardService.GenerateFlashcards(c.Context(), middleware.UserID(c), req.FileID, req.Prompt)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(set)
}

// List godoc
// @Summary List the caller's flashcard sets
// @Tags flashcards
// @Produce json
// @Success 200 {array} domain.FlashcardSet
// @Router /flashcards [get]
func (h *FlashcardHandler) List(c *fiber.Ctx) error {
	sets, err := h.flashcardService.ListSets(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(sets)
}
