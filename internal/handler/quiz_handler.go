package handler

import (
	"io"

	"studydeck/internal/domain"
	"studydeck/internal/dto"
	"studydeck/internal/middleware"
	"studydeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests.
type QuizHandler struct {
	documentService service.DocumentService
	quizService     service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(documentService service.DocumentService, quizService service.QuizService) *QuizHandler {
	return &QuizHandler{
		documentService: documentService,
		quizService:     quizService,
	}
}

// Upload godoc
// @Summary Upload a PDF for quiz generation
// @Description Extracts and caches the document text, returning a file identifier
// @Tags quizzes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quizzes/upload [post]
func (h *QuizHandler) Upload(c *fiber.Ctx) error {
	fileID, err := readUpload(c, h.documentService)
	if err != nil {
		return err
	}
	return c.JSON(dto.UploadResponse{FileID: fileID})
}

// Generate godoc
// @Summary Generate a quiz from an uploaded document
// @Description Calls the generation service and persists the resulting quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "File identifier and prompt"
// @Success 201 {object} domain.Quiz
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quizzes/generate [post]
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
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

	quiz, err := h.quizService.GenerateQuiz(c.Context(), middleware.UserID(c), req.FileID, req.Prompt)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// List godoc
// @Summary List the caller's quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} domain.Quiz
// @Router /quizzes [get]
func (h *QuizHandler) List(c *fiber.Ctx) error {
	quizzes, err := h.quizService.ListQuizzes(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// Get godoc
// @Summary Get one of the caller's quizzes
// @Tags quizzes
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} domain.Quiz
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{quizId} [get]
func (h *QuizHandler) Get(c *fiber.Ctx) error {
	quiz, err := h.quizService.GetQuiz(c.Context(), middleware.UserID(c), c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// Submit godoc
// @Summary Submit answers for a quiz
// @Description Scores the submission and records an immutable attempt
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param request body dto.SubmitAttemptRequest true "Submitted answers"
// @Success 201 {object} domain.QuizAttempt
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{quizId}/submit [post]
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	answers := make([]domain.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = domain.Answer{
			QuestionIndex:       a.QuestionIndex,
			SelectedOptionIndex: a.SelectedOptionIndex,
		}
	}

	attempt, err := h.quizService.SubmitAttempt(c.Context(), c.Params("quizId"), middleware.UserID(c), answers)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(attempt)
}

// readUpload pulls the multipart file out of the request and hands it to the
// document service. Shared by the quiz and flashcard upload endpoints.
func readUpload(c *fiber.Ctx, documentService service.DocumentService) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", domain.NewInvalidInputError("No file uploaded.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", domain.NewInvalidInputError("Failed to read uploaded file.")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", domain.NewInvalidInputError("Failed to read uploaded file.")
	}

	return documentService.ProcessDocument(c.Context(), fileHeader.Filename, data)
}
