// Package textgen calls the external text-generation service. Groq exposes an
// OpenAI-compatible chat completion API, so the langchaingo OpenAI client is
// pointed at Groq's endpoint.
package textgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const flashcardPromptFormat = `Based on the following document text, fulfill the user's request.
Document Text: %s
User Request: %s

Return ONLY a valid JSON array. No markdown, no code blocks, no explanations.
Format: [{"question": "What is X?", "answer": "X is Y."}]

Do NOT wrap your response in ` + "```json" + ` or any other formatting.`

const quizPromptFormat = `Based on the following document text, fulfill the user's request.

Document Text:
%s

User Request: %s

IMPORTANT INSTRUCTIONS:
1. Generate quiz questions based on the document content
2. Return ONLY a valid JSON array - no markdown, no code blocks, no explanations
3. Each object must have: "questionText", "options" (array of 4 strings), and "correctAnswerIndex" (0-3)
4. Ensure all questions are relevant to the document content

Response format example (respond with ONLY the JSON array):
[
  {
    "questionText": "What is the main topic discussed?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswerIndex": 0
  }
]`

// GroqGenerator implements domain.TextGenerator against the Groq API.
type GroqGenerator struct {
	llm llms.Model
	cfg config.GroqConfig
}

// NewGroqGenerator creates a new GroqGenerator from the Groq configuration.
func NewGroqGenerator(cfg config.GroqConfig) (*GroqGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	return &GroqGenerator{llm: llm, cfg: cfg}, nil
}

// GenerateFlashcards requests a flashcard JSON array for the given document
// excerpt and user request, returning the raw completion text.
func (g *GroqGenerator) GenerateFlashcards(ctx context.Context, documentText, request string) (string, error) {
	prompt := fmt.Sprintf(flashcardPromptFormat, g.truncate(documentText), request)
	return g.complete(ctx, prompt)
}

// GenerateQuiz requests a multiple-choice quiz JSON array for the given
// document excerpt and user request, returning the raw completion text.
func (g *GroqGenerator) GenerateQuiz(ctx context.Context, documentText, request string) (string, error) {
	prompt := fmt.Sprintf(quizPromptFormat, g.truncate(documentText), request)
	return g.complete(ctx, prompt)
}

func (g *GroqGenerator) complete(ctx context.Context, prompt string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(1.0),
		llms.WithMaxTokens(g.cfg.MaxCompletionTokens),
	)
	if err != nil {
		logger.Get().Error("Generation request failed",
			zap.Error(err),
			zap.String("model", g.cfg.Model),
			zap.Duration("elapsed", time.Since(start)),
		)
		return "", domain.NewUpstreamServiceError(err)
	}

	logger.Get().Debug("Generation request completed",
		zap.String("model", g.cfg.Model),
		zap.Int("completion_length", len(completion)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return completion, nil
}

// truncate bounds the document excerpt sent upstream to keep the prompt
// within the model's context window.
func (g *GroqGenerator) truncate(documentText string) string {
	max := g.cfg.MaxContextChars
	if max <= 0 || len(documentText) <= max {
		return documentText
	}
	return documentText[:max] + "...[truncated]"
}

var _ domain.TextGenerator = (*GroqGenerator)(nil)
