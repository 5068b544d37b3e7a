package normalizer

import (
	"errors"
	"testing"

	"studydeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `[
	{"questionText": "What is the capital of France?", "options": ["Paris", "London", "Berlin", "Madrid"], "correctAnswerIndex": 0},
	{"questionText": "What is 2 + 2?", "options": ["3", "4", "5", "6"], "correctAnswerIndex": 1}
]`

const validFlashcardJSON = `[
	{"question": "What is photosynthesis?", "answer": "The process plants use to convert light into energy."},
	{"question": "Define osmosis.", "answer": "Movement of water across a semipermeable membrane."}
]`

func assertDomainCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected a DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestQuestions_PlainArray(t *testing.T) {
	questions, err := Questions(validQuizJSON)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is the capital of France?", questions[0].QuestionText)
	assert.Equal(t, []string{"Paris", "London", "Berlin", "Madrid"}, questions[0].Options)
	assert.Equal(t, 0, questions[0].CorrectAnswerIndex)
	assert.Equal(t, 1, questions[1].CorrectAnswerIndex)
}

func TestQuestions_MarkdownFenced(t *testing.T) {
	raw := "```json\n" + validQuizJSON + "\n```"
	questions, err := Questions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestions_BareFence(t *testing.T) {
	raw := "```\n" + validQuizJSON + "\n```"
	questions, err := Questions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestions_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is the quiz you asked for:\n" + validQuizJSON + "\nLet me know if you need more questions."
	questions, err := Questions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestions_ProseAroundFencedBlock(t *testing.T) {
	raw := "Here are your questions:\n```json\n" + validQuizJSON + "\n```\nEnjoy!"
	questions, err := Questions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestions_StrayBackticks(t *testing.T) {
	raw := "`" + validQuizJSON + "`"
	questions, err := Questions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestions_EmptyResponse(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t\n"} {
		_, err := Questions(raw)
		assertDomainCode(t, err, domain.CodeEmptyResponse)
	}
}

func TestQuestions_Refusal(t *testing.T) {
	_, err := Questions("Sorry, I cannot help.")
	assertDomainCode(t, err, domain.CodeMalformedOutput)
}

func TestQuestions_TruncatedArray(t *testing.T) {
	raw := `[{"questionText": "What is the capital of France?", "options": ["Paris", "Lon`
	_, err := Questions(raw)
	assertDomainCode(t, err, domain.CodeMalformedOutput)
}

func TestQuestions_ObjectNotArray(t *testing.T) {
	_, err := Questions(`{"questionText": "one question, not an array"}`)
	assertDomainCode(t, err, domain.CodeMalformedOutput)
}

func TestQuestions_EmptyArray(t *testing.T) {
	_, err := Questions("[]")
	assertDomainCode(t, err, domain.CodeSchemaViolation)
}

func TestQuestions_MalformedKeepsParseCause(t *testing.T) {
	_, err := Questions("not even close to json")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeMalformedOutput, domainErr.Code)
	assert.Error(t, domainErr.Cause)
}

func TestQuestions_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		detail string
	}{
		{
			name:   "missing questionText",
			raw:    `[{"options": ["a", "b", "c", "d"], "correctAnswerIndex": 0}]`,
			detail: "missing field \"questionText\"",
		},
		{
			name:   "blank questionText",
			raw:    `[{"questionText": "  ", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0}]`,
			detail: "\"questionText\" must be a non-empty string",
		},
		{
			name:   "missing options",
			raw:    `[{"questionText": "q", "correctAnswerIndex": 0}]`,
			detail: "missing field \"options\"",
		},
		{
			name:   "three options",
			raw:    `[{"questionText": "q", "options": ["a", "b", "c"], "correctAnswerIndex": 0}]`,
			detail: "\"options\" must contain exactly 4 entries",
		},
		{
			name:   "five options",
			raw:    `[{"questionText": "q", "options": ["a", "b", "c", "d", "e"], "correctAnswerIndex": 0}]`,
			detail: "\"options\" must contain exactly 4 entries",
		},
		{
			name:   "missing correctAnswerIndex",
			raw:    `[{"questionText": "q", "options": ["a", "b", "c", "d"]}]`,
			detail: "missing field \"correctAnswerIndex\"",
		},
		{
			name:   "index out of range",
			raw:    `[{"questionText": "q", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 4}]`,
			detail: "\"correctAnswerIndex\" must be between 0 and 3",
		},
		{
			name:   "negative index",
			raw:    `[{"questionText": "q", "options": ["a", "b", "c", "d"], "correctAnswerIndex": -1}]`,
			detail: "\"correctAnswerIndex\" must be between 0 and 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Questions(tt.raw)
			assertDomainCode(t, err, domain.CodeSchemaViolation)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestQuestions_ViolationReportsElementIndex(t *testing.T) {
	raw := `[
		{"questionText": "fine", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0},
		{"questionText": "broken", "options": ["a", "b"], "correctAnswerIndex": 0}
	]`
	_, err := Questions(raw)
	assertDomainCode(t, err, domain.CodeSchemaViolation)
	assert.Contains(t, err.Error(), "index 1")
}

func TestFlashcards_PlainArray(t *testing.T) {
	cards, err := Flashcards(validFlashcardJSON)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "What is photosynthesis?", cards[0].Question)
	assert.Equal(t, "Movement of water across a semipermeable membrane.", cards[1].Answer)
}

func TestFlashcards_FencedWithProse(t *testing.T) {
	raw := "Here you go:\n```json\n" + validFlashcardJSON + "\n```"
	cards, err := Flashcards(raw)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestFlashcards_TrimsWhitespace(t *testing.T) {
	cards, err := Flashcards(`[{"question": "  padded  ", "answer": " also padded "}]`)
	require.NoError(t, err)
	assert.Equal(t, "padded", cards[0].Question)
	assert.Equal(t, "also padded", cards[0].Answer)
}

func TestFlashcards_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		detail string
	}{
		{
			name:   "missing question",
			raw:    `[{"answer": "a"}]`,
			detail: "missing field \"question\"",
		},
		{
			name:   "missing answer",
			raw:    `[{"question": "q"}]`,
			detail: "missing field \"answer\"",
		},
		{
			name:   "blank answer",
			raw:    `[{"question": "q", "answer": "   "}]`,
			detail: "\"answer\" must be a non-empty string",
		},
		{
			name:   "element is not an object",
			raw:    `["just a string"]`,
			detail: "expected an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flashcards(tt.raw)
			assertDomainCode(t, err, domain.CodeSchemaViolation)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n" + validQuizJSON + "\n```",
		"Some prose first.\n" + validQuizJSON,
		validQuizJSON,
	}
	for _, raw := range inputs {
		once := clean(raw)
		twice := clean(once)
		assert.Equal(t, once, twice)
	}
}

func TestClean_PrefersClosingBracketOverBrace(t *testing.T) {
	raw := validFlashcardJSON + "\nNote: each element is an object {question, answer}"
	cards, err := Flashcards(raw)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}
