// Package normalizer recovers structured records from raw LLM completions.
// Completions are unreliable in formatting: markdown fences, leading prose
// like "Here is your JSON:", trailing commentary, occasional truncation. The
// cleanup pipeline is a best-effort, order-sensitive sequence of escape
// hatches applied before a strict JSON decode.
package normalizer

import (
	"encoding/json"
	"regexp"
	"strings"

	"studydeck/internal/domain"
)

var (
	fenceJSONPrefix = regexp.MustCompile("(?i)^```json\\s*\\n?")
	fencePrefix     = regexp.MustCompile("^```\\s*\\n?")
	fenceSuffix     = regexp.MustCompile("\\n?\\s*```$")
	backtickEnds    = regexp.MustCompile("^`+|`+$")

	// Greedy: first '[' through the last ']' in the string.
	arrayPattern = regexp.MustCompile(`\[[\s\S]*\]`)
)

// Flashcards extracts a validated flashcard array from a raw completion.
func Flashcards(raw string) ([]domain.Flashcard, error) {
	elems, err := parseArray(raw)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.Flashcard, 0, len(elems))
	for i, elem := range elems {
		var payload struct {
			Question *string `json:"question"`
			Answer   *string `json:"answer"`
		}
		if err := json.Unmarshal(elem, &payload); err != nil {
			return nil, domain.NewSchemaViolationError(i, "expected an object with \"question\" and \"answer\" strings")
		}
		if payload.Question == nil {
			return nil, domain.NewSchemaViolationError(i, "missing field \"question\"")
		}
		if payload.Answer == nil {
			return nil, domain.NewSchemaViolationError(i, "missing field \"answer\"")
		}
		question := strings.TrimSpace(*payload.Question)
		answer := strings.TrimSpace(*payload.Answer)
		if question == "" {
			return nil, domain.NewSchemaViolationError(i, "\"question\" must be a non-empty string")
		}
		if answer == "" {
			return nil, domain.NewSchemaViolationError(i, "\"answer\" must be a non-empty string")
		}
		cards = append(cards, domain.Flashcard{Question: question, Answer: answer})
	}
	return cards, nil
}

// Questions extracts a validated multiple-choice question array from a raw
// completion. Each question must carry exactly four options and a correct
// answer index that points into them.
func Questions(raw string) ([]domain.Question, error) {
	elems, err := parseArray(raw)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(elems))
	for i, elem := range elems {
		var payload struct {
			QuestionText       *string  `json:"questionText"`
			Options            []string `json:"options"`
			CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
		}
		if err := json.Unmarshal(elem, &payload); err != nil {
			return nil, domain.NewSchemaViolationError(i, "expected an object with \"questionText\", \"options\" and \"correctAnswerIndex\"")
		}
		if payload.QuestionText == nil {
			return nil, domain.NewSchemaViolationError(i, "missing field \"questionText\"")
		}
		text := strings.TrimSpace(*payload.QuestionText)
		if text == "" {
			return nil, domain.NewSchemaViolationError(i, "\"questionText\" must be a non-empty string")
		}
		if payload.Options == nil {
			return nil, domain.NewSchemaViolationError(i, "missing field \"options\"")
		}
		if len(payload.Options) != 4 {
			return nil, domain.NewSchemaViolationError(i, "\"options\" must contain exactly 4 entries")
		}
		if payload.CorrectAnswerIndex == nil {
			return nil, domain.NewSchemaViolationError(i, "missing field \"correctAnswerIndex\"")
		}
		if *payload.CorrectAnswerIndex < 0 || *payload.CorrectAnswerIndex > 3 {
			return nil, domain.NewSchemaViolationError(i, "\"correctAnswerIndex\" must be between 0 and 3")
		}
		questions = append(questions, domain.Question{
			QuestionText:       text,
			Options:            payload.Options,
			CorrectAnswerIndex: *payload.CorrectAnswerIndex,
		})
	}
	return questions, nil
}

// parseArray runs the cleanup pipeline and returns the decoded JSON array
// elements, failing with EmptyResponse, MalformedOutput or SchemaViolation.
func parseArray(raw string) ([]json.RawMessage, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewEmptyResponseError()
	}

	cleaned := clean(raw)

	var elems []json.RawMessage
	strictErr := json.Unmarshal([]byte(cleaned), &elems)
	if strictErr != nil {
		// Last resort: pull the first balanced-looking [...] substring out
		// of the cleaned text and try again.
		recovered := false
		if match := arrayPattern.FindString(cleaned); match != "" {
			if err := json.Unmarshal([]byte(match), &elems); err == nil {
				recovered = true
			}
		}
		if !recovered {
			return nil, domain.NewMalformedOutputError(strictErr)
		}
	}

	if len(elems) == 0 {
		return nil, domain.NewError(domain.CodeSchemaViolation, "Generated result must be a non-empty array", nil)
	}
	return elems, nil
}

// clean strips the decoration LLMs wrap around JSON payloads. Each fence
// pattern is removed at most once from each end, then everything outside the
// outermost JSON delimiters is discarded.
func clean(raw string) string {
	s := strings.TrimSpace(raw)

	s = fenceJSONPrefix.ReplaceAllString(s, "")
	s = fenceSuffix.ReplaceAllString(s, "")
	s = fencePrefix.ReplaceAllString(s, "")
	s = fenceSuffix.ReplaceAllString(s, "")
	s = backtickEnds.ReplaceAllString(s, "")

	// Drop leading prose before the first JSON delimiter.
	if start := strings.IndexAny(s, "[{"); start > 0 {
		s = s[start:]
	}

	// Drop trailing commentary after the last closing delimiter, preferring
	// ']' so a trailing '}' in prose does not clip the array.
	if end := strings.LastIndex(s, "]"); end != -1 {
		s = s[:end+1]
	} else if end := strings.LastIndex(s, "}"); end != -1 {
		s = s[:end+1]
	}

	return strings.TrimSpace(s)
}
