package domain

import "context"

// TextGenerator is the port for the external text-generation service. Both
// methods return the raw completion text; callers feed it to the normalizer.
// Implementations own timeout enforcement on the outbound call.
type TextGenerator interface {
	GenerateFlashcards(ctx context.Context, documentText, request string) (string, error)
	GenerateQuiz(ctx context.Context, documentText, request string) (string, error)
}

// TextExtractor extracts plain text from an uploaded document.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// TextCache stores extracted document text under an opaque file identifier.
// Entries expire after a configured TTL and concurrent writes to the same
// identifier are last-writer-wins.
type TextCache interface {
	Put(ctx context.Context, fileID, text string) error
	// Get returns ErrCacheMiss when the identifier is unknown or expired.
	Get(ctx context.Context, fileID string) (string, error)
}
