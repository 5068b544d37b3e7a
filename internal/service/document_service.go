package service

import (
	"context"

	"studydeck/internal/domain"
	"studydeck/internal/logger"

	"go.uber.org/zap"
)

// DocumentService turns an uploaded PDF into cached text addressable by an
// opaque file identifier.
type DocumentService interface {
	// ProcessDocument extracts text from the upload, caches it, and returns
	// the file identifier to use in later generation requests.
	ProcessDocument(ctx context.Context, filename string, data []byte) (string, error)
}

type documentServiceImpl struct {
	extractor domain.TextExtractor
	textCache domain.TextCache
}

// NewDocumentService creates a new instance of DocumentService.
func NewDocumentService(extractor domain.TextExtractor, textCache domain.TextCache) DocumentService {
	return &documentServiceImpl{
		extractor: extractor,
		textCache: textCache,
	}
}

func (s *documentServiceImpl) ProcessDocument(ctx context.Context, filename string, data []byte) (string, error) {
	text, err := s.extractor.ExtractText(data)
	if err != nil {
		logger.Get().Warn("Failed to extract text from upload",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return "", domain.NewError(domain.CodeInvalidInput, "Failed to process PDF", err)
	}

	// The identifier is derived from the uploaded filename. Re-uploading
	// under the same name overwrites the cached text; the last writer wins.
	fileID := filename
	if err := s.textCache.Put(ctx, fileID, text); err != nil {
		return "", domain.NewInternalError("Failed to cache extracted text", err)
	}

	logger.Get().Info("Processed document upload",
		zap.String("file_id", fileID),
		zap.Int("text_length", len(text)),
	)
	return fileID, nil
}
