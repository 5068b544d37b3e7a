package service

import (
	"context"
	"time"

	"studydeck/internal/cache"
	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/logger"

	"go.uber.org/zap"
)

// textCacheService stores extracted document text behind the domain.Cache
// port. Entries expire after the configured TTL and stored text is capped at
// MaxTextBytes, so the cache stays bounded no matter what gets uploaded.
// Writes to the same file identifier are last-writer-wins.
type textCacheService struct {
	cache    domain.Cache
	ttl      time.Duration
	maxBytes int
}

// NewTextCacheService creates a TextCache backed by the shared cache adapter.
func NewTextCacheService(c domain.Cache, cfg config.CacheConfig) domain.TextCache {
	return &textCacheService{
		cache:    c,
		ttl:      cfg.TextTTL,
		maxBytes: cfg.MaxTextBytes,
	}
}

func (s *textCacheService) Put(ctx context.Context, fileID, text string) error {
	if s.maxBytes > 0 && len(text) > s.maxBytes {
		logger.Get().Warn("Extracted text exceeds cache entry bound, truncating",
			zap.String("file_id", fileID),
			zap.Int("text_bytes", len(text)),
			zap.Int("max_bytes", s.maxBytes),
		)
		text = text[:s.maxBytes]
	}
	return s.cache.Set(ctx, s.key(fileID), text, s.ttl)
}

func (s *textCacheService) Get(ctx context.Context, fileID string) (string, error) {
	return s.cache.Get(ctx, s.key(fileID))
}

func (s *textCacheService) key(fileID string) string {
	return cache.GenerateCacheKey("document", "text", fileID)
}
