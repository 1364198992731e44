package cache

import (
	"context"
	"errors"
	"time"

	"sitedocs/internal/model"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// KV is the minimal key/value surface the caches need.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// DocumentCache holds a snapshot of the whole document register.
// Entries are only refreshed by TTL expiry.
type DocumentCache interface {
	GetDocuments(ctx context.Context) ([]model.Document, error)
	SetDocuments(ctx context.Context, docs []model.Document) error
}

type nopDocumentCache struct{}

// NewNop returns a cache that never holds anything.
func NewNop() DocumentCache { return nopDocumentCache{} }

func (nopDocumentCache) GetDocuments(context.Context) ([]model.Document, error) { return nil, ErrMiss }

func (nopDocumentCache) SetDocuments(context.Context, []model.Document) error { return nil }
