package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sitedocs/internal/model"
)

const documentSnapshotKey = "documents:snapshot"

// SnapshotCache stores the document register as one JSON value.
type SnapshotCache struct {
	kv  KV
	ttl time.Duration
}

var _ DocumentCache = (*SnapshotCache)(nil)

func NewSnapshotCache(kv KV, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{kv: kv, ttl: ttl}
}

func (c *SnapshotCache) GetDocuments(ctx context.Context) ([]model.Document, error) {
	b, err := c.kv.Get(ctx, documentSnapshotKey)
	if err != nil {
		return nil, err
	}

	var docs []model.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return docs, nil
}

func (c *SnapshotCache) SetDocuments(ctx context.Context, docs []model.Document) error {
	b, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return c.kv.Set(ctx, documentSnapshotKey, b, c.ttl)
}
