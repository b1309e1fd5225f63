package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"docflow/internal/model"
)

// GenerationCache holds the per-document generation history in redis.
// A short-lived dirty marker set on every new generation keeps a stale
// list from being re-cached while the write is still settling.
type GenerationCache struct {
	client         *redisv9.Client
	listTTL        time.Duration
	dirtyMarkerTTL time.Duration
}

func NewGenerationCache(client *redisv9.Client, listTTL, dirtyMarkerTTL time.Duration) *GenerationCache {
	if listTTL <= 0 {
		listTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &GenerationCache{
		client:         client,
		listTTL:        listTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *GenerationCache) GetList(ctx context.Context, documentID uint) ([]model.GeneratedDocument, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(documentID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get generation list failed: %w", err)
	}

	var gens []model.GeneratedDocument
	if err := json.Unmarshal([]byte(raw), &gens); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached generation list failed: %w", err)
	}
	return gens, true, nil
}

func (c *GenerationCache) SetList(ctx context.Context, documentID uint, gens []model.GeneratedDocument) error {
	payload, err := json.Marshal(gens)
	if err != nil {
		return fmt.Errorf("marshal generation list failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(documentID), payload, c.listTTL).Err(); err != nil {
		return fmt.Errorf("redis set generation list failed: %w", err)
	}
	return nil
}

func (c *GenerationCache) DeleteList(ctx context.Context, documentID uint) error {
	if err := c.client.Del(ctx, c.listKey(documentID)).Err(); err != nil {
		return fmt.Errorf("redis delete generation list failed: %w", err)
	}
	return nil
}

func (c *GenerationCache) MarkDirty(ctx context.Context, documentID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(documentID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *GenerationCache) IsDirty(ctx context.Context, documentID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(documentID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *GenerationCache) listKey(documentID uint) string {
	return fmt.Sprintf("doc:generated:%d", documentID)
}

func (c *GenerationCache) dirtyKey(documentID uint) string {
	return fmt.Sprintf("doc:generated:dirty:%d", documentID)
}
