package cache

import (
	"context"
	"encoding/json"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryItem struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is an in-process Store backed by an LRU cache. Used by tests
// and as a fallback when no Redis address is configured. Values round-trip
// through JSON so behavior matches the Redis store.
type MemoryStore struct {
	lru *lru.Cache[string, memoryItem]
}

func NewMemoryStore(size int) (*MemoryStore, error) {
	l, err := lru.New[string, memoryItem](size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{lru: l}, nil
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) error {
	item, ok := s.lru.Get(key)
	if !ok {
		return ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		s.lru.Remove(key)
		return ErrCacheMiss
	}
	return json.Unmarshal(item.data, dest)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	item := memoryItem{data: data}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}
	s.lru.Add(key, item)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		s.lru.Remove(key)
	}
	return nil
}
