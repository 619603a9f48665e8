package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"english_quest_backend/pkg/logger"

	"go.uber.org/zap"
)

// KVStore is the durable key to JSON document store behind every collection.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// collection keeps one JSON document in memory and writes it through on every change.
// Published values are never mutated in place: update works on a deep copy and swaps it in
// only after the store accepted it.
type collection[T any] struct {
	mu    sync.RWMutex
	store KVStore
	key   string
	data  T
}

func loadCollection[T any](ctx context.Context, store KVStore, key string, fallback func() T) (*collection[T], error) {
	c := &collection[T]{store: store, key: key}

	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		c.data = fallback()
		return c, nil
	}
	if err := json.Unmarshal([]byte(raw), &c.data); err != nil {
		logger.Log.Warn("Stored collection is unreadable, using defaults",
			zap.String("key", key), zap.Error(err))
		c.data = fallback()
	}
	return c, nil
}

func (c *collection[T]) read(fn func(data T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.data)
}

func (c *collection[T]) update(ctx context.Context, fn func(data *T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := deepCopy(c.data)
	if err != nil {
		return err
	}
	if err := fn(&next); err != nil {
		return err
	}
	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.data = next
	return nil
}

// replace overwrites the collection, used when resetting to defaults.
func (c *collection[T]) replace(ctx context.Context, data T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.persist(ctx, data); err != nil {
		return err
	}
	c.data = data
	return nil
}

func (c *collection[T]) persist(ctx context.Context, data T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}

func deepCopy[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
