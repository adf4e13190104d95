package memory

import (
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
)

// Cache is a process-local FallbackCache. Values are stored as JSON so that
// callers never share slices with the cache.
type Cache struct {
	entries *lru.Cache[string, []byte]
	key     string
}

var _ repository.FallbackCache = (*Cache)(nil)

// New creates a Cache storing the page under key. Only that one key is ever
// written, so the LRU holds a single entry.
func New(key string) *Cache {
	entries, _ := lru.New[string, []byte](1) // errors only for size <= 0
	return &Cache{entries: entries, key: key}
}

func (c *Cache) Load(ctx context.Context) ([]model.Note, bool, error) {
	raw, ok := c.entries.Get(c.key)
	if !ok {
		return nil, false, nil
	}
	var notes []model.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, false, fmt.Errorf("%w: %w", repository.ErrCorruptFallback, err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, true, nil
}

func (c *Cache) Save(ctx context.Context, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	c.entries.Add(c.key, raw)
	return nil
}
