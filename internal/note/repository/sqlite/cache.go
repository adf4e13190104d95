package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
	pkgLog "notes-client/pkg/log"
)

// Cache is a FallbackCache persisted in a SQLite key/value table.
type Cache struct {
	db  *sql.DB
	key string
	l   pkgLog.Logger
}

var _ repository.FallbackCache = (*Cache)(nil)

// New opens (or creates) the database at dbPath. All reads and writes use key.
func New(dbPath, key string, l pkgLog.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	c := &Cache{db: db, key: key, l: l}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *Cache) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`
	_, err := c.db.Exec(schema)
	return err
}

// Load returns the last saved page. found is false when nothing was saved yet.
func (c *Cache) Load(ctx context.Context) ([]model.Note, bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, c.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", c.key, err)
	}

	var notes []model.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		c.l.Warnf(ctx, "sqlite cache: value under %q is not a notes array: %v", c.key, err)
		return nil, false, fmt.Errorf("%w: %w", repository.ErrCorruptFallback, err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, true, nil
}

// Save overwrites the stored page.
func (c *Cache) Save(ctx context.Context, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, c.key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", c.key, err)
	}
	return nil
}
