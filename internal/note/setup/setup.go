// Package setup builds the note store from configuration. The API server and
// the CLI share it.
package setup

import (
	"fmt"

	"golang.org/x/time/rate"

	"notes-client/config"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
	"notes-client/internal/note/repository/memory"
	"notes-client/internal/note/repository/notesapi"
	"notes-client/internal/note/repository/sqlite"
	"notes-client/internal/note/usecase"
	"notes-client/pkg/log"
)

// Store is a note store plus the resources it holds open.
type Store struct {
	UseCase note.UseCase
	close   func() error
}

// Close releases the fallback cache.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewStore wires the remote repository, the fallback cache and the use case.
func NewStore(cfg *config.Config, l log.Logger) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	remote := NewRemote(cfg.NotesAPI, l)

	cache, closeFn, err := NewFallback(cfg.Fallback, l)
	if err != nil {
		return nil, err
	}

	return &Store{
		UseCase: usecase.New(l, remote, cache, cfg.Store.PageSize, cfg.Store.RecentLimit),
		close:   closeFn,
	}, nil
}

// NewRemote builds the notes API repository. A non-positive rate disables
// outbound throttling.
func NewRemote(cfg config.NotesAPIConfig, l log.Logger) repository.RemoteRepository {
	var limiter *rate.Limiter
	if cfg.RateLimitPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), max(cfg.RateBurst, 1))
	}
	return notesapi.New(notesapi.NewClient(cfg.URL, cfg.Timeout, limiter), l)
}

// NewFallback opens the fallback cache selected by cfg.Driver.
func NewFallback(cfg config.FallbackConfig, l log.Logger) (repository.FallbackCache, func() error, error) {
	switch cfg.Driver {
	case config.FallbackDriverSQLite:
		c, err := sqlite.New(cfg.Path, cfg.Key, l)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite fallback %s: %w", cfg.Path, err)
		}
		return c, c.Close, nil
	case config.FallbackDriverMemory:
		return memory.New(cfg.Key), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown fallback driver %q", cfg.Driver)
	}
}
