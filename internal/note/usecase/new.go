package usecase

import (
	"sync"

	"notes-client/internal/note"
	"notes-client/internal/note/repository"
	pkgLog "notes-client/pkg/log"
)

// Defaults match the page layout of the notes page.
const (
	DefaultPageSize    = 6
	DefaultRecentLimit = 3
)

// implUseCase is the private implementation of note.UseCase.
// mu guards st and the sequence counters; it is never held across a call to
// the remote API.
type implUseCase struct {
	l           pkgLog.Logger
	remote      repository.RemoteRepository
	cache       repository.FallbackCache
	pageSize    int
	recentLimit int

	mu        sync.Mutex
	st        viewState
	pageSeq   uint64
	recentSeq uint64
}

var _ note.UseCase = (*implUseCase)(nil)

// New creates a new note store. Non-positive sizes fall back to the defaults.
func New(
	l pkgLog.Logger,
	remote repository.RemoteRepository,
	cache repository.FallbackCache,
	pageSize int,
	recentLimit int,
) *implUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &implUseCase{
		l:           l,
		remote:      remote,
		cache:       cache,
		pageSize:    pageSize,
		recentLimit: recentLimit,
	}
}
