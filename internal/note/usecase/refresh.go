package usecase

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

// Sync refreshes the current page and the recent notes concurrently.
// Only a page fetch failure is returned; recent failures are logged.
func (uc *implUseCase) Sync(ctx context.Context) (note.ViewState, error) {
	uc.mu.Lock()
	pageIndex := uc.st.pageIndex
	uc.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		_, err := uc.RefreshPage(ctx, pageIndex)
		return err
	})
	g.Go(func() error {
		uc.RefreshRecent(ctx)
		return nil
	})
	err := g.Wait()

	return uc.State(), err
}

// RefreshPage loads the page window for pageIndex. On a remote failure the
// fallback cache is shown instead and the returned error wraps note.ErrFetch.
// A response for a request that has since been superseded by a newer
// RefreshPage call is dropped without touching state or cache.
func (uc *implUseCase) RefreshPage(ctx context.Context, pageIndex int) (note.ViewState, error) {
	if pageIndex < 0 || pageIndex > math.MaxInt/uc.pageSize {
		return uc.State(), note.ErrInvalidPage
	}

	uc.mu.Lock()
	uc.pageSeq++
	seq := uc.pageSeq
	uc.st.pageIndex = pageIndex
	uc.st.loading = true
	uc.mu.Unlock()

	notes, err := uc.remote.ListNotes(ctx, repository.ListNotesOptions{
		Skip:  pageIndex * uc.pageSize,
		Limit: uc.pageSize,
	})
	if err != nil {
		return uc.recoverPage(ctx, seq, pageIndex, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq != uc.pageSeq {
		uc.l.Debugf(ctx, "note.usecase.RefreshPage: dropping page %d response, superseded", pageIndex)
		return uc.snapshotLocked(), nil
	}

	if notes == nil {
		notes = []model.Note{}
	}
	uc.st.notes = notes
	uc.st.loading = false
	uc.st.stale = false
	uc.st.warning = ""

	// The cache is written under mu so it always matches the committed page.
	if err := uc.cache.Save(context.WithoutCancel(ctx), notes); err != nil {
		uc.l.Warnf(ctx, "note.usecase.RefreshPage: cache.Save: %v", err)
	}

	return uc.snapshotLocked(), nil
}

// recoverPage replaces the page with the fallback cache after fetchErr.
func (uc *implUseCase) recoverPage(ctx context.Context, seq uint64, pageIndex int, fetchErr error) (note.ViewState, error) {
	uc.l.Errorf(ctx, "note.usecase.RefreshPage: page %d: %v", pageIndex, fetchErr)

	cached, found, err := uc.cache.Load(context.WithoutCancel(ctx))
	if err != nil {
		uc.l.Warnf(ctx, "note.usecase.RefreshPage: cache.Load: %v", err)
		found = false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq != uc.pageSeq {
		uc.l.Debugf(ctx, "note.usecase.RefreshPage: dropping page %d failure, superseded", pageIndex)
		return uc.snapshotLocked(), nil
	}

	uc.st.loading = false
	if found {
		uc.st.notes = cached
		uc.st.stale = true
		uc.st.warning = note.WarningLoadedFromLocal
	} else {
		uc.st.notes = []model.Note{}
		uc.st.stale = false
		uc.st.warning = note.WarningNoLocalCopy
	}

	return uc.snapshotLocked(), wrapRemote(note.ErrFetch, fetchErr)
}

// RefreshRecent reloads the recent-notes preview. It is best effort:
// failures are logged and the previous preview is kept.
func (uc *implUseCase) RefreshRecent(ctx context.Context) note.ViewState {
	uc.mu.Lock()
	uc.recentSeq++
	seq := uc.recentSeq
	uc.mu.Unlock()

	notes, err := uc.remote.ListRecent(ctx, uc.recentLimit)
	if err != nil {
		uc.l.Warnf(ctx, "note.usecase.RefreshRecent: %v", err)
		return uc.State()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq == uc.recentSeq {
		if notes == nil {
			notes = []model.Note{}
		}
		uc.st.recent = notes
	}
	return uc.snapshotLocked()
}

// NextPage moves one page forward when the current page is full.
func (uc *implUseCase) NextPage(ctx context.Context) (note.ViewState, error) {
	st := uc.State()
	if !st.CanNext {
		return st, note.ErrNoNextPage
	}
	return uc.RefreshPage(ctx, st.PageIndex+1)
}

// PrevPage moves one page back unless already on the first page.
func (uc *implUseCase) PrevPage(ctx context.Context) (note.ViewState, error) {
	st := uc.State()
	if !st.CanPrev {
		return st, note.ErrNoPreviousPage
	}
	return uc.RefreshPage(ctx, st.PageIndex-1)
}
