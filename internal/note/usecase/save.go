package usecase

import (
	"context"
	"fmt"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

// Save creates n, or updates it when it already has an ID. Blank title or
// content fails with note.ErrValidation before any network call. Nothing is
// applied to the view optimistically: on success the page and the recent
// notes are re-fetched and the editor is cleared; on failure the state is
// left untouched. The returned note is the server's copy.
func (uc *implUseCase) Save(ctx context.Context, n model.Note) (model.Note, note.ViewState, error) {
	if err := validate(n); err != nil {
		return model.Note{}, uc.State(), err
	}

	var (
		saved model.Note
		err   error
	)
	if n.IsNew() {
		saved, err = uc.remote.CreateNote(ctx, repository.CreateNoteOptions{
			Title:   n.Title,
			Content: n.Content,
		})
	} else {
		saved, err = uc.remote.UpdateNote(ctx, repository.UpdateNoteOptions{
			ID:      n.ID,
			Title:   n.Title,
			Content: n.Content,
		})
	}
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Save id=%d: %v", n.ID, err)
		return model.Note{}, uc.State(), wrapRemote(note.ErrSave, err)
	}

	uc.resync(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.st.editor = note.EditBuffer{}
	return saved, uc.snapshotLocked(), nil
}

// SaveEditor saves the note currently held in the edit buffer.
func (uc *implUseCase) SaveEditor(ctx context.Context) (note.ViewState, error) {
	uc.mu.Lock()
	editor := uc.st.editor
	uc.mu.Unlock()

	if !editor.Open {
		return uc.State(), fmt.Errorf("%w: editor is not open", note.ErrValidation)
	}
	_, st, err := uc.Save(ctx, editor.Note)
	return st, err
}

// Remove deletes the note with the given ID. The note disappears from the
// view only through the re-fetch that follows a successful delete.
func (uc *implUseCase) Remove(ctx context.Context, id int64) (note.ViewState, error) {
	if id <= 0 {
		return uc.State(), fmt.Errorf("%w: id must be positive", note.ErrValidation)
	}

	if err := uc.remote.DeleteNote(ctx, id); err != nil {
		uc.l.Errorf(ctx, "note.usecase.Remove id=%d: %v", id, err)
		return uc.State(), wrapRemote(note.ErrDelete, err)
	}

	uc.resync(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.st.editor.Open && uc.st.editor.Note.ID == id {
		uc.st.editor = note.EditBuffer{}
	}
	return uc.snapshotLocked(), nil
}

// resync re-fetches after a confirmed mutation. A page fetch failure has
// already been turned into a fallback view and a warning, so it is only logged.
func (uc *implUseCase) resync(ctx context.Context) {
	if _, err := uc.Sync(ctx); err != nil {
		uc.l.Warnf(ctx, "note.usecase.resync: %v", err)
	}
}
