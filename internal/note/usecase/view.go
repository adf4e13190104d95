package usecase

import (
	"context"
	"fmt"
	"strings"

	"notes-client/internal/model"
	"notes-client/internal/note"
)

// State returns a snapshot of the current view state.
func (uc *implUseCase) State() note.ViewState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// SetSearchText filters the loaded page by title. It never calls the network
// and never looks beyond the current page.
func (uc *implUseCase) SetSearchText(text string) note.ViewState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.st.searchText = text
	return uc.snapshotLocked()
}

// OpenEditor puts n in the edit buffer. A zero ID means a new note.
func (uc *implUseCase) OpenEditor(n model.Note) note.ViewState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.st.editor = note.EditBuffer{Open: true, Note: n}
	return uc.snapshotLocked()
}

// OpenEditorByID loads the note from the server and opens it for editing.
func (uc *implUseCase) OpenEditorByID(ctx context.Context, id int64) (note.ViewState, error) {
	n, err := uc.Get(ctx, id)
	if err != nil {
		return uc.State(), err
	}
	return uc.OpenEditor(n), nil
}

// CloseEditor discards the edit buffer.
func (uc *implUseCase) CloseEditor() note.ViewState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.st.editor = note.EditBuffer{}
	return uc.snapshotLocked()
}

// Get fetches a single note without touching view state.
func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Note, error) {
	if id <= 0 {
		return model.Note{}, fmt.Errorf("%w: id must be positive", note.ErrValidation)
	}
	n, err := uc.remote.GetNote(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Get id=%d: %v", id, err)
		return model.Note{}, wrapRemote(note.ErrFetch, err)
	}
	return n, nil
}

// Search asks the server for notes matching query in title or content.
// Unlike SetSearchText it covers all notes and leaves view state alone.
func (uc *implUseCase) Search(ctx context.Context, query string) ([]model.Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", note.ErrValidation)
	}
	notes, err := uc.remote.SearchNotes(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Search: %v", err)
		return nil, wrapRemote(note.ErrFetch, err)
	}
	return notes, nil
}
