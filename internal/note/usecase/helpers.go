package usecase

import (
	"errors"
	"fmt"
	"strings"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

// snapshotLocked copies the state into a note.ViewState. uc.mu must be held.
func (uc *implUseCase) snapshotLocked() note.ViewState {
	st := uc.st
	return note.ViewState{
		Notes:       cloneNotes(st.notes),
		Visible:     filterByTitle(st.notes, st.searchText),
		RecentNotes: cloneNotes(st.recent),
		SearchText:  st.searchText,
		PageIndex:   st.pageIndex,
		PageSize:    uc.pageSize,
		Editor:      st.editor,
		IsLoading:   st.loading,
		Stale:       st.stale,
		Warning:     st.warning,
		CanPrev:     st.pageIndex > 0,
		// A short page means there is no more data. A full last page still
		// shows Next until the empty page after it has been fetched.
		CanNext: len(st.notes) >= uc.pageSize,
	}
}

func filterByTitle(notes []model.Note, text string) []model.Note {
	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if n.HasTitle(text) {
			out = append(out, n)
		}
	}
	return out
}

func cloneNotes(notes []model.Note) []model.Note {
	out := make([]model.Note, len(notes))
	copy(out, notes)
	return out
}

// validate rejects notes whose title or content is blank.
func validate(n model.Note) error {
	var missing []string
	if strings.TrimSpace(n.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(n.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must not be empty", note.ErrValidation, strings.Join(missing, " and "))
	}
	return nil
}

// wrapRemote tags a repository error with the domain sentinel, adding
// ErrNoteNotFound when the server answered 404.
func wrapRemote(sentinel, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %w: %w", sentinel, note.ErrNoteNotFound, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
