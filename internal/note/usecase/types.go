package usecase

import (
	"notes-client/internal/model"
	"notes-client/internal/note"
)

// viewState is the mutable state behind note.ViewState.
type viewState struct {
	notes      []model.Note
	recent     []model.Note
	searchText string
	pageIndex  int
	editor     note.EditBuffer
	loading    bool
	stale      bool
	warning    string
}
