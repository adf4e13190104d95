package note

import "notes-client/internal/model"

// Warning shown when the page had to be served from the fallback cache.
const (
	WarningLoadedFromLocal = "Error fetching notes from server. Loaded from local storage."
	WarningNoLocalCopy     = "Error fetching notes from server. No local copy available."
)

// EditBuffer is the note currently composed in the edit form.
type EditBuffer struct {
	Open bool
	Note model.Note
}

// ViewState is an immutable snapshot of the note store.
type ViewState struct {
	Notes       []model.Note // current page, or the whole fallback set
	Visible     []model.Note // Notes filtered by SearchText
	RecentNotes []model.Note
	SearchText  string
	PageIndex   int
	PageSize    int
	Editor      EditBuffer
	IsLoading   bool
	Stale       bool   // Notes came from the fallback cache
	Warning     string // user-visible warning, empty when none
	CanPrev     bool
	CanNext     bool
}
