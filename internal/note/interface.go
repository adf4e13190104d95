package note

import (
	"context"

	"notes-client/internal/model"
)

// UseCase is the note store: it owns the view state of the notes page and
// keeps it in sync with the remote API and the local fallback cache.
// Every mutating operation returns the resulting view state.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Sync refreshes the current page and the recent notes together.
	Sync(ctx context.Context) (ViewState, error)

	// Pagination
	RefreshPage(ctx context.Context, pageIndex int) (ViewState, error)
	NextPage(ctx context.Context) (ViewState, error)
	PrevPage(ctx context.Context) (ViewState, error)

	// RefreshRecent is best effort: failures are logged, never returned.
	RefreshRecent(ctx context.Context) ViewState

	// Mutations
	// Save returns the note as stored by the server.
	Save(ctx context.Context, n model.Note) (model.Note, ViewState, error)
	SaveEditor(ctx context.Context) (ViewState, error)
	Remove(ctx context.Context, id int64) (ViewState, error)

	// Local view state
	SetSearchText(text string) ViewState
	OpenEditor(n model.Note) ViewState
	OpenEditorByID(ctx context.Context, id int64) (ViewState, error)
	CloseEditor() ViewState
	State() ViewState

	// Remote lookups that do not touch view state
	Get(ctx context.Context, id int64) (model.Note, error)
	Search(ctx context.Context, query string) ([]model.Note, error)
}
