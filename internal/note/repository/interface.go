package repository

import (
	"context"

	"notes-client/internal/model"
)

// RemoteRepository is the data access interface for the remote notes API.
type RemoteRepository interface {
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, error)
	ListRecent(ctx context.Context, limit int) ([]model.Note, error)
	GetNote(ctx context.Context, id int64) (model.Note, error)
	SearchNotes(ctx context.Context, query string) ([]model.Note, error)
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (model.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// FallbackCache persists the last successfully fetched page under a fixed key.
// Save overwrites; Load reports found=false when nothing was ever saved.
type FallbackCache interface {
	Load(ctx context.Context) (notes []model.Note, found bool, err error)
	Save(ctx context.Context, notes []model.Note) error
}
