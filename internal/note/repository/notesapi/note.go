package notesapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
	pkgLog "notes-client/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new remote notes repository.
func New(client *Client, l pkgLog.Logger) repository.RemoteRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListNotes(ctx context.Context, opt repository.ListNotesOptions) ([]model.Note, error) {
	notes, err := r.client.ListNotes(ctx, opt.Skip, opt.Limit)
	if err != nil {
		r.l.Warnf(ctx, "notesapi repository: list skip=%d limit=%d: %v", opt.Skip, opt.Limit, err)
		return nil, wrap(repository.ErrFailedToList, err)
	}
	return toModels(notes), nil
}

func (r *implRepository) ListRecent(ctx context.Context, limit int) ([]model.Note, error) {
	notes, err := r.client.ListRecent(ctx, limit)
	if err != nil {
		return nil, wrap(repository.ErrFailedToList, err)
	}
	return toModels(notes), nil
}

func (r *implRepository) GetNote(ctx context.Context, id int64) (model.Note, error) {
	n, err := r.client.GetNote(ctx, id)
	if err != nil {
		return model.Note{}, wrap(repository.ErrFailedToGet, err)
	}
	return toModel(*n), nil
}

func (r *implRepository) SearchNotes(ctx context.Context, query string) ([]model.Note, error) {
	notes, err := r.client.SearchNotes(ctx, query)
	if err != nil {
		return nil, wrap(repository.ErrFailedToList, err)
	}
	return toModels(notes), nil
}

func (r *implRepository) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (model.Note, error) {
	n, err := r.client.CreateNote(ctx, CreateNoteRequest{
		Title:   opt.Title,
		Content: opt.Content,
	})
	if err != nil {
		r.l.Errorf(ctx, "notesapi repository: failed to create note: %v", err)
		return model.Note{}, wrap(repository.ErrFailedToInsert, err)
	}
	return toModel(*n), nil
}

func (r *implRepository) UpdateNote(ctx context.Context, opt repository.UpdateNoteOptions) (model.Note, error) {
	n, err := r.client.UpdateNote(ctx, opt.ID, UpdateNoteRequest{
		ID:      opt.ID,
		Title:   opt.Title,
		Content: opt.Content,
	})
	if err != nil {
		r.l.Errorf(ctx, "notesapi repository: failed to update note %d: %v", opt.ID, err)
		return model.Note{}, wrap(repository.ErrFailedToUpdate, err)
	}
	return toModel(*n), nil
}

func (r *implRepository) DeleteNote(ctx context.Context, id int64) error {
	if err := r.client.DeleteNote(ctx, id); err != nil {
		r.l.Errorf(ctx, "notesapi repository: failed to delete note %d: %v", id, err)
		return wrap(repository.ErrFailedToDelete, err)
	}
	return nil
}

// wrap tags err with the repository sentinel, and with ErrNotFound on a 404.
func wrap(sentinel, err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w: %w", sentinel, repository.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func toModel(n Note) model.Note {
	return model.Note{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
	}
}

func toModels(notes []Note) []model.Note {
	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, toModel(n))
	}
	return out
}
