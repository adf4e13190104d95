package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrFetch          = errors.New("failed to fetch notes")
	ErrValidation     = errors.New("invalid note")
	ErrSave           = errors.New("failed to save note")
	ErrDelete         = errors.New("failed to delete note")
	ErrNoteNotFound   = errors.New("note not found")
	ErrInvalidPage    = errors.New("page index out of range")
	ErrNoNextPage     = errors.New("already on the last page")
	ErrNoPreviousPage = errors.New("already on the first page")
)
