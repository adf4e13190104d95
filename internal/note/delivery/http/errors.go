package http

import (
	"errors"
	"net/http"

	"notes-client/internal/note"
	pkgErrors "notes-client/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNoteNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, note.ErrNoteNotFound.Error())
	case errors.Is(err, note.ErrValidation),
		errors.Is(err, note.ErrInvalidPage),
		errors.Is(err, note.ErrNoNextPage),
		errors.Is(err, note.ErrNoPreviousPage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, note.ErrSave):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, note.ErrSave.Error())
	case errors.Is(err, note.ErrDelete):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, note.ErrDelete.Error())
	case errors.Is(err, note.ErrFetch):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, note.ErrFetch.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// isFetchOnly reports whether err is a page fetch failure that the store has
// already recovered from with the fallback cache.
func isFetchOnly(err error) bool {
	return errors.Is(err, note.ErrFetch) && !errors.Is(err, note.ErrNoteNotFound)
}
