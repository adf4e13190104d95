package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"notes-client/internal/note"
	"notes-client/pkg/response"
)

// State godoc
// @Summary     Get view state
// @Description Returns the current notes page, recent notes, search filter and editor buffer without calling the remote API.
// @Tags        Notes
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/notes/state [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, h.newStateResp(h.uc.State()))
}

// Sync godoc
// @Summary     Synchronize with the notes API
// @Description Refreshes the current page and the recent notes. When the page fetch fails the cached copy is served with a warning.
// @Tags        Notes
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Sync(ctx)
	h.respondPage(ctx, c, "uc.Sync", st, err)
}

// Page godoc
// @Summary     Load a page
// @Description Loads the page at the given zero-based index.
// @Tags        Notes
// @Produce     json
// @Param       page path int true "Page index"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/pages/{page} [GET]
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	uri, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st, err := h.uc.RefreshPage(ctx, uri.Page)
	h.respondPage(ctx, c, "uc.RefreshPage", st, err)
}

// NextPage godoc
// @Summary     Go to the next page
// @Tags        Notes
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "No next page"
// @Router      /api/v1/notes/pages/next [POST]
func (h *handler) NextPage(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.NextPage(ctx)
	h.respondPage(ctx, c, "uc.NextPage", st, err)
}

// PrevPage godoc
// @Summary     Go to the previous page
// @Tags        Notes
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "No previous page"
// @Router      /api/v1/notes/pages/prev [POST]
func (h *handler) PrevPage(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.PrevPage(ctx)
	h.respondPage(ctx, c, "uc.PrevPage", st, err)
}

// RefreshRecent godoc
// @Summary     Refresh recent notes
// @Description Reloads the recent notes preview. Failures keep the previous preview.
// @Tags        Notes
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/notes/recent [POST]
func (h *handler) RefreshRecent(c *gin.Context) {
	response.OK(c, h.newStateResp(h.uc.RefreshRecent(c.Request.Context())))
}

// SetSearch godoc
// @Summary     Filter the loaded page
// @Description Filters the loaded page by title, case-insensitively. Does not call the remote API.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search text"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/search [PUT]
func (h *handler) SetSearch(c *gin.Context) {
	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newStateResp(h.uc.SetSearchText(req.Text)))
}

// SearchRemote godoc
// @Summary     Search all notes
// @Description Runs a server-side search across every note. The view state is left untouched.
// @Tags        Notes
// @Produce     json
// @Param       query query string true "Search query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Notes API unavailable"
// @Router      /api/v1/notes/search [GET]
func (h *handler) SearchRemote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoteSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	notes, err := h.uc.Search(ctx, req.Query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(notes))
}

// Detail godoc
// @Summary     Get a note
// @Tags        Notes
// @Produce     json
// @Param       id path int true "Note ID"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Notes API unavailable"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	uri, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.Get(ctx, uri.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newNoteResp(n))
}

// Create godoc
// @Summary     Create a note
// @Description Creates a note, then reloads the current page and the recent notes.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body noteReq true "Note"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Title and content are required"
// @Failure     502 {object} response.Resp "Failed to save note"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNoteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	_, st, err := h.uc.Save(ctx, req.toNote(0))
	h.respondState(ctx, c, "uc.Save", st, err)
}

// Update godoc
// @Summary     Update a note
// @Description Replaces title and content of a note, then reloads the current page and the recent notes.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Note ID"
// @Param       body body noteReq true "Note"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Title and content are required"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Failed to save note"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	uri, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	_, st, err := h.uc.Save(ctx, req.toNote(uri.ID))
	h.respondState(ctx, c, "uc.Save", st, err)
}

// Delete godoc
// @Summary     Delete a note
// @Description Deletes a note, then reloads the current page and the recent notes.
// @Tags        Notes
// @Produce     json
// @Param       id path int true "Note ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Failed to delete note"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	uri, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st, err := h.uc.Remove(ctx, uri.ID)
	h.respondState(ctx, c, "uc.Remove", st, err)
}

// OpenEditor godoc
// @Summary     Open the editor
// @Description Loads the given note into the edit buffer. An id of 0 composes a new note.
// @Tags        Editor
// @Accept      json
// @Produce     json
// @Param       body body editorReq true "Note"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes/editor [PUT]
func (h *handler) OpenEditor(c *gin.Context) {
	req, err := h.processEditorReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newStateResp(h.uc.OpenEditor(req.toNote())))
}

// OpenEditorByID godoc
// @Summary     Open the editor on a stored note
// @Tags        Editor
// @Produce     json
// @Param       id path int true "Note ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Notes API unavailable"
// @Router      /api/v1/notes/editor/{id} [POST]
func (h *handler) OpenEditorByID(c *gin.Context) {
	ctx := c.Request.Context()

	uri, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st, err := h.uc.OpenEditorByID(ctx, uri.ID)
	h.respondState(ctx, c, "uc.OpenEditorByID", st, err)
}

// CloseEditor godoc
// @Summary     Close the editor
// @Description Discards the edit buffer.
// @Tags        Editor
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/notes/editor [DELETE]
func (h *handler) CloseEditor(c *gin.Context) {
	response.OK(c, h.newStateResp(h.uc.CloseEditor()))
}

// SaveEditor godoc
// @Summary     Save the editor
// @Description Saves the edit buffer: creates when it has no id, updates otherwise.
// @Tags        Editor
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Title and content are required"
// @Failure     502 {object} response.Resp "Failed to save note"
// @Router      /api/v1/notes/editor/save [POST]
func (h *handler) SaveEditor(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.SaveEditor(ctx)
	h.respondState(ctx, c, "uc.SaveEditor", st, err)
}

// respondPage writes the view state after a page load. A fetch failure has
// already been recovered through the fallback cache, so it is a success
// carrying the warning.
func (h *handler) respondPage(ctx context.Context, c *gin.Context, op string, st note.ViewState, err error) {
	if err != nil && isFetchOnly(err) {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.OK(c, h.newStateResp(st))
		return
	}
	h.respondState(ctx, c, op, st, err)
}

// respondState writes the view state, or the mapped error with the unchanged
// state attached.
func (h *handler) respondState(ctx context.Context, c *gin.Context, op string, st note.ViewState, err error) {
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.ErrorWithData(c, h.mapError(err), h.newStateResp(st))
		return
	}

	response.OK(c, h.newStateResp(st))
}
