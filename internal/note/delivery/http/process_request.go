package http

import (
	"github.com/gin-gonic/gin"
)

// processNoteReq binds the note body.
func (h *handler) processNoteReq(c *gin.Context) (noteReq, error) {
	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the note body plus the id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (idURI, noteReq, error) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return uri, noteReq{}, err
	}
	req, err := h.processNoteReq(c)
	return uri, req, err
}

// processIDReq binds the id URI param.
func (h *handler) processIDReq(c *gin.Context) (idURI, error) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return uri, err
	}
	return uri, nil
}

// processPageReq binds the page URI param.
func (h *handler) processPageReq(c *gin.Context) (pageURI, error) {
	var uri pageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return uri, err
	}
	return uri, nil
}

// processSearchReq binds the local search body.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRemoteSearchReq binds the remote search query string.
func (h *handler) processRemoteSearchReq(c *gin.Context) (remoteSearchReq, error) {
	var req remoteSearchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEditorReq binds the editor body.
func (h *handler) processEditorReq(c *gin.Context) (editorReq, error) {
	var req editorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
