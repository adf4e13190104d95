package http

import (
	"github.com/gin-gonic/gin"

	"notes-client/internal/note"
	"notes-client/pkg/log"
)

// Handler is the public interface for the note HTTP delivery layer.
type Handler interface {
	State(c *gin.Context)
	Sync(c *gin.Context)
	Page(c *gin.Context)
	NextPage(c *gin.Context)
	PrevPage(c *gin.Context)
	RefreshRecent(c *gin.Context)
	SetSearch(c *gin.Context)
	SearchRemote(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	OpenEditor(c *gin.Context)
	OpenEditorByID(c *gin.Context)
	CloseEditor(c *gin.Context)
	SaveEditor(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc note.UseCase
}

// New creates a new HTTP handler for the note domain.
func New(l log.Logger, uc note.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
