package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	noteHTTP "notes-client/internal/note/delivery/http"
)

// setupNoteDomain registers the note view-state routes.
// The use case is built in main so the CLI and the server share the wiring.
func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := noteHTTP.New(srv.l, srv.noteUC)

	// Routes: registers /api/v1/notes/...
	noteHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Note domain registered")
	return nil
}
