package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	notes := rg.Group("/notes")
	{
		notes.GET("/state", h.State)
		notes.POST("/sync", h.Sync)

		notes.GET("/pages/:page", h.Page)
		notes.POST("/pages/next", h.NextPage)
		notes.POST("/pages/prev", h.PrevPage)
		notes.POST("/recent", h.RefreshRecent)

		notes.PUT("/search", h.SetSearch)
		notes.GET("/search", h.SearchRemote)

		notes.PUT("/editor", h.OpenEditor)
		notes.POST("/editor/:id", h.OpenEditorByID)
		notes.DELETE("/editor", h.CloseEditor)
		notes.POST("/editor/save", h.SaveEditor)

		notes.POST("", h.Create)
		notes.GET("/:id", h.Detail)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}
