package route

import (
	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/api/handler"
)

// SetRouter wires every route group onto the engine.
func SetRouter(router *gin.Engine, auth *handler.AuthHandler, content *handler.ContentHandler, upload *handler.UploadHandler) {
	SetApiRouter(router, auth, content, upload)
	SetWebRouter(router)
	router.NoRoute(NoRouteHandler())
}
