package route

import (
	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/api/handler"
	"portfolio-cms/backend/api/middleware"
)

// SetApiRouter registers the JSON API. Reads are public; mutations require a
// valid bearer token. Only the /api-prefixed content routes exist: the bare
// /content/:section path some old admin builds called was a client bug, not
// part of the contract.
func SetApiRouter(router *gin.Engine, auth *handler.AuthHandler, content *handler.ContentHandler, upload *handler.UploadHandler) {
	apiRouter := router.Group("/api")
	{
		apiRouter.GET("/status", handler.GetStatus)

		authRoutes := apiRouter.Group("/auth")
		{
			authRoutes.POST("/login", auth.Login)
		}

		contentRoutes := apiRouter.Group("/content")
		{
			contentRoutes.GET("", content.GetAll)
			contentRoutes.GET("/:section", content.GetSection)
			contentRoutes.PUT("/:section", middleware.JWTAuth(), content.UpdateSection)
		}

		apiRouter.POST("/upload", middleware.JWTAuth(), upload.Upload)
	}
}
