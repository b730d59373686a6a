package route

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/common"
)

// SetWebRouter serves the three static surfaces: uploaded files, the admin
// SPA build, and the public site.
func SetWebRouter(router *gin.Engine) {
	router.Use(static.Serve("/uploads", static.LocalFile(common.UploadDir, false)))
	router.Use(static.Serve("/admin", static.LocalFile(common.AdminDir, false)))
	router.Use(static.Serve("/", static.LocalFile(common.SiteDir, false)))
}

// NoRouteHandler resolves everything the static handlers did not: unknown
// API paths get a JSON 404, /admin paths fall back to the SPA index so
// client-side routing works, and anything else falls back to the site index.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		switch {
		case strings.HasPrefix(path, "/api/"):
			common.RespError(c, http.StatusNotFound, "API route not found")
		case strings.HasPrefix(path, "/uploads/"):
			common.RespError(c, http.StatusNotFound, "File not found")
		case strings.HasPrefix(path, "/admin"):
			c.File(filepath.Join(common.AdminDir, "index.html"))
		default:
			c.File(filepath.Join(common.SiteDir, "index.html"))
		}
	}
}
