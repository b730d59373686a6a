package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/common"
)

// GetStatus is a liveness probe.
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": common.Version,
	})
}
