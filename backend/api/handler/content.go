package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/common"
	"portfolio-cms/backend/store"
)

// ContentHandler serves the content document: public reads, token-gated
// section replacement.
type ContentHandler struct {
	Content *store.ContentStore
}

func NewContentHandler(content *store.ContentStore) *ContentHandler {
	return &ContentHandler{Content: content}
}

// GetAll returns the full content document.
func (h *ContentHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.Content.ReadAll())
}

// GetSection returns one section's value or 404.
func (h *ContentHandler) GetSection(c *gin.Context) {
	section := c.Param("section")
	value, err := h.Content.ReadSection(section)
	if err != nil {
		common.RespError(c, http.StatusNotFound, "Section not found")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", value)
}

// UpdateSection replaces a section wholesale with the request body.
func (h *ContentHandler) UpdateSection(c *gin.Context) {
	section := c.Param("section")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		common.RespError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !json.Valid(body) {
		common.RespError(c, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if err := h.Content.WriteSection(section, body); err != nil {
		common.SysError("saving content document: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, "Failed to save content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"data":    json.RawMessage(body),
	})
}
