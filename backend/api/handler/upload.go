package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/common"
	cmserrors "portfolio-cms/backend/common/errors"
	"portfolio-cms/backend/store"
)

// UploadHandler accepts a single file per request and returns its public URL.
type UploadHandler struct {
	Uploads *store.UploadStore
}

func NewUploadHandler(uploads *store.UploadStore) *UploadHandler {
	return &UploadHandler{Uploads: uploads}
}

// Upload validates and persists the "file" form field.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		common.RespError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	stored, err := h.Uploads.Save(header)
	if err != nil {
		switch {
		case errors.Is(err, cmserrors.ErrFileTooLarge):
			common.RespError(c, http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, cmserrors.ErrFileType):
			common.RespError(c, http.StatusBadRequest, err.Error())
		default:
			common.SysError("saving upload: " + err.Error())
			common.RespError(c, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "File uploaded successfully",
		"filename":     stored.Filename,
		"originalName": stored.OriginalName,
		"url":          stored.URL,
		"size":         stored.Size,
	})
}
