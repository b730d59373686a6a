package store

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-cms/backend/common"
	cmserrors "portfolio-cms/backend/common/errors"
	"portfolio-cms/backend/model"
)

// allowedTypes lists the tokens permitted in both the file extension and the
// declared content type. Matching only one of the two is not enough.
var allowedTypes = []string{"jpeg", "jpg", "png", "gif", "pdf", "doc", "docx"}

// UploadStore streams accepted uploads into its directory and hands back a
// public path. Stored filenames are generated, so uploads with identical
// original names never collide and nothing is ever overwritten.
type UploadStore struct {
	dir     string
	MaxSize int64
}

func NewUploadStore(uploadDir string) *UploadStore {
	return &UploadStore{dir: uploadDir, MaxSize: common.MaxUploadSize}
}

// Initialize makes sure the upload directory exists.
func (s *UploadStore) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload directory %s: %w", s.dir, err)
	}
	return nil
}

// Save validates the upload and persists it. Validation failures leave no
// partial file behind; a failed copy removes whatever was written.
func (s *UploadStore) Save(header *multipart.FileHeader) (*model.StoredFile, error) {
	if header.Size > s.MaxSize {
		return nil, cmserrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mimeType := header.Header.Get("Content-Type")
	if !typeAllowed(strings.TrimPrefix(ext, ".")) || !typeAllowed(mimeType) {
		return nil, cmserrors.ErrFileType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	storedName := fmt.Sprintf("file-%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	dstPath := filepath.Join(s.dir, storedName)
	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", dstPath, err)
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("write %s: %w", dstPath, err)
	}

	return &model.StoredFile{
		Filename:     storedName,
		OriginalName: header.Filename,
		MimeType:     mimeType,
		Size:         written,
		URL:          "/uploads/" + storedName,
	}, nil
}

// typeAllowed reports whether the value names one of the allowed types. The
// declared content type passes by containment ("image/jpeg" matches "jpeg"),
// mirroring how the original deployment filtered uploads.
func typeAllowed(value string) bool {
	if value == "" {
		return false
	}
	value = strings.ToLower(value)
	for _, t := range allowedTypes {
		if value == t || strings.Contains(value, t) {
			return true
		}
	}
	return false
}
