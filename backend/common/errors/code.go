// Package errors defines the sentinel errors shared across the CMS. Each
// maps to exactly one HTTP status at the handler boundary.
package errors

import stderrors "errors"

// User and authentication errors.
var (
	ErrUserNotFound       = stderrors.New("user not found")
	ErrInvalidCredentials = stderrors.New("invalid credentials")
)

// Content errors.
var (
	ErrSectionNotFound = stderrors.New("section not found")
)

// Upload errors.
var (
	ErrFileTooLarge = stderrors.New("file exceeds the 10MB size limit")
	ErrFileType     = stderrors.New("only images and documents are allowed")
)
