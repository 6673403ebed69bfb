package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/afr117/My-personal-website/internal/repository"
)

var (
	// ErrProjectNotFound is returned by Update/Delete/GetByID for an unknown id.
	ErrProjectNotFound = fmt.Errorf("project %w", repository.ErrNotFound)
	// ErrUnauthorized is returned when the calling session is not authenticated.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidPassword is returned by Login on a wrong admin secret.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAdminNotConfigured is returned by Login when no admin secret is set,
	// regardless of the submitted value.
	ErrAdminNotConfigured = errors.New("admin password not configured")
)

// ValidationError names every field of a project payload that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid project: " + strings.Join(e.Fields, ", ")
}

// UploadError carries a human readable reason an image upload was rejected.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return e.Reason
}
