package services

import (
	"context"
	"io"

	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
)

// Upload describes an incoming multipart file before validation.
// The service consuming the upload closes Reader, even when validation fails.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.ReadCloser
}

// PromotedFile is the result of moving one staged file into a user's namespace.
type PromotedFile struct {
	Purpose string
	URL     string
}

// UploadSvcFacade defines the file staging pipeline.
type UploadSvcFacade interface {
	// StageUpload validates the file against the per-purpose allow-list and
	// size ceiling, stores it under a random temporary identifier and returns
	// the temp id plus a temporary URL.
	StageUpload(ctx context.Context, upload Upload, purpose string) (*dto.TempUploadResponse, error)

	// PromoteToUser migrates staged files into the user's permanent namespace.
	// Individual failures are logged and skipped, never aborting the batch.
	PromoteToUser(ctx context.Context, refs []dto.TempFileRef, userID string) []PromotedFile

	// UploadForUser validates and stores a file directly in the user's
	// permanent namespace (authenticated one-shot upload).
	UploadForUser(ctx context.Context, upload Upload, purpose, userID string) (*dto.UploadResponse, error)
}
