package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/SafeHavenApp/safehaven_backend/internal/storage"
	"github.com/google/uuid"
)

// uploadRule is the per-purpose validation policy.
type uploadRule struct {
	maxSize      int64
	allowedTypes map[string]bool
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// uploadRules keys purposes to their size ceiling and content-type allow-list.
// Unknown purposes fall back to the evidence rule, the most permissive one.
var uploadRules = map[string]uploadRule{
	"profile": {
		maxSize:      5 << 20,
		allowedTypes: imageTypes,
	},
	"identity": {
		maxSize: 10 << 20,
		allowedTypes: map[string]bool{
			"image/jpeg":      true,
			"image/png":       true,
			"image/webp":      true,
			"application/pdf": true,
		},
	},
	"evidence": {
		maxSize: 20 << 20,
		allowedTypes: map[string]bool{
			"image/jpeg":      true,
			"image/png":       true,
			"image/webp":      true,
			"application/pdf": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		},
	},
}

type uploadService struct {
	store storage.FileStore
}

// NewUploadService creates the upload service on top of a file store.
func NewUploadService(store storage.FileStore) *uploadService {
	return &uploadService{store: store}
}

func validateUpload(upload portssvc.Upload, purpose string) error {
	rule, ok := uploadRules[purpose]
	if !ok {
		rule = uploadRules["evidence"]
	}

	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if !rule.allowedTypes[contentType] {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid file type", apperrors.ErrValidation)
	}
	if upload.Size > rule.maxSize {
		return apperrors.NewAppError(http.StatusBadRequest, "File too large", apperrors.ErrValidation)
	}
	return nil
}

// destFileName builds the permanent name, e.g. profile_1735689600_1a2b3c4d.png.
// The random suffix keeps two same-purpose uploads landing within the same
// second from overwriting each other.
func destFileName(purpose, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s_%d_%s%s", purpose, time.Now().Unix(), uuid.NewString()[:8], ext)
}

// StageUpload validates the file and stores it under a fresh temp id.
func (s *uploadService) StageUpload(ctx context.Context, upload portssvc.Upload, purpose string) (*dto.TempUploadResponse, error) {
	defer upload.Reader.Close()

	if err := validateUpload(upload, purpose); err != nil {
		return nil, err
	}

	tempID := uuid.NewString()
	url, err := s.store.SaveTemp(ctx, tempID, upload.FileName, upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	return &dto.TempUploadResponse{
		TempID:   tempID,
		URL:      url,
		FileName: upload.FileName,
		FileType: upload.ContentType,
		FileSize: upload.Size,
	}, nil
}

// PromoteToUser moves staged files into the user's permanent namespace. A ref
// whose staged file is missing (expired, bad id) is logged and skipped so one
// stale reference cannot fail a whole registration.
func (s *uploadService) PromoteToUser(ctx context.Context, refs []dto.TempFileRef, userID string) []portssvc.PromotedFile {
	logger := middleware.GetLoggerFromCtx(ctx)

	var promoted []portssvc.PromotedFile
	for _, ref := range refs {
		if ref.TempID == "" {
			continue
		}
		fileName, err := s.store.FindTempFileName(ctx, ref.TempID)
		if err != nil {
			logger.Warn("Skipping missing staged file", slog.String("temp_id", ref.TempID), slog.String("error", err.Error()))
			continue
		}
		url, err := s.store.Promote(ctx, ref.TempID, fileName, userID, destFileName(ref.Purpose, fileName))
		if err != nil {
			logger.Warn("Failed to promote staged file", slog.String("temp_id", ref.TempID), slog.String("error", err.Error()))
			continue
		}
		promoted = append(promoted, portssvc.PromotedFile{Purpose: ref.Purpose, URL: url})
	}
	return promoted
}

// UploadForUser validates and stores a file directly under the user's namespace.
func (s *uploadService) UploadForUser(ctx context.Context, upload portssvc.Upload, purpose, userID string) (*dto.UploadResponse, error) {
	defer upload.Reader.Close()

	if err := validateUpload(upload, purpose); err != nil {
		return nil, err
	}

	url, err := s.store.SaveUserFile(ctx, userID, destFileName(purpose, upload.FileName), upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &dto.UploadResponse{
		URL:      url,
		FileName: upload.FileName,
		FileType: upload.ContentType,
		FileSize: upload.Size,
	}, nil
}
