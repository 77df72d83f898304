// Package storage provides the file stores backing the upload pipeline.
// Local disk is the default; an S3-compatible store is used when a bucket
// is configured.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// FileStore abstracts where staged and permanent files live.
type FileStore interface {
	// SaveTemp stores a file under the random temporary identifier and
	// returns a URL for immediate client display.
	SaveTemp(ctx context.Context, tempID, fileName string, r io.Reader) (string, error)

	// FindTempFileName returns the original file name staged under tempID.
	FindTempFileName(ctx context.Context, tempID string) (string, error)

	// Promote copies the staged file into the user's permanent namespace
	// under destName and deletes the temporary original. Returns the
	// permanent URL.
	Promote(ctx context.Context, tempID, fileName, userID, destName string) (string, error)

	// SaveUserFile stores a file directly in the user's permanent namespace.
	SaveUserFile(ctx context.Context, userID, destName string, r io.Reader) (string, error)
}

// SanitizeFileName strips any path components and characters that have no
// business in a stored file name.
func SanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_")
	name = replacer.Replace(name)
	if name == "" || name == "." {
		name = "file"
	}
	return name
}
