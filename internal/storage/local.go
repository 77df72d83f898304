package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps files on disk under baseDir. Temporary files live under
// <baseDir>/temp/<tempID>/ and permanent files under <baseDir>/users/<userID>/.
// URLs are paths under /uploads, which the server serves statically.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a LocalStore rooted at baseDir, creating it if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "temp"), 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", baseDir, err)
	}
	if err := os.MkdirAll(filepath.Join(baseDir, "users"), 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) SaveTemp(ctx context.Context, tempID, fileName string, r io.Reader) (string, error) {
	fileName = SanitizeFileName(fileName)
	dir := filepath.Join(s.baseDir, "temp", tempID)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return "/uploads/temp/" + tempID + "/" + fileName, nil
}

func (s *LocalStore) FindTempFileName(ctx context.Context, tempID string) (string, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, "temp", tempID))
	if err != nil {
		return "", fmt.Errorf("staged file %s not found: %w", tempID, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			return entry.Name(), nil
		}
	}
	return "", fmt.Errorf("staged file %s not found", tempID)
}

// Promote is a plain copy followed by a delete; there is no atomic rename
// guarantee across devices.
func (s *LocalStore) Promote(ctx context.Context, tempID, fileName, userID, destName string) (string, error) {
	srcPath := filepath.Join(s.baseDir, "temp", tempID, SanitizeFileName(fileName))
	userDir := filepath.Join(s.baseDir, "users", userID)
	if err := os.MkdirAll(userDir, 0o770); err != nil {
		return "", fmt.Errorf("failed to create user dir: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer src.Close()

	destName = SanitizeFileName(destName)
	dst, err := os.Create(filepath.Join(userDir, destName))
	if err != nil {
		return "", fmt.Errorf("failed to create permanent file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy staged file: %w", err)
	}

	src.Close()
	if err := os.RemoveAll(filepath.Join(s.baseDir, "temp", tempID)); err != nil {
		// The permanent copy exists; a leftover temp file is not fatal.
		return "/uploads/users/" + userID + "/" + destName, nil
	}

	return "/uploads/users/" + userID + "/" + destName, nil
}

func (s *LocalStore) SaveUserFile(ctx context.Context, userID, destName string, r io.Reader) (string, error) {
	userDir := filepath.Join(s.baseDir, "users", userID)
	if err := os.MkdirAll(userDir, 0o770); err != nil {
		return "", fmt.Errorf("failed to create user dir: %w", err)
	}

	destName = SanitizeFileName(destName)
	dst, err := os.Create(filepath.Join(userDir, destName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/users/" + userID + "/" + destName, nil
}

var _ FileStore = (*LocalStore)(nil)
