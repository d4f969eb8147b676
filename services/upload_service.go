package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadRoot is the directory served by the /uploads static mount. Paths
// stored in the database are relative to it (e.g. "categories/xxx.jpg").
const UploadRoot = "uploads"

func SaveUpload(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(UploadRoot, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext
	fullpath := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// SaveUploadAs writes the upload under a caller-chosen name, replacing any
// existing file (used for the single welcome video).
func SaveUploadAs(file *multipart.FileHeader, subdir, filename string) (string, error) {
	dir := filepath.Join(UploadRoot, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	fullpath := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// RemoveUpload deletes a stored file by its relative path. Best-effort:
// a missing file is not an error.
func RemoveUpload(rel string) error {
	if strings.TrimSpace(rel) == "" {
		return nil
	}
	err := os.Remove(filepath.Join(UploadRoot, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// UploadExists reports whether the stored relative path resolves to a file.
func UploadExists(rel string) bool {
	if strings.TrimSpace(rel) == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(UploadRoot, filepath.FromSlash(rel)))
	return err == nil
}
