package common

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensions accepted for uploaded images. Anything else is skipped
// silently, the rest of the request proceeds.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".jfif": true,
}

// IsAllowedImageName reports whether the filename carries an accepted
// image extension. The check is case-insensitive.
func IsAllowedImageName(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	return allowedImageExtensions[ext]
}

// GenerateStoredName builds a collision-free on-disk filename: a random
// 128-bit token plus the lower-cased original extension. The original
// filename never reaches the storage path.
func GenerateStoredName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return token + ext
}

// SanitizeFilename reduces a client-supplied filename to a safe display
// value: base name only, path separators and control characters replaced.
func SanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			b.WriteRune('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SaveMultipartFile writes an uploaded file to dst, creating the parent
// directory if needed.
func SaveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// DeleteFile removes a stored file. A file that is already gone is not an
// error: deletion has to stay idempotent for cascade cleanup.
func DeleteFile(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
