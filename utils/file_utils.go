package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Base directory for storing uploaded files
	uploadBaseDir = "uploads"
	// Base URL for serving files
	baseURL = "/uploads"
	// Maximum file size (10MB)
	maxFileSize = 10 * 1024 * 1024
)

var (
	// Allowed image extensions
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".svg":  true,
	}
	// Allowed document extensions for post attachments
	allowedDocExts = map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
		".xls":  true,
		".xlsx": true,
		".txt":  true,
	}
)

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	reg := regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	return reg.ReplaceAllString(filename, "")
}

// IsImageFile reports whether the filename has an allowed image extension
func IsImageFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// ValidateAttachment checks extension and size limits for an uploaded file
func ValidateAttachment(file *multipart.FileHeader) error {
	if file.Size > maxFileSize {
		return fmt.Errorf("file too large. Maximum size is 10MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] && !allowedDocExts[ext] {
		return fmt.Errorf("unsupported file type: %s", ext)
	}
	return nil
}

// InitializeStorage creates necessary directories for file storage
func InitializeStorage() error {
	if err := os.MkdirAll(uploadBaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create uploads directory: %v", err)
	}

	dirs := []string{
		filepath.Join(uploadBaseDir, "attachments"),
		filepath.Join(uploadBaseDir, "thumbnails"),
		filepath.Join(uploadBaseDir, "covers"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// SaveAttachment stores an uploaded file under uploads/attachments and
// returns the URL it will be served from. Images also get a thumbnail
// written under uploads/thumbnails with the same stored name.
func SaveAttachment(file *multipart.FileHeader) (string, error) {
	if err := ValidateAttachment(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(cleanFilename(file.Filename)))
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(uploadBaseDir, "attachments", storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	if IsImageFile(storedName) && ext != ".svg" && ext != ".gif" {
		if err := generateThumbnail(dstPath, storedName); err != nil {
			// Thumbnail failure is not fatal for the upload itself
			fmt.Printf("Warning: failed to generate thumbnail for %s: %v\n", storedName, err)
		}
	}

	return baseURL + "/attachments/" + storedName, nil
}

// generateThumbnail writes a 320px-wide preview of an uploaded image
func generateThumbnail(srcPath, storedName string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}

	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	thumbPath := filepath.Join(uploadBaseDir, "thumbnails", storedName)
	return imaging.Save(thumb, thumbPath)
}

// DeleteUploadedFile removes a stored file given its serving URL
func DeleteUploadedFile(fileURL string) error {
	if !strings.HasPrefix(fileURL, baseURL+"/") {
		return fmt.Errorf("invalid file URL")
	}

	relPath := filepath.Clean(strings.TrimPrefix(fileURL, baseURL+"/"))
	if relPath == ".." || strings.HasPrefix(relPath, "../") {
		return fmt.Errorf("invalid file URL")
	}

	filePath := filepath.Join(uploadBaseDir, relPath)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	// Remove a thumbnail if one was generated
	thumbPath := filepath.Join(uploadBaseDir, "thumbnails", filepath.Base(relPath))
	if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete thumbnail: %v", err)
	}

	return nil
}
