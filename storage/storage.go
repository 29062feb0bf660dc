// Package storage handles uploaded menu/promotion/advertisement images:
// type and size checks, collision-free naming, and cleanup.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/menuboard/menuboard-api/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImageSize is the upload cap: 5 MiB.
const MaxImageSize = 5 << 20

// URLPrefix is the public path images are served under.
const URLPrefix = "/uploads/"

// ImageField is the multipart field name clients upload under.
const ImageField = "image"

var (
	ErrImageType     = errors.New("only JPEG, JPG and PNG image formats are allowed")
	ErrImageTooLarge = errors.New("image must be 5 MB or smaller")
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// SaveImage validates and stores the single uploaded image, returning
// its public reference path. Returns ("", nil) when no file was sent.
// Validation rejects before anything is written to the upload dir.
func SaveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile(ImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	return save(c, file)
}

// SaveRequiredImage is SaveImage for endpoints where the image is
// mandatory (advertisements). A missing file is an error.
func SaveRequiredImage(c *gin.Context) (string, error) {
	file, err := c.FormFile(ImageField)
	if err != nil {
		return "", err
	}
	return save(c, file)
}

func save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return "", ErrImageType
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !allowedTypes[ct] {
		return "", ErrImageType
	}

	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	if err := c.SaveUploadedFile(file, filepath.Join(config.App.UploadDir, name)); err != nil {
		return "", err
	}
	return URLPrefix + name, nil
}

// Remove deletes a stored image by its public reference path. A
// reference to an already-missing file is not an error.
func Remove(ref string) error {
	if !strings.HasPrefix(ref, URLPrefix) {
		return nil
	}
	name := strings.TrimPrefix(ref, URLPrefix)
	// Refuse anything that escapes the upload dir.
	if name == "" || name != filepath.Base(name) {
		return nil
	}
	err := os.Remove(filepath.Join(config.App.UploadDir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
