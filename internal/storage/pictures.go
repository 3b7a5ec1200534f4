package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrImageProcessing is returned when an uploaded picture cannot be decoded,
// resized or written.
var ErrImageProcessing = errors.New("image processing failed")

// thumbnailSize is the bounding box applied to profile pictures. Aspect ratio
// is preserved and images already inside the box are not upscaled.
const thumbnailSize = 125

// PictureStore writes resized profile pictures under a fixed directory.
type PictureStore struct {
	dir string
}

// NewPictureStore creates a PictureStore rooted at dir.
func NewPictureStore(dir string) *PictureStore {
	return &PictureStore{dir: dir}
}

// SaveProfilePicture decodes the upload, fits it into the thumbnail box and
// writes it under a randomized filename that keeps the original extension.
// The stored filename is returned for persistence on the user record.
func (s *PictureStore) SaveProfilePicture(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		return "", fmt.Errorf("%w: unsupported extension %q", ErrImageProcessing, ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > thumbnailSize || bounds.Dy() > thumbnailSize {
		img = imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	}

	name, err := randomName()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}
	filename := name + ext

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}
	if err := imaging.Save(img, filepath.Join(s.dir, filename)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}

	return filename, nil
}

// Remove deletes a previously stored picture. Used to roll back an upload
// when the surrounding profile update fails.
func (s *PictureStore) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filename))
}

func randomName() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
