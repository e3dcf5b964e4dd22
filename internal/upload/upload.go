// Package upload stores uploaded coin images on disk.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType rejects uploads that aren't a known image format.
var ErrUnsupportedType = errors.New("unsupported image type")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store saves images under a single directory with random names, so an
// uploaded filename never touches the filesystem.
type Store struct {
	dir string
}

// NewStore creates the media directory if needed and returns a store for it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory %s: %w", dir, err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the directory the store saves images in.
func (store *Store) Dir() string {
	return store.dir
}

// Save writes an uploaded image to the store and returns the stored name.
//
// The name is a random UUID with the upload's extension; the write goes
// through a temporary file and a rename so a failed upload never leaves a
// partial image behind.
func (store *Store) Save(content io.Reader, originalName string) (string, error) {
	extension := strings.ToLower(filepath.Ext(originalName))

	if !imageExtensions[extension] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + extension

	file, err := os.CreateTemp(store.dir, ".upload-*")

	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}

	temporaryPath := file.Name()

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(temporaryPath)

		return "", fmt.Errorf("writing image: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)

		return "", fmt.Errorf("closing image: %w", err)
	}

	if err := os.Rename(temporaryPath, filepath.Join(store.dir, name)); err != nil {
		os.Remove(temporaryPath)

		return "", fmt.Errorf("renaming image: %w", err)
	}

	return name, nil
}

// Remove deletes a stored image. Missing files are not an error, and names
// that don't look like stored names are rejected rather than resolved.
func (store *Store) Remove(name string) error {
	if name == "" {
		return nil
	}

	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid image name: %s", name)
	}

	if err := os.Remove(filepath.Join(store.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
