package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrEmptyFileName   = errors.New("file name must not be empty")
	ErrObjectNotFound  = errors.New("media object not found")
	ErrInvalidMediaURL = errors.New("invalid media url")
)

// MediaStore is a disk-backed object store for reminder attachments.
// Objects are keyed by {userID}/{fileName} and resolve to public URLs under
// {baseURL}/media/.
type MediaStore struct {
	root    string
	baseURL string
}

func NewMediaStore(root string, baseURL string) (*MediaStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &MediaStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (store *MediaStore) Root() string {
	return store.root
}

// Save writes the object, overwriting on name collision, and returns its
// public URL.
func (store *MediaStore) Save(userID uint, fileName string, content io.Reader) (string, error) {
	cleanName, err := sanitizeFileName(fileName)
	if err != nil {
		return "", err
	}

	userDir := filepath.Join(store.root, strconv.FormatUint(uint64(userID), 10))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create user media directory: %w", err)
	}

	target, err := os.Create(filepath.Join(userDir, cleanName))
	if err != nil {
		return "", fmt.Errorf("create media object: %w", err)
	}
	defer target.Close()

	if _, err := io.Copy(target, content); err != nil {
		return "", fmt.Errorf("write media object: %w", err)
	}

	return store.PublicURL(userID, cleanName), nil
}

// DeleteByURL derives the object key from the URL's last path segment and the
// given user id, mirroring how the client referenced uploads.
func (store *MediaStore) DeleteByURL(userID uint, mediaURL string) error {
	fileName, err := FileNameFromURL(mediaURL)
	if err != nil {
		return err
	}

	objectPath := filepath.Join(store.root, strconv.FormatUint(uint64(userID), 10), fileName)
	if err := os.Remove(objectPath); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("remove media object: %w", err)
	}
	return nil
}

func (store *MediaStore) PublicURL(userID uint, fileName string) string {
	return fmt.Sprintf("%s/media/%d/%s", store.baseURL, userID, fileName)
}

// FileNameFromURL extracts the final path segment of a media URL.
func FileNameFromURL(mediaURL string) (string, error) {
	trimmed := strings.TrimSpace(mediaURL)
	if trimmed == "" {
		return "", ErrInvalidMediaURL
	}
	fileName := path.Base(strings.TrimRight(trimmed, "/"))
	if fileName == "" || fileName == "." || fileName == ".." || fileName == "/" {
		return "", ErrInvalidMediaURL
	}
	if strings.ContainsAny(fileName, "\\") {
		return "", ErrInvalidMediaURL
	}
	return fileName, nil
}

func sanitizeFileName(fileName string) (string, error) {
	cleanName := filepath.Base(strings.TrimSpace(fileName))
	if cleanName == "" || cleanName == "." || cleanName == string(filepath.Separator) {
		return "", ErrEmptyFileName
	}
	if strings.ContainsAny(cleanName, "\\/") {
		return "", ErrEmptyFileName
	}
	return cleanName, nil
}
