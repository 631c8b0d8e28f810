package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nousrire/backend/internal/service"
)

// Storage keeps uploaded images on the local filesystem and hands out
// durable URLs under baseURL. It stands in for the hosted object storage
// of the deployed site: same contract (save bytes under a namespaced
// path, retrieve a URL, delete by the same path).
type Storage struct {
	rootPath string
	baseURL  string
}

// Ensure Storage implements the service interface at compile time.
var _ service.ImageStore = (*Storage)(nil)

func New(rootPath, baseURL string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "media/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}

	return &Storage{rootPath: p, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes a file under the given relative path (e.g.
// "news-images/<name>.jpg") and returns its public URL.
func (s *Storage) Save(fileData io.Reader, relativePath string) (string, error) {
	cleanRel := filepath.Clean(relativePath)
	if strings.HasPrefix(cleanRel, "..") || filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("invalid storage path: %s", relativePath)
	}

	fullPath := filepath.Join(s.rootPath, cleanRel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create subdirectories: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, fileData); err != nil {
		os.Remove(fullPath) // Best effort, ignore error here.
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return s.baseURL + "/" + filepath.ToSlash(cleanRel), nil
}

// Read opens a stored file given its relative path.
func (s *Storage) Read(relativePath string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Clean(relativePath))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a stored image by the URL Save returned. Deleting an
// already-gone file is not an error.
func (s *Storage) Delete(url string) error {
	rel, ok := s.relativeFromURL(url)
	if !ok {
		return fmt.Errorf("url %q is not served by this store", url)
	}

	fullPath := filepath.Join(s.rootPath, rel)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Root returns the directory the HTTP layer should serve under the media
// prefix.
func (s *Storage) Root() string {
	return s.rootPath
}

func (s *Storage) relativeFromURL(url string) (string, bool) {
	rel, found := strings.CutPrefix(url, s.baseURL+"/")
	if !found {
		return "", false
	}
	rel = filepath.Clean(filepath.FromSlash(rel))
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", false
	}
	return rel, true
}
