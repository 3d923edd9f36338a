package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PhotoStorage is the backend for operation photos. The local implementation
// is the only one in use today; cloud backends slot in behind the same
// interface.
type PhotoStorage interface {
	Save(key string, reader io.Reader) error
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
	Exists(key string) (bool, int64, error)
}

type localStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (PhotoStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

// resolve keeps keys inside the base directory.
func (s *localStorage) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return filepath.Join(s.baseDir, clean), nil
}

func (s *localStorage) Save(key string, reader io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, reader)
	return err
}

func (s *localStorage) Open(key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (s *localStorage) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (s *localStorage) Exists(key string) (bool, int64, error) {
	path, err := s.resolve(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	return true, info.Size(), nil
}
