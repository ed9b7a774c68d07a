package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProfileStore keeps one PNG per username on the local filesystem,
// profiles/{username}.png.
type IProfileStore interface {
	Save(username string, image []byte) (string, error)
	Load(username string) ([]byte, error)
}

type ProfileStore struct {
	dir string
}

func NewProfileStore(dir string) IProfileStore {
	return &ProfileStore{dir: dir}
}

func (s *ProfileStore) path(username string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.png", username))
}

func (s *ProfileStore) Save(username string, image []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create profile dir: %w", err)
	}
	p := s.path(username)
	if err := os.WriteFile(p, image, 0644); err != nil {
		return "", fmt.Errorf("write profile image: %w", err)
	}
	return p, nil
}

func (s *ProfileStore) Load(username string) ([]byte, error) {
	data, err := os.ReadFile(s.path(username))
	if err != nil {
		return nil, err
	}
	return data, nil
}
