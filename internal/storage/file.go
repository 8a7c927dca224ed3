package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/repository"
	"github.com/osse101/craftboard/internal/utils"
)

// FileStore keeps one JSON file per save id inside a directory
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store rooted at it
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return nil, fmt.Errorf(ErrMsgMkdirFailedFmt, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the root directory
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(saveID string) (string, error) {
	if saveID == "" || strings.ContainsAny(saveID, `/\`) || saveID == "." || saveID == ".." {
		return "", fmt.Errorf("%w: "+ErrMsgInvalidSaveIDFmt, domain.ErrInvalidInput, saveID)
	}
	return filepath.Join(s.dir, saveID+FileExtension), nil
}

// Load implements repository.Save
func (s *FileStore) Load(_ context.Context, saveID string) ([]byte, error) {
	path, err := s.path(saveID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, saveID)
		}
		return nil, fmt.Errorf(ErrMsgReadFailedFmt, saveID, err)
	}
	return data, nil
}

// Save implements repository.Save
func (s *FileStore) Save(_ context.Context, saveID string, data []byte) error {
	path, err := s.path(saveID)
	if err != nil {
		return err
	}

	if err := utils.WriteFileAtomic(path, data, FilePermissions); err != nil {
		return fmt.Errorf(ErrMsgWriteFailedFmt, saveID, err)
	}
	return nil
}

// Delete implements repository.Save. Deleting a missing save is not an error.
func (s *FileStore) Delete(_ context.Context, saveID string) error {
	path, err := s.path(saveID)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(ErrMsgDeleteFailedFmt, saveID, err)
	}
	return nil
}

// List implements repository.Save
func (s *FileStore) List(_ context.Context) ([]repository.SaveInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailedFmt, s.dir, err)
	}

	var saves []repository.SaveInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, FileExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListFailedFmt, s.dir, err)
		}
		saves = append(saves, repository.SaveInfo{
			SaveID:    strings.TrimSuffix(name, FileExtension),
			Size:      int(info.Size()),
			UpdatedAt: info.ModTime(),
		})
	}

	sort.Slice(saves, func(i, j int) bool { return saves[i].SaveID < saves[j].SaveID })
	return saves, nil
}
