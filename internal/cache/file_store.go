package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/sven/internal/lexicon"
)

type FileStore struct {
	rootDir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(cacheDirectory string) *FileStore {
	return &FileStore{
		rootDir: cacheDirectory,
	}
}

func (f *FileStore) RootDir() string {
	return f.rootDir
}

func (f *FileStore) filePath(key string) string {
	return filepath.Join(f.rootDir, filepath.FromSlash(key))
}

func (f *FileStore) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(f.filePath(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: os.Stat > %w", lexicon.ErrFileSystem, err)
}

func (f *FileStore) Read(_ context.Context, key string) ([]byte, error) {
	file, err := os.Open(f.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", lexicon.ErrFileSystem, &NotFoundError{Key: key})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: os.Open > %w", lexicon.ErrFileSystem, err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: io.ReadAll > %w", lexicon.ErrFileSystem, err)
	}
	return contents, nil
}

// Write creates the cache directory if needed and replaces the artifact through a rename,
// so a reader never sees a half-written file from this process.
func (f *FileStore) Write(_ context.Context, key string, contents []byte) error {
	localFilePath := f.filePath(key)
	dir := filepath.Dir(localFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: os.MkdirAll > %w", lexicon.ErrFileSystem, err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(localFilePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: os.CreateTemp > %w", lexicon.ErrFileSystem, err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: file.Write > %w", lexicon.ErrFileSystem, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: file.Close > %w", lexicon.ErrFileSystem, err)
	}
	if err := os.Rename(tmpPath, localFilePath); err != nil {
		return fmt.Errorf("%w: os.Rename > %w", lexicon.ErrFileSystem, err)
	}
	return nil
}
