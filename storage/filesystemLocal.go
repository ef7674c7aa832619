package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/siherrmann/contentManager/helper"
)

// FilesystemLocal reads seed files below a base directory
type FilesystemLocal struct {
	basePath string
}

func NewFilesystemLocal(basePath string) *FilesystemLocal {
	return &FilesystemLocal{
		basePath: basePath,
	}
}

// Open opens a file at the specified path relative to the base path
func (l *FilesystemLocal) Open(path string) (io.ReadCloser, error) {
	root, err := os.OpenRoot(l.basePath)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	file, err := root.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return file, nil
}

// ListFiles returns all files below the base path. A missing base path has no files.
func (l *FilesystemLocal) ListFiles() ([]File, error) {
	files := []File{}

	err := filepath.WalkDir(l.basePath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		files = append(files, File{
			Name:     filepath.ToSlash(relPath),
			Size:     info.Size(),
			MimeType: helper.GetMimeType(relPath),
		})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return []File{}, nil
	}

	return files, err
}
