package storage

import (
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/siherrmann/contentManager/helper"
)

// FilesystemMemory keeps seed files in memory using go-billy's memfs
type FilesystemMemory struct {
	fs billy.Filesystem
}

func NewFilesystemMemory() *FilesystemMemory {
	return &FilesystemMemory{
		fs: memfs.New(),
	}
}

// Write stores the content of reader at path
func (m *FilesystemMemory) Write(path string, reader io.Reader) error {
	file, err := m.fs.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}

func (m *FilesystemMemory) Open(path string) (io.ReadCloser, error) {
	file, err := m.fs.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// ListFiles returns a list of all files in the filesystem
func (m *FilesystemMemory) ListFiles() ([]File, error) {
	files := []File{}

	var walk func(string) error
	walk = func(dirPath string) error {
		entries, err := m.fs.ReadDir(dirPath)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			entryPath := m.fs.Join(dirPath, entry.Name())
			if entry.IsDir() {
				if err := walk(entryPath); err != nil {
					return err
				}
				continue
			}

			files = append(files, File{
				Name:     filepath.ToSlash(entryPath),
				Size:     entry.Size(),
				MimeType: helper.GetMimeType(entry.Name()),
			})
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}

	return files, nil
}
