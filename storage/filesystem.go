package storage

import (
	"fmt"
	"io"

	"github.com/siherrmann/contentManager/helper"
)

type File struct {
	Name     string
	Size     int64
	MimeType string
}

// Filesystem is a read-only source of seed files.
type Filesystem interface {
	Open(path string) (io.ReadCloser, error)
	ListFiles() ([]File, error)
}

// CreateFilesystem creates the filesystem selected by the storage mode of config
func CreateFilesystem(config *helper.Config) (Filesystem, error) {
	switch config.StorageMode {
	case helper.STORAGE_MODE_S3:
		if config.S3.BucketName == "" || config.S3.AccessKeyID == "" || config.S3.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
		}
		return NewFilesystemS3(config.S3)
	case helper.STORAGE_MODE_MEMORY:
		return NewFilesystemMemory(), nil
	case helper.STORAGE_MODE_LOCAL:
		return NewFilesystemLocal(config.StoragePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", config.StorageMode)
	}
}
