package helper

import (
	"mime"
	"path/filepath"
	"strings"
)

// GetMimeType returns the MIME type of a file by its extension without parameters such as charset
func GetMimeType(filename string) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if mimeType == "" {
		return "application/octet-stream"
	}
	if base, _, found := strings.Cut(mimeType, ";"); found {
		return strings.TrimSpace(base)
	}
	return mimeType
}
