package helper

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const (
	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"
)

// S3Config holds the configuration for the S3 seed storage
type S3Config struct {
	Endpoint        string // S3 endpoint URL (for S3-compatible services)
	Region          string // AWS region
	BucketName      string // S3 bucket name
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	UseSSL          bool   // Whether to use SSL/TLS
}

// Config is the process configuration of the content manager.
type Config struct {
	Port        string
	PageSize    int
	Locale      language.Tag
	StorageMode string
	StoragePath string
	UserSeed    string
	PostSeed    string
	S3          S3Config
}

// LoadConfigFromEnv reads the configuration from CONTENT_MANAGER_* and S3_* variables.
func LoadConfigFromEnv() (*Config, error) {
	locale, err := language.Parse(GetEnvOrDefault("CONTENT_MANAGER_LOCALE", "und"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTENT_MANAGER_LOCALE: %w", err)
	}

	config := &Config{
		Port:        GetEnvOrDefault("CONTENT_MANAGER_PORT", "3000"),
		PageSize:    GetEnvIntOrDefault("CONTENT_MANAGER_PAGE_SIZE", 10),
		Locale:      locale,
		StorageMode: strings.ToLower(GetEnvOrDefault("CONTENT_MANAGER_STORAGE_MODE", STORAGE_MODE_MEMORY)),
		StoragePath: GetEnvOrDefault("CONTENT_MANAGER_STORAGE_PATH", "./seed"),
		UserSeed:    GetEnvOrDefault("CONTENT_MANAGER_USER_SEED", "users.json"),
		PostSeed:    GetEnvOrDefault("CONTENT_MANAGER_POST_SEED", "posts.json"),
		S3: S3Config{
			Endpoint:        GetEnvOrDefault("S3_ENDPOINT", ""),
			Region:          GetEnvOrDefault("S3_REGION", "us-east-1"),
			BucketName:      GetEnvOrDefault("S3_BUCKET_NAME", ""),
			AccessKeyID:     GetEnvOrDefault("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: GetEnvOrDefault("S3_SECRET_ACCESS_KEY", ""),
			UseSSL:          GetEnvBoolOrDefault("S3_USE_SSL", true),
		},
	}

	if config.PageSize <= 0 {
		return nil, fmt.Errorf("invalid CONTENT_MANAGER_PAGE_SIZE %d: must be positive", config.PageSize)
	}

	return config, nil
}
