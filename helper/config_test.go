package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		config, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "3000", config.Port)
		assert.Equal(t, 10, config.PageSize)
		assert.Equal(t, "und", config.Locale.String())
		assert.Equal(t, STORAGE_MODE_MEMORY, config.StorageMode)
		assert.Equal(t, "users.json", config.UserSeed)
		assert.Equal(t, "posts.json", config.PostSeed)
		assert.True(t, config.S3.UseSSL)
	})

	t.Run("Values from env", func(t *testing.T) {
		t.Setenv("CONTENT_MANAGER_PORT", "8080")
		t.Setenv("CONTENT_MANAGER_PAGE_SIZE", "25")
		t.Setenv("CONTENT_MANAGER_LOCALE", "de")
		t.Setenv("CONTENT_MANAGER_STORAGE_MODE", "LOCAL")
		t.Setenv("CONTENT_MANAGER_USER_SEED", "people.json")
		t.Setenv("S3_USE_SSL", "false")

		config, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "8080", config.Port)
		assert.Equal(t, 25, config.PageSize)
		assert.Equal(t, "de", config.Locale.String())
		assert.Equal(t, STORAGE_MODE_LOCAL, config.StorageMode)
		assert.Equal(t, "people.json", config.UserSeed)
		assert.False(t, config.S3.UseSSL)
	})

	t.Run("Invalid page size", func(t *testing.T) {
		t.Setenv("CONTENT_MANAGER_PAGE_SIZE", "0")
		_, err := LoadConfigFromEnv()
		assert.Error(t, err)
	})

	t.Run("Invalid locale", func(t *testing.T) {
		t.Setenv("CONTENT_MANAGER_LOCALE", "not a locale!")
		_, err := LoadConfigFromEnv()
		assert.Error(t, err)
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HELPER_TEST_INT", "x")
	assert.Equal(t, 7, GetEnvIntOrDefault("HELPER_TEST_INT", 7))
	assert.Equal(t, "fallback", GetEnvOrDefault("HELPER_TEST_MISSING", "fallback"))
	assert.Equal(t, "application/json", GetMimeType("users.json"))
	assert.Equal(t, "application/octet-stream", GetMimeType("seed.unknownext"))
}
