package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/storage"

	"github.com/siherrmann/queuer/helper"
)

// LoadUserSeed inserts the users of the JSON file at path. Users that fail to insert are skipped.
func LoadUserSeed(ctx context.Context, fs storage.Filesystem, path string, users UserServiceFunctions, logger *slog.Logger) (int, error) {
	var seed []*model.User
	if err := readSeed(fs, path, &seed); err != nil {
		return 0, err
	}

	loaded := 0
	for _, user := range seed {
		insertedUser, err := users.InsertUser(ctx, user)
		if err != nil {
			logger.Warn("Failed to insert user", "username", user.Username, "error", err)
			continue
		}
		loaded++
		logger.Debug("User loaded from seed", "id", insertedUser.ID, "username", insertedUser.Username)
	}

	logger.Info("Finished loading users from seed", "file", path, "total", len(seed), "loaded", loaded)
	return loaded, nil
}

// LoadPostSeed inserts the posts of the JSON file at path. Posts that fail to insert are skipped.
func LoadPostSeed(ctx context.Context, fs storage.Filesystem, path string, posts PostServiceFunctions, logger *slog.Logger) (int, error) {
	var seed []*model.Post
	if err := readSeed(fs, path, &seed); err != nil {
		return 0, err
	}

	loaded := 0
	for _, post := range seed {
		insertedPost, err := posts.InsertPost(ctx, post)
		if err != nil {
			logger.Warn("Failed to insert post", "title", post.Title, "error", err)
			continue
		}
		loaded++
		logger.Debug("Post loaded from seed", "id", insertedPost.ID, "title", insertedPost.Title)
	}

	logger.Info("Finished loading posts from seed", "file", path, "total", len(seed), "loaded", loaded)
	return loaded, nil
}

func readSeed(fs storage.Filesystem, path string, v any) error {
	file, err := fs.Open(path)
	if err != nil {
		return helper.NewError("open seed file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return helper.NewError("read seed file", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return helper.NewError("decode seed file", err)
	}
	return nil
}
