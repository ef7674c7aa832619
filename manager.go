package contentManager

import (
	"context"
	"embed"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/siherrmann/contentManager/handler"
	"github.com/siherrmann/contentManager/helper"
	"github.com/siherrmann/contentManager/service"
	"github.com/siherrmann/contentManager/storage"
	"github.com/siherrmann/contentManager/table"

	"github.com/labstack/echo/v4"
	qh "github.com/siherrmann/queuer/helper"
)

//go:embed seed/*.json
var defaultSeed embed.FS

// ManagerServer initializes the manager handler, sets up routes, and starts the Echo server.
// It shuts down gracefully on SIGINT or SIGTERM.
func ManagerServer(config *helper.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logger
	opts := qh.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(qh.NewPrettyHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	mh, err := InitManagerHandler(ctx, config, logger)
	if err != nil {
		log.Fatalf("Failed to initialize manager handler: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	SetupRoutes(e, mh, config)

	go func() {
		logger.Info("Starting content manager", "port", config.Port, "storage", config.StorageMode)
		if err := e.Start(":" + config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down content manager")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server", "error", err)
	}
}

// InitManagerHandler creates the services, loads the seed files from the configured storage and
// returns the manager handler. Missing or broken seed files are logged and skipped.
func InitManagerHandler(ctx context.Context, config *helper.Config, logger *slog.Logger) (*handler.ManagerHandler, error) {
	// Create filesystem from configuration
	filesystem, err := storage.CreateFilesystem(config)
	if err != nil {
		return nil, qh.NewError("create filesystem", err)
	}

	// The memory filesystem starts with the bundled demo data
	if memory, ok := filesystem.(*storage.FilesystemMemory); ok {
		if err := writeDefaultSeed(memory); err != nil {
			return nil, qh.NewError("write default seed", err)
		}
	}

	users := service.NewUserService(logger)
	posts := service.NewPostService(logger)

	available := seedFiles(filesystem, logger)
	if seedAvailable(available, config.UserSeed, logger) {
		if _, err := service.LoadUserSeed(ctx, filesystem, config.UserSeed, users, logger); err != nil {
			logger.Warn("Failed to load users from seed", "file", config.UserSeed, "error", err)
		}
	}
	if seedAvailable(available, config.PostSeed, logger) {
		if _, err := service.LoadPostSeed(ctx, filesystem, config.PostSeed, posts, logger); err != nil {
			logger.Warn("Failed to load posts from seed", "file", config.PostSeed, "error", err)
		}
	}

	options := table.DefaultOptions()
	options.PageSize = config.PageSize
	options.Locale = config.Locale
	options.Searchable = true
	options.Sortable = true
	options.Striped = true

	return handler.NewManagerHandler(users, posts, options, logger), nil
}

// seedFiles returns the names of all files in filesystem. It returns nil if
// the listing fails, the loaders then report missing files themselves.
func seedFiles(filesystem storage.Filesystem, logger *slog.Logger) map[string]bool {
	files, err := filesystem.ListFiles()
	if err != nil {
		logger.Warn("Failed to list seed files", "error", err)
		return nil
	}

	names := map[string]bool{}
	for _, file := range files {
		names[file.Name] = true
	}
	logger.Debug("Seed files found", "count", len(names))
	return names
}

func seedAvailable(available map[string]bool, name string, logger *slog.Logger) bool {
	if name == "" {
		return false
	}
	if available != nil && !available[path.Clean(strings.TrimPrefix(name, "/"))] {
		logger.Warn("Seed file not found", "file", name)
		return false
	}
	return true
}

func writeDefaultSeed(memory *storage.FilesystemMemory) error {
	entries, err := defaultSeed.ReadDir("seed")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		file, err := defaultSeed.Open(path.Join("seed", entry.Name()))
		if err != nil {
			return err
		}
		err = memory.Write(entry.Name(), file)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
