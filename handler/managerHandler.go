package handler

import (
	"log/slog"
	"net/http"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/page"
	"github.com/siherrmann/contentManager/service"
	"github.com/siherrmann/contentManager/table"

	"github.com/labstack/echo/v4"
	"github.com/siherrmann/validator"
)

type ManagerHandler struct {
	users     service.UserServiceFunctions
	posts     service.PostServiceFunctions
	validator *validator.Validator
	options   table.Options
	logger    *slog.Logger
}

func NewManagerHandler(users service.UserServiceFunctions, posts service.PostServiceFunctions, options table.Options, logger *slog.Logger) *ManagerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManagerHandler{
		users:     users,
		posts:     posts,
		validator: validator.NewValidator(),
		options:   options,
		logger:    logger,
	}
}

// Health check handler
func (m *ManagerHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "content-manager",
	})
}

// newPage creates a management page for the :entity path parameter.
func (m *ManagerHandler) newPage(c echo.Context) (*page.ManagementPage, error) {
	entityType, err := model.ParseEntityType(c.Param("entity"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return page.NewManagementPage(m.users, m.posts, entityType, m.options)
}
