package contentManager

import (
	"net/http"

	"github.com/siherrmann/contentManager/handler"
	"github.com/siherrmann/contentManager/helper"
	mw "github.com/siherrmann/contentManager/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all view and API routes for the content manager
func SetupRoutes(e *echo.Echo, h *handler.ManagerHandler, config *helper.Config) {
	e.HTTPErrorHandler = handler.HandleErrorView

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// Custom Middleware
	m := mw.NewMiddleware(false, mw.DefaultTrustedOrigins(config.Port)...)
	e.Use(m.CsrfMiddleware())
	e.Use(m.RequestContextMiddleware)

	// View routes
	e.GET("/health", h.HealthCheck)
	e.GET("/", h.IndexView)

	manage := e.Group("/manage")
	manage.GET("/:entity", h.ManageView)
	manage.GET("/:entity/addPopup", h.AddPopupView)
	manage.GET("/:entity/updatePopup", h.UpdatePopupView)
	manage.GET("/:entity/deletePopup", h.DeletePopupView)

	// API routes
	api := e.Group("/api")

	posts := api.Group("/post")
	posts.POST("/publish", h.PublishPost)
	posts.POST("/archive", h.ArchivePost)
	posts.POST("/restore", h.RestorePost)

	entities := api.Group("/:entity")
	entities.POST("/add", h.AddEntity)
	entities.POST("/update", h.UpdateEntity)
	entities.POST("/delete", h.DeleteEntity)
	entities.GET("/list", h.GetEntities)
	entities.GET("/export", h.ExportEntities)

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Static("/static/", "./view/static")
}
