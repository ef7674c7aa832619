package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/siherrmann/contentManager/view/components"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

func HandleErrorView(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message interface{}
	message = err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message
	}
	slog.Error("Request failed", "code", code, "path", c.Request().URL.Path, "error", err)

	if err := renderPopupOrJson(c, code, fmt.Sprint(message)); err != nil {
		slog.Error("Failed to render error", "error", err)
	}
}

func HandleCSRFErrorView(w http.ResponseWriter, r *http.Request) {
	err := csrf.FailureReason(r)
	slog.Warn("CSRF validation failed", "path", r.URL.Path, "error", err)
	if err := renderPopupHTTP(w, components.PopupError("Error", "Invalid CSRF token, please reload the page."), http.StatusForbidden); err != nil {
		slog.Error("Failed to render CSRF error", "error", err)
	}
}
