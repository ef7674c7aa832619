package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/service"
	"github.com/siherrmann/contentManager/table"
	"github.com/siherrmann/contentManager/view/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(ctx echo.Context, t templ.Component, status ...int) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := t.Render(ctx.Request().Context(), buf); err != nil {
		return err
	}

	if len(status) > 0 {
		return ctx.HTML(status[0], buf.String())
	}
	return ctx.HTML(http.StatusOK, buf.String())
}

func renderPopup(c echo.Context, component templ.Component, status ...int) error {
	c.Response().Header().Add("HX-Retarget", "#body")
	c.Response().Header().Add("HX-Reswap", "beforeend")
	return render(c, component, status...)
}

func renderHTTP(writer http.ResponseWriter, t templ.Component, status int) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := t.Render(context.Background(), buf); err != nil {
		return err
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	fmt.Fprint(writer, buf.String())
	return nil
}

func renderPopupHTTP(writer http.ResponseWriter, component templ.Component, status int) error {
	writer.Header().Add("HX-Retarget", "#body")
	writer.Header().Add("HX-Reswap", "beforeend")
	return renderHTTP(writer, component, status)
}

// renderPopupOrJson answers htmx requests with a popup and everything else
// with JSON. The first value is the message, an optional second one is
// returned as the JSON value.
func renderPopupOrJson(c echo.Context, status int, value ...any) error {
	// No value to render
	if len(value) == 0 {
		return c.NoContent(status)
	}

	messageStr := ""
	if messageTemp, ok := value[0].(string); ok {
		messageStr = messageTemp
	} else {
		messageStr = fmt.Sprintf("%v", value[0])
	}

	// If HTMX request, render popup
	if model.GetRequestContext(c).HxRequest || c.Request().Header.Get("HX-Request") != "" {
		if status >= 200 && status < 300 {
			return renderPopup(c, components.PopupSuccess("Info", messageStr), status)
		}
		return renderPopup(c, components.PopupError("Error", messageStr), status)
	}

	// Otherwise, return JSON with message and optional value
	values := map[string]any{}
	if status >= 200 && status < 300 {
		values["message"] = messageStr
	} else {
		values["error"] = messageStr
	}
	if len(value) > 1 {
		values["value"] = value[1]
	}

	return c.JSON(status, values)
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var httpError *echo.HTTPError
	switch {
	case errors.As(err, &httpError):
		return httpError.Code
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnsupportedAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the message of an echo.HTTPError or the error text.
func errorMessage(err error) string {
	var httpError *echo.HTTPError
	if errors.As(err, &httpError) {
		return fmt.Sprint(httpError.Message)
	}
	return err.Error()
}

// queryId reads the required id query parameter.
func queryId(c echo.Context) (int, error) {
	idStr := c.QueryParam("id")
	if idStr == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Missing id")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid id: %v", idStr))
	}
	return id, nil
}

// viewState reads the table state from the search, sort, dir and page query parameters.
func viewState(c echo.Context) table.ViewState {
	state := table.InitialState()
	state.SearchTerm = c.QueryParam("search")
	state.SortKey = c.QueryParam("sort")
	state.SortDirection = table.ParseDirection(c.QueryParam("dir"))
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		state.Page = page
	}
	return state
}
