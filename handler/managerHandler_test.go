package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/service"
	"github.com/siherrmann/contentManager/table"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler returns a handler over one admin, two users and two posts.
func newTestHandler(t *testing.T) (*ManagerHandler, *service.UserService, *service.PostService) {
	t.Helper()
	ctx := context.Background()

	users := service.NewUserService(nil)
	for _, user := range []*model.User{
		{Username: "admin", Email: "admin@example.com", Role: model.ROLE_ADMIN},
		{Username: "alice", Email: "alice@example.com"},
		{Username: "bob", Email: "bob@example.com", Status: model.USER_STATUS_SUSPENDED},
	} {
		_, err := users.InsertUser(ctx, user)
		require.NoError(t, err)
	}

	posts := service.NewPostService(nil)
	for _, post := range []*model.Post{
		{Title: "Draft post", Author: "alice", Category: "design"},
		{Title: "Live post", Author: "bob", Category: "development", Status: model.POST_STATUS_PUBLISHED, Views: 10},
	} {
		_, err := posts.InsertPost(ctx, post)
		require.NoError(t, err)
	}

	options := table.DefaultOptions()
	options.Searchable = true
	options.Sortable = true

	return NewManagerHandler(users, posts, options, nil), users, posts
}

func TestHealthCheck(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	e := echo.New()

	t.Run("Should return healthy status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.HealthCheck(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "healthy")
		assert.Contains(t, rec.Body.String(), "content-manager")
	})
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Not found", service.ErrNotFound, http.StatusNotFound},
		{"Invalid", service.ErrInvalid, http.StatusBadRequest},
		{"Conflict", service.ErrConflict, http.StatusConflict},
		{"Unsupported action", model.ErrUnsupportedAction, http.StatusBadRequest},
		{"HTTP error", echo.NewHTTPError(http.StatusTeapot, "tea"), http.StatusTeapot},
		{"Other", context.Canceled, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.status, statusForError(test.err))
		})
	}
}

func TestRenderPopupOrJson(t *testing.T) {
	e := echo.New()

	t.Run("JSON for plain requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/add", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := renderPopupOrJson(c, http.StatusConflict, "Username taken")
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error": "Username taken"}`, rec.Body.String())
	})

	t.Run("Popup for htmx requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/add", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := renderPopupOrJson(c, http.StatusOK, "Saved")
		require.NoError(t, err)
		assert.Equal(t, "#body", rec.Header().Get("HX-Retarget"))
		assert.Equal(t, "beforeend", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), "popup-message-success")
	})

	t.Run("No value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, renderPopupOrJson(c, http.StatusNoContent))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
