package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/view/screens"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormContext(e *echo.Echo, target string, entity string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues(entity)
	return c, rec
}

func TestAddEntity(t *testing.T) {
	ctx := context.Background()
	handler, users, posts := newTestHandler(t)
	e := echo.New()

	t.Run("AddEntity with valid user", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/add", "user", url.Values{
			"username": {"carol"},
			"email":    {"carol@example.com"},
			"role":     {"moderator"},
		})

		err := handler.AddEntity(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, screens.RefreshTrigger, rec.Header().Get("HX-Trigger"))
		assert.Contains(t, rec.Body.String(), "User created successfully")

		all, err := users.SelectAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, model.ROLE_MODERATOR, all[3].Role)
		assert.Equal(t, model.USER_STATUS_ACTIVE, all[3].Status, "Expected the default status")
	})

	t.Run("AddEntity with valid post", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/post/add", "post", url.Values{
			"title":    {"New post"},
			"author":   {"carol"},
			"category": {"accessibility"},
			"content":  {"Hello"},
		})

		err := handler.AddEntity(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, rec.Code)
		post, err := posts.SelectPost(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "New post", post.Title)
		assert.Equal(t, model.POST_STATUS_DRAFT, post.Status)
	})

	t.Run("AddEntity with missing username", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/add", "user", url.Values{
			"email": {"nobody@example.com"},
		})

		err := handler.AddEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("AddEntity with taken username", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/add", "user", url.Values{
			"username": {"alice"},
			"email":    {"other@example.com"},
		})

		err := handler.AddEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("AddEntity with unknown entity", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/comment/add", "comment", url.Values{})

		err := handler.AddEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateEntity(t *testing.T) {
	ctx := context.Background()
	handler, users, posts := newTestHandler(t)
	e := echo.New()

	t.Run("UpdateEntity with valid data", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/update?id=2", "user", url.Values{
			"username": {"alice2"},
			"email":    {"alice2@example.com"},
			"status":   {"inactive"},
		})

		err := handler.UpdateEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "User updated successfully")

		user, err := users.SelectUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
		assert.Equal(t, model.USER_STATUS_INACTIVE, user.Status)
		assert.Equal(t, model.ROLE_USER, user.Role, "Expected the role to stay unchanged")
	})

	t.Run("UpdateEntity with partial json keeps the other fields", func(t *testing.T) {
		inserted, err := posts.InsertPost(ctx, &model.Post{Title: "Guide", Author: "alice", Category: "design", Content: "Long text"})
		require.NoError(t, err)
		id := inserted.ID

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/post/update?id=%d", id), strings.NewReader(`{"title": "Guide v2", "author": "alice"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("entity")
		c.SetParamValues("post")

		err = handler.UpdateEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		post, err := posts.SelectPost(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Guide v2", post.Title)
		assert.Equal(t, "Long text", post.Content, "Expected the content to stay unchanged")
		assert.Equal(t, "design", post.Category, "Expected the category to stay unchanged")
	})

	t.Run("UpdateEntity with an empty form field clears it", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/post/update?id=1", "post", url.Values{
			"title":    {"Draft post"},
			"author":   {"alice"},
			"category": {""},
		})

		err := handler.UpdateEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		post, err := posts.SelectPost(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "", post.Category)
	})

	t.Run("UpdateEntity with unknown id", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/update?id=42", "user", url.Values{
			"username": {"x"},
			"email":    {"x@example.com"},
		})

		err := handler.UpdateEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UpdateEntity with invalid id", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/update?id=abc", "user", url.Values{})

		err := handler.UpdateEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteEntity(t *testing.T) {
	ctx := context.Background()
	handler, users, _ := newTestHandler(t)
	e := echo.New()

	t.Run("DeleteEntity for an admin", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/delete?id=1", "user", url.Values{})

		err := handler.DeleteEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("DeleteEntity", func(t *testing.T) {
		c, rec := newFormContext(e, "/api/user/delete?id=3", "user", url.Values{})

		err := handler.DeleteEntity(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "User deleted successfully")

		_, err = users.SelectUser(ctx, 3)
		assert.Error(t, err)
	})
}

func TestTransitionPost(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	e := echo.New()

	newContext := func(target string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("Archive a draft", func(t *testing.T) {
		c, rec := newContext("/api/post/archive?id=1")
		require.NoError(t, handler.ArchivePost(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Publish a draft", func(t *testing.T) {
		c, rec := newContext("/api/post/publish?id=1")
		require.NoError(t, handler.PublishPost(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "published successfully")
		assert.Contains(t, rec.Body.String(), `"status":"published"`)
	})

	t.Run("Archive and restore", func(t *testing.T) {
		c, rec := newContext("/api/post/archive?id=2")
		require.NoError(t, handler.ArchivePost(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		c, rec = newContext("/api/post/restore?id=2")
		require.NoError(t, handler.RestorePost(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"draft"`)
	})

	t.Run("Publish unknown post", func(t *testing.T) {
		c, rec := newContext("/api/post/publish?id=99")
		require.NoError(t, handler.PublishPost(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetEntities(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/user/list?sort=username&dir=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues("user")

	err := handler.GetEntities(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Page)
	assert.Equal(t, 1, response.TotalPages)
	assert.Equal(t, 3, response.Filtered)
	assert.Equal(t, "desc", response.Direction)
	require.Len(t, response.Rows, 3)
	assert.Equal(t, "bob", response.Rows[0]["username"])
	assert.Equal(t, "admin", response.Rows[2]["username"])
}

func TestExportEntities(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/post/export?search=live", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues("post")

	err := handler.ExportEntities(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=posts_")

	var export []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &export))
	require.Len(t, export, 1)
	assert.Equal(t, "Live post", export[0]["title"])
}
