package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siherrmann/contentManager/model"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextMiddleware(t *testing.T) {
	m := NewMiddleware(false)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/manage/user?page=2", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "management-content")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var rc model.RequestContext
	err := m.RequestContextMiddleware(func(c echo.Context) error {
		rc = model.GetRequestContext(c)
		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "/manage/user", rc.Url)
	assert.True(t, rc.HxRequest)
	assert.Equal(t, "management-content", rc.HxTarget)
}

func TestCsrfMiddleware(t *testing.T) {
	m := NewMiddleware(false, DefaultTrustedOrigins("3000")...)
	e := echo.New()
	e.Use(m.CsrfMiddleware())

	token := ""
	e.GET("/", func(c echo.Context) error {
		token = csrf.Token(c.Request())
		return c.String(http.StatusOK, "ok")
	})
	e.POST("/api/user/add", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	t.Run("Safe methods pass and expose a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, token)
	})

	t.Run("Unsafe methods without token are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/add", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid CSRF token")
	})
}

func TestDefaultTrustedOrigins(t *testing.T) {
	assert.Equal(t, []string{"localhost:8080", "127.0.0.1:8080"}, DefaultTrustedOrigins("8080"))
}
