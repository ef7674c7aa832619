package screens

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/page"
	"github.com/siherrmann/contentManager/service"
	"github.com/siherrmann/contentManager/table"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, component templ.Component) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, component.Render(context.Background(), buf))
	return buf.String()
}

func newTestPage(t *testing.T, entityType model.EntityType) *page.ManagementPage {
	t.Helper()
	ctx := context.Background()

	users := service.NewUserService(nil)
	_, err := users.InsertUser(ctx, &model.User{Username: "admin", Email: "admin@example.com", Role: model.ROLE_ADMIN})
	require.NoError(t, err)
	posts := service.NewPostService(nil)
	_, err = posts.InsertPost(ctx, &model.Post{Title: "Live post", Author: "bob", Category: "design", Status: model.POST_STATUS_PUBLISHED, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	p, err := page.NewManagementPage(users, posts, entityType, table.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, p.Load(ctx))
	return p
}

func TestManagement(t *testing.T) {
	html := renderString(t, Management(newTestPage(t, model.ENTITY_POST), "token123"))
	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, `hx-headers="{&#34;X-CSRF-Token&#34;:&#34;token123&#34;}"`)
	assert.Contains(t, html, `id="management-content"`)
}

func TestManagementContent(t *testing.T) {
	t.Run("Posts", func(t *testing.T) {
		html := renderString(t, ManagementContent(newTestPage(t, model.ENTITY_POST)))
		assert.Contains(t, html, "Post Management")
		assert.Contains(t, html, "New Post")
		assert.Contains(t, html, `<span class="badge badge-green">Published</span>`)
		assert.Contains(t, html, "<td>Design</td>")
		assert.Contains(t, html, "<td>2024-01-02</td>")
		assert.Contains(t, html, `hx-post="/api/post/archive?id=1"`)
		assert.Contains(t, html, `hx-get="/manage/post/updatePopup?id=1"`)
		assert.Contains(t, html, "refreshContent from:body")
	})

	t.Run("Users", func(t *testing.T) {
		p := newTestPage(t, model.ENTITY_USER)
		p.DismissSuccess()
		html := renderString(t, ManagementContent(p))
		assert.Contains(t, html, "User Management")
		assert.Contains(t, html, `<span class="badge badge-red">Admin</span>`)
		assert.Contains(t, html, `hx-get="/manage/user/deletePopup?id=1" disabled>Delete</button>`, "Expected admin delete to be disabled")
		assert.NotContains(t, html, "Publish")
	})
}

func TestEntityPopup(t *testing.T) {
	t.Run("Closed", func(t *testing.T) {
		assert.Empty(t, renderString(t, EntityPopup(model.ENTITY_USER, model.ModalClosed{}, "token")))
	})

	t.Run("Creating user", func(t *testing.T) {
		html := renderString(t, EntityPopup(model.ENTITY_USER, model.ModalCreating{Draft: model.DefaultDraft(model.ENTITY_USER)}, "token"))
		assert.Contains(t, html, "New User")
		assert.Contains(t, html, `hx-post="/api/user/add"`)
		assert.Contains(t, html, `name="gorilla.csrf.Token" value="token"`)
		assert.Contains(t, html, `<option value="active" selected>Active</option>`)
		assert.Contains(t, html, ">Create</button>")
		assert.NotContains(t, html, "alert-info", "Expected no entity info while creating")
	})

	t.Run("Editing post", func(t *testing.T) {
		draft := model.DataMap{
			"title":      "Hello",
			"author":     "alice",
			"category":   "design",
			"content":    "<b>x</b>",
			"created_at": time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			"views":      42,
		}
		html := renderString(t, EntityPopup(model.ENTITY_POST, model.ModalEditing{ID: 4, Draft: draft}, "token"))
		assert.Contains(t, html, "Edit Post")
		assert.Contains(t, html, `hx-post="/api/post/update?id=4"`)
		assert.Contains(t, html, `value="Hello"`)
		assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
		assert.Contains(t, html, ">Save</button>")
		assert.Contains(t, html, `class="alert alert-info"`)
		assert.Contains(t, html, "<span>ID: 4 | created: 2024-03-05 | views: 42</span>")
	})

	t.Run("Editing user", func(t *testing.T) {
		draft := model.DataMap{"username": "admin", "created_at": time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
		html := renderString(t, EntityPopup(model.ENTITY_USER, model.ModalEditing{ID: 1, Draft: draft}, "token"))
		assert.Contains(t, html, "<span>ID: 1 | created: 2024-01-02</span>")
		assert.NotContains(t, html, "views")
	})
}

func TestDeletePopup(t *testing.T) {
	html := renderString(t, DeletePopup(&model.Post{ID: 7, Title: "Hello"}, "token"))
	assert.Contains(t, html, "Delete Post")
	assert.Contains(t, html, `hx-post="/api/post/delete?id=7"`)
	assert.Contains(t, html, "Do you really want to delete Post 7?")
}
