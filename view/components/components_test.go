package components

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/siherrmann/contentManager/model"
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

func TestButton(t *testing.T) {
	html := renderString(t, Button("<Delete>", model.VARIANT_DANGER, true, templ.Attributes{"hx-get": "/manage/user/deletePopup?id=1"}))
	assert.Contains(t, html, `class="button button-danger"`)
	assert.Contains(t, html, `hx-get="/manage/user/deletePopup?id=1"`)
	assert.Contains(t, html, " disabled>")
	assert.Contains(t, html, "&lt;Delete&gt;", "Expected the label to be escaped")
}

func TestAlert(t *testing.T) {
	assert.Empty(t, renderString(t, Alert(ALERT_ERROR, "", true)))

	html := renderString(t, Alert(ALERT_SUCCESS, "Saved", true))
	assert.Contains(t, html, `class="alert alert-success"`)
	assert.Contains(t, html, "<span>Saved</span>")
	assert.Contains(t, html, `onclick="this.parentElement.remove()"`)

	html = renderString(t, Alert(ALERT_INFO, "ID: 1", false))
	assert.Contains(t, html, `class="alert alert-info"`)
	assert.NotContains(t, html, "alert-close")
}

func TestStatsGrid(t *testing.T) {
	html := renderString(t, StatsGrid([]model.Stat{
		{Label: "Total", Value: 12, Color: "blue"},
		{Label: "Admins", Value: 2, Color: "gray", Emphasis: true},
	}))
	assert.Contains(t, html, `<div class="stat-value">12</div>`)
	assert.Contains(t, html, "stat-value-emphasis")
	assert.Contains(t, html, "stat-gray")
}

func TestFormSelect(t *testing.T) {
	html := renderString(t, FormSelect("role", "Role", model.UserRoles, "admin"))
	assert.Contains(t, html, `<option value="admin" selected>Admin</option>`)
	assert.Contains(t, html, `<option value="user">User</option>`)
}

func TestPopups(t *testing.T) {
	assert.Contains(t, renderString(t, PopupSuccess("Info", "Done")), "popup-message-success")
	assert.Contains(t, renderString(t, PopupError("Error", "a < b")), "a &lt; b")
}

type record map[string]any

func (r record) Field(key string) any   { return r[key] }
func (r record) Fields() map[string]any { return r }

func TestDataTable(t *testing.T) {
	rows := []record{}
	for i := 1; i <= 12; i++ {
		rows = append(rows, record{"id": i, "name": fmt.Sprintf("row%02d", i)})
	}
	columns := []table.Column[record]{
		{Key: "id", Header: "ID", Sortable: true},
		{Key: "name", Header: "Name", Sortable: true},
		{Key: "badge", Header: "Badge", Render: func(row record) any { return Badge("new", "green") }},
	}
	options := table.DefaultOptions()
	options.Searchable = true
	options.Sortable = true

	view, err := table.New(columns, rows, options)
	require.NoError(t, err)
	view.ActivateHeader("name")

	html := renderString(t, DataTable(view, "/manage/user", "#content", nil))
	assert.Contains(t, html, `name="search"`)
	assert.Contains(t, html, "Page 1 of 2 (12 entries)")
	assert.Contains(t, html, `aria-sort="ascending"`)
	assert.Contains(t, html, `hx-get="/manage/user?dir=desc&amp;sort=name"`, "Expected the active header to toggle the direction")
	assert.Contains(t, html, `hx-get="/manage/user?dir=asc&amp;page=2&amp;sort=name"`, "Expected a next page link")
	assert.Contains(t, html, `class="badge badge-green"`)
	assert.Contains(t, html, "<td>row01</td>")
	assert.NotContains(t, html, "row11")

	t.Run("Cell renderer overrides the default", func(t *testing.T) {
		html := renderString(t, DataTable(view, "/manage/user", "#content", func(row record, key string, value any) templ.Component {
			if key == "name" {
				return Text("custom")
			}
			return nil
		}))
		assert.Contains(t, html, "<td>custom</td>")
	})

	t.Run("Empty table", func(t *testing.T) {
		view.SetSearch("nothing matches")
		html := renderString(t, DataTable(view, "/manage/user", "#content", nil))
		assert.Contains(t, html, "No data available")
		assert.Contains(t, html, "Page 1 of 1 (0 entries)")
	})
}

func TestStateUrl(t *testing.T) {
	assert.Equal(t, "/manage/post", StateUrl("/manage/post", table.InitialState()))
	assert.Equal(t, "/manage/post?page=3&search=a+b", StateUrl("/manage/post", table.ViewState{Page: 3, SearchTerm: "a b"}))
}
