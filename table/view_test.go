package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record map[string]any

func (r record) Field(key string) any {
	return r[key]
}

func (r record) Fields() map[string]any {
	return r
}

func testColumns() []Column[record] {
	return []Column[record]{
		{Key: "username", Header: "Username", Sortable: true},
		{Key: "name", Header: "Name", Sortable: true},
		{Key: "age", Header: "Age", Sortable: true, Width: "80px"},
		{Key: "email", Header: "Email"},
	}
}

func testOptions() Options {
	options := DefaultOptions()
	options.Searchable = true
	options.Sortable = true
	return options
}

func testUsers(n int) []record {
	rows := []record{}
	for i := 1; i <= n; i++ {
		rows = append(rows, record{
			"username": fmt.Sprintf("user%d", i),
			"name":     fmt.Sprintf("User %d", i),
			"age":      20 + i,
			"email":    fmt.Sprintf("user%d@example.com", i),
		})
	}
	return rows
}

func usernames(rows []record) []string {
	names := []string{}
	for _, row := range rows {
		names = append(names, row["username"].(string))
	}
	return names
}

func TestNew(t *testing.T) {
	t.Run("Valid call New", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(3), testOptions())
		require.NoError(t, err)
		assert.Equal(t, InitialState(), view.State())
		assert.Len(t, view.Visible(), 3)
		assert.Equal(t, 1, view.TotalPages())
	})

	t.Run("Invalid call New with non-positive page size", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			options := testOptions()
			options.PageSize = size
			_, err := New(testColumns(), testUsers(3), options)
			assert.ErrorIs(t, err, ErrInvalidPageSize)
		}
	})

	t.Run("Invalid call New with duplicate column key", func(t *testing.T) {
		columns := append(testColumns(), Column[record]{Key: "age", Header: "Age again"})
		_, err := New(columns, nil, testOptions())
		assert.ErrorIs(t, err, ErrDuplicateColumn)
	})

	t.Run("Invalid call New with empty column key", func(t *testing.T) {
		_, err := New([]Column[record]{{Header: "No key"}}, nil, testOptions())
		assert.ErrorIs(t, err, ErrEmptyColumnKey)
	})
}

func TestSetRows(t *testing.T) {
	t.Run("Replacing rows resets the view state", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)

		view.ActivateHeader("age")
		view.SetSearch("user")
		require.True(t, view.NextPage())
		require.Equal(t, 2, view.State().Page)

		reset := view.SetRows(testUsers(30))
		assert.True(t, reset)
		assert.Equal(t, InitialState(), view.State())
	})

	t.Run("Passing the same rows again keeps the view state", func(t *testing.T) {
		rows := testUsers(25)
		view, err := New(testColumns(), rows, testOptions())
		require.NoError(t, err)

		view.SetSearch("user")
		view.NextPage()
		before := view.State()

		reset := view.SetRows(rows)
		assert.False(t, reset)
		assert.Equal(t, before, view.State())
	})

	t.Run("Shrinking result keeps the page in range", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)
		view.GoToPage(3)

		view.Apply(ViewState{Page: 3, SearchTerm: "user1"})
		assert.Equal(t, 2, view.State().Page, "user1, user10..user19 make 11 rows on 2 pages")
	})
}

func TestSetColumns(t *testing.T) {
	t.Run("Sort key missing from new schema is unset", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(5), testOptions())
		require.NoError(t, err)
		require.True(t, view.ActivateHeader("age"))

		err = view.SetColumns([]Column[record]{
			{Key: "username", Header: "Username", Sortable: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "", view.State().SortKey)
		assert.Equal(t, Ascending, view.State().SortDirection)
	})

	t.Run("Sort key present in new schema is kept", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(5), testOptions())
		require.NoError(t, err)
		view.ActivateHeader("age")
		view.ActivateHeader("age")

		err = view.SetColumns([]Column[record]{
			{Key: "age", Header: "Years", Sortable: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "age", view.State().SortKey)
		assert.Equal(t, Descending, view.State().SortDirection)
	})

	t.Run("Invalid schema is rejected and the old one stays", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(5), testOptions())
		require.NoError(t, err)

		err = view.SetColumns([]Column[record]{{Key: "a"}, {Key: "a"}})
		assert.ErrorIs(t, err, ErrDuplicateColumn)
		assert.Len(t, view.Columns(), 4)
	})
}

func TestSearch(t *testing.T) {
	t.Run("Search returns to the first page", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)
		view.GoToPage(3)

		view.SetSearch("example")
		assert.Equal(t, 1, view.State().Page)
		assert.Equal(t, 25, view.FilteredCount())
	})

	t.Run("Search is ignored when the table is not searchable", func(t *testing.T) {
		options := testOptions()
		options.Searchable = false
		view, err := New(testColumns(), testUsers(5), options)
		require.NoError(t, err)

		view.SetSearch("user3")
		assert.Equal(t, "user3", view.State().SearchTerm)
		assert.Equal(t, 5, view.FilteredCount())
	})

	t.Run("Search without matches shows one empty page", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(5), testOptions())
		require.NoError(t, err)

		view.SetSearch("nobody")
		assert.Empty(t, view.Visible())
		assert.Equal(t, 1, view.TotalPages())
		assert.Equal(t, 1, view.State().Page)
		assert.False(t, view.HasNext())
		assert.False(t, view.HasPrev())
	})
}

func TestActivateHeader(t *testing.T) {
	rows := []record{
		{"username": "carol", "name": "Carol", "age": 41},
		{"username": "alice", "name": "Alice", "age": 9},
		{"username": "bob", "name": "Bob", "age": 30},
	}

	t.Run("Header toggle scenario", func(t *testing.T) {
		view, err := New(testColumns(), rows, testOptions())
		require.NoError(t, err)

		require.True(t, view.ActivateHeader("age"))
		assert.Equal(t, []string{"alice", "bob", "carol"}, usernames(view.Visible()))
		assert.Equal(t, Ascending, view.State().SortDirection)

		require.True(t, view.ActivateHeader("age"))
		assert.Equal(t, []string{"carol", "bob", "alice"}, usernames(view.Visible()))
		assert.Equal(t, Descending, view.State().SortDirection)

		require.True(t, view.ActivateHeader("name"))
		assert.Equal(t, "name", view.State().SortKey)
		assert.Equal(t, Ascending, view.State().SortDirection)
		assert.Equal(t, []string{"alice", "bob", "carol"}, usernames(view.Visible()))
	})

	t.Run("Non-sortable header does not change the sort key", func(t *testing.T) {
		view, err := New(testColumns(), rows, testOptions())
		require.NoError(t, err)
		view.ActivateHeader("age")

		assert.False(t, view.ActivateHeader("email"))
		assert.False(t, view.ActivateHeader("missing"))
		assert.Equal(t, "age", view.State().SortKey)
	})

	t.Run("Headers are ignored when the table is not sortable", func(t *testing.T) {
		options := testOptions()
		options.Sortable = false
		view, err := New(testColumns(), rows, options)
		require.NoError(t, err)

		assert.False(t, view.ActivateHeader("age"))
		assert.Equal(t, "", view.State().SortKey)
		for _, header := range view.Headers() {
			assert.False(t, header.Sortable)
		}
	})

	t.Run("Sorting keeps the current page", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)
		view.GoToPage(2)

		view.ActivateHeader("age")
		assert.Equal(t, 2, view.State().Page)
	})

	t.Run("Headers mark the active sort", func(t *testing.T) {
		view, err := New(testColumns(), rows, testOptions())
		require.NoError(t, err)
		view.ActivateHeader("age")
		view.ActivateHeader("age")

		headers := view.Headers()
		require.Len(t, headers, 4)
		assert.Equal(t, "Age", headers[2].Label)
		assert.Equal(t, "80px", headers[2].Width)
		assert.True(t, headers[2].Active)
		assert.Equal(t, "▼", headers[2].Indicator())
		assert.Equal(t, "", headers[0].Indicator())
		assert.False(t, headers[3].Sortable)
	})
}

func TestPagination(t *testing.T) {
	t.Run("Pagination bounds", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)
		assert.Equal(t, 3, view.TotalPages())

		assert.False(t, view.PrevPage(), "previous on page 1 is a no-op")
		assert.Equal(t, 1, view.State().Page)

		assert.True(t, view.NextPage())
		assert.True(t, view.NextPage())
		assert.Equal(t, 3, view.State().Page)
		assert.Len(t, view.Visible(), 5)

		assert.False(t, view.NextPage(), "next on the last page is a no-op")
		assert.Equal(t, 3, view.State().Page)

		assert.True(t, view.PrevPage())
		assert.Equal(t, 2, view.State().Page)
	})

	t.Run("GoToPage clamps", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)
		assert.Equal(t, 3, view.GoToPage(9))
		assert.Equal(t, 1, view.GoToPage(-4))
	})
}

func TestActivateRow(t *testing.T) {
	view, err := New(testColumns(), testUsers(12), testOptions())
	require.NoError(t, err)
	view.NextPage()

	var activated []record
	view.OnRowActivate(func(row record) {
		activated = append(activated, row)
	})
	before := view.State()

	t.Run("Activating a visible row notifies the callback", func(t *testing.T) {
		row, ok := view.ActivateRow(1)
		require.True(t, ok)
		assert.Equal(t, "user12", row["username"])
		require.Len(t, activated, 1)
		assert.Equal(t, "user12", activated[0]["username"])
		assert.Equal(t, before, view.State())
	})

	t.Run("Activating an index outside the page does nothing", func(t *testing.T) {
		_, ok := view.ActivateRow(2)
		assert.False(t, ok)
		assert.Len(t, activated, 1)
	})
}

func TestApply(t *testing.T) {
	t.Run("Unknown sort key is dropped", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(5), testOptions())
		require.NoError(t, err)

		view.Apply(ViewState{Page: 1, SortKey: "missing", SortDirection: Descending})
		assert.Equal(t, "", view.State().SortKey)
		assert.Equal(t, []string{"user1", "user2", "user3", "user4", "user5"}, usernames(view.Visible()))
	})

	t.Run("Sort key is dropped when the table is not sortable", func(t *testing.T) {
		options := testOptions()
		options.Sortable = false
		view, err := New(testColumns(), testUsers(3), options)
		require.NoError(t, err)

		view.Apply(ViewState{Page: 1, SortKey: "age", SortDirection: Descending})
		assert.Equal(t, "", view.State().SortKey)
		assert.Equal(t, Ascending, view.State().SortDirection)
		assert.Equal(t, []string{"user1", "user2", "user3"}, usernames(view.Visible()))
	})

	t.Run("Valid state is restored", func(t *testing.T) {
		view, err := New(testColumns(), testUsers(25), testOptions())
		require.NoError(t, err)

		view.Apply(ViewState{Page: 2, SearchTerm: "USER2", SortKey: "age", SortDirection: Descending})
		assert.Equal(t, ViewState{Page: 1, SearchTerm: "USER2", SortKey: "age", SortDirection: Descending}, view.State())
		assert.Equal(t, []string{"user25", "user24", "user23", "user22", "user21", "user20", "user2"}, usernames(view.Visible()))
	})
}

func TestEndToEnd(t *testing.T) {
	rows := []record{
		{"username": "admin1", "name": "First Admin", "age": 40, "email": "admin1@example.com"},
	}
	rows = append(rows, testUsers(10)...)
	rows = append(rows, record{"username": "admin2", "name": "Second Admin", "age": 38, "email": "admin2@example.com"})
	require.Len(t, rows, 12)

	view, err := New(testColumns(), rows, testOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalPages())

	view.SetSearch("ad")
	assert.Equal(t, 2, view.FilteredCount())
	assert.Equal(t, 1, view.TotalPages())

	view.ActivateHeader("username")
	view.ActivateHeader("username")
	assert.Equal(t, []string{"admin2", "admin1"}, usernames(view.Visible()))
}

func TestCells(t *testing.T) {
	columns := testColumns()
	columns[1].Render = func(row record) any {
		return "<" + row["name"].(string) + ">"
	}
	view, err := New(columns, testUsers(1), testOptions())
	require.NoError(t, err)

	cells := view.Cells(view.Visible()[0])
	assert.Equal(t, []any{"user1", "<User 1>", 21, "user1@example.com"}, cells)
}
