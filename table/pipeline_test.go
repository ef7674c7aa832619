package table

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFilter(t *testing.T) {
	rows := []record{
		{"id": 1, "name": "Alice", "active": true},
		{"id": 2, "name": "bob", "active": false},
		{"id": 3, "name": "Malice", "note": nil},
		{"id": 42, "name": "Carol"},
	}

	t.Run("Empty term is the identity", func(t *testing.T) {
		assert.Equal(t, rows, Filter(rows, ""))
	})

	t.Run("Filter is case-insensitive", func(t *testing.T) {
		upper := Filter(rows, "Alice")
		lower := Filter(rows, "alice")
		assert.Equal(t, upper, lower)
		assert.Equal(t, []record{rows[0], rows[2]}, lower)
	})

	t.Run("Filter keeps a subsequence in input order", func(t *testing.T) {
		filtered := Filter(rows, "a")
		assert.Equal(t, []record{rows[0], rows[1], rows[2], rows[3]}, filtered)

		filtered = Filter(rows, "o")
		assert.Equal(t, []record{rows[1], rows[3]}, filtered)
	})

	t.Run("Numbers and booleans match their literal text", func(t *testing.T) {
		assert.Equal(t, []record{rows[3]}, Filter(rows, "42"))
		assert.Equal(t, []record{rows[0]}, Filter(rows, "TRUE"))
	})

	t.Run("Nil fields never match", func(t *testing.T) {
		assert.Empty(t, Filter(rows, "nil"))
		assert.Empty(t, Filter(rows, "<nil>"))
	})
}

type score int

type ratio float32

type label string

func TestSort(t *testing.T) {
	comparator := NewComparator(language.Und)

	t.Run("Numeric values sort numerically", func(t *testing.T) {
		rows := []record{{"v": 10}, {"v": 2}, {"v": 1}}
		sorted := Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{"v": 1}, {"v": 2}, {"v": 10}}, sorted)
	})

	t.Run("String values sort lexically", func(t *testing.T) {
		rows := []record{{"v": "10"}, {"v": "2"}, {"v": "1"}}
		sorted := Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{"v": "1"}, {"v": "10"}, {"v": "2"}}, sorted)
	})

	t.Run("Mixed numeric kinds compare numerically", func(t *testing.T) {
		rows := []record{{"v": 2.5}, {"v": int64(3)}, {"v": uint8(1)}}
		sorted := Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{"v": uint8(1)}, {"v": 2.5}, {"v": int64(3)}}, sorted)
	})

	t.Run("Named numeric types sort numerically", func(t *testing.T) {
		rows := []record{{"v": score(10)}, {"v": score(2)}, {"v": score(1)}}
		sorted := Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{"v": score(1)}, {"v": score(2)}, {"v": score(10)}}, sorted)

		rows = []record{{"v": ratio(0.75)}, {"v": 3}, {"v": ratio(0.5)}}
		sorted = Sort(rows, "v", Descending, comparator)
		assert.Equal(t, []record{{"v": 3}, {"v": ratio(0.75)}, {"v": ratio(0.5)}}, sorted)
	})

	t.Run("Collation orders case and accents sensibly", func(t *testing.T) {
		rows := []record{{"v": "Zoe"}, {"v": "émile"}, {"v": "adam"}, {"v": "Bob"}}
		sorted := Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{"v": "adam"}, {"v": "Bob"}, {"v": "émile"}, {"v": "Zoe"}}, sorted)
	})

	t.Run("Sort is stable in both directions", func(t *testing.T) {
		rows := []record{
			{"k": 1, "id": "a"},
			{"k": 2, "id": "b"},
			{"k": 1, "id": "c"},
			{"k": 2, "id": "d"},
			{"k": 1, "id": "e"},
		}
		ids := func(rows []record) []string {
			out := []string{}
			for _, row := range rows {
				out = append(out, row["id"].(string))
			}
			return out
		}

		assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(Sort(rows, "k", Ascending, comparator)))
		assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(Sort(rows, "k", Descending, comparator)))
	})

	t.Run("Missing values sort as empty strings", func(t *testing.T) {
		rows := []record{{"v": "b"}, {}, {"v": "a"}}
		sorted := Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{}, {"v": "a"}, {"v": "b"}}, sorted)
	})

	t.Run("Empty key returns the input and does not touch it", func(t *testing.T) {
		rows := []record{{"v": 3}, {"v": 1}}
		assert.Equal(t, rows, Sort(rows, "", Ascending, comparator))

		Sort(rows, "v", Ascending, comparator)
		assert.Equal(t, []record{{"v": 3}, {"v": 1}}, rows)
	})
}

func TestPageStage(t *testing.T) {
	rows := make([]int, 25)
	for i := range rows {
		rows[i] = i
	}

	t.Run("TotalPages", func(t *testing.T) {
		assert.Equal(t, 3, TotalPages(25, 10))
		assert.Equal(t, 2, TotalPages(20, 10))
		assert.Equal(t, 1, TotalPages(0, 10))
		assert.Equal(t, 1, TotalPages(5, 10))
	})

	t.Run("Page slices", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Page(rows, 1, 10))
		assert.Equal(t, []int{20, 21, 22, 23, 24}, Page(rows, 3, 10))
		assert.Empty(t, Page(rows, 4, 10))
		assert.Empty(t, Page(rows, 0, 10))
	})
}

func TestStringify(t *testing.T) {
	day := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	var nilTime *time.Time
	rid := uuid.MustParse("6f1c2a4e-4f39-4a3b-9d70-2f8f3c2a1b00")

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "text", "text"},
		{"int", 12, "12"},
		{"negative int64", int64(-7), "-7"},
		{"float", 1.5, "1.5"},
		{"whole float", float64(3), "3"},
		{"bool", false, "false"},
		{"time", day, "2024-03-09"},
		{"time pointer", &day, "2024-03-09"},
		{"nil time pointer", nilTime, ""},
		{"stringer", rid, rid.String()},
		{"named int", score(42), "42"},
		{"named float", ratio(0.25), "0.25"},
		{"named string", label("draft"), "draft"},
		{"slice", []string{"a", "b"}, "[a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stringify(tt.value))
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Ascending, ParseDirection(""))
	assert.Equal(t, "desc", Descending.String())
	assert.Equal(t, Ascending, Descending.Toggle())
	assert.Equal(t, "▲", Ascending.Indicator())
}

func TestViewStateJson(t *testing.T) {
	state := ViewState{Page: 2, SearchTerm: "ali", SortKey: "username", SortDirection: Descending}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"page": 2, "search": "ali", "sort": "username", "direction": "desc"}`, string(data))

	var decoded ViewState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)

	data, err = json.Marshal(InitialState())
	require.NoError(t, err)
	assert.JSONEq(t, `{"page": 1, "search": "", "direction": "asc"}`, string(data))
}
