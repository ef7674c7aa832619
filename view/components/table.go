package components

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/siherrmann/contentManager/table"

	"github.com/a-h/templ"
)

// CellRenderer lets a screen render a cell itself. It returns nil to fall
// back to the default rendering of value.
type CellRenderer[T table.Row] func(row T, key string, value any) templ.Component

type tableHeader struct {
	Label     string
	Sortable  bool
	Url       string
	AriaSort  string
	Indicator string
	Attrs     templ.Attributes
}

type tablePager struct {
	Summary string
	HasPrev bool
	PrevUrl string
	HasNext bool
	NextUrl string
}

type tableData struct {
	Searchable bool
	SearchTerm string
	SortKey    string
	Direction  string
	BaseUrl    string
	Target     string
	Striped    bool
	Hover      bool
	Bordered   bool
	Headers    []tableHeader
	Rows       [][]templ.Component
	Pager      tablePager
}

// DataTable renders the current page of view. Header, search and pager
// controls request baseUrl with the view state as query parameters and
// swap the result into target.
func DataTable[T table.Row](view *table.TabularView[T], baseUrl string, target string, renderCell CellRenderer[T]) templ.Component {
	return dataTable(newTableData(view, baseUrl, target, renderCell))
}

func newTableData[T table.Row](view *table.TabularView[T], baseUrl string, target string, renderCell CellRenderer[T]) tableData {
	state := view.State()
	options := view.Options()

	data := tableData{
		Searchable: options.Searchable,
		SearchTerm: state.SearchTerm,
		SortKey:    state.SortKey,
		Direction:  state.SortDirection.String(),
		BaseUrl:    baseUrl,
		Target:     target,
		Striped:    options.Striped,
		Hover:      options.Hover,
		Bordered:   options.Bordered,
	}

	headers := view.Headers()
	for _, header := range headers {
		data.Headers = append(data.Headers, newTableHeader(header, state, baseUrl))
	}

	for _, row := range view.Visible() {
		cells := []templ.Component{}
		for i, value := range view.Cells(row) {
			cells = append(cells, tableCell(row, headers[i].Key, value, renderCell))
		}
		data.Rows = append(data.Rows, cells)
	}

	prev := state
	prev.Page--
	next := state
	next.Page++
	data.Pager = tablePager{
		Summary: fmt.Sprintf("Page %d of %d (%d entries)", state.Page, view.TotalPages(), view.FilteredCount()),
		HasPrev: view.HasPrev(),
		PrevUrl: StateUrl(baseUrl, prev),
		HasNext: view.HasNext(),
		NextUrl: StateUrl(baseUrl, next),
	}
	return data
}

func newTableHeader(header table.Header, state table.ViewState, baseUrl string) tableHeader {
	attrs := templ.Attributes{}
	if header.Width != "" {
		attrs["style"] = "width: " + header.Width
	}
	if !header.Sortable {
		return tableHeader{Label: header.Label, Attrs: attrs}
	}

	next := state
	if header.Active {
		next.SortDirection = state.SortDirection.Toggle()
	} else {
		next.SortKey = header.Key
		next.SortDirection = table.Ascending
	}

	ariaSort := "none"
	if header.Active && header.Direction == table.Descending {
		ariaSort = "descending"
	} else if header.Active {
		ariaSort = "ascending"
	}

	return tableHeader{
		Label:     header.Label,
		Sortable:  true,
		Url:       StateUrl(baseUrl, next),
		AriaSort:  ariaSort,
		Indicator: header.Indicator(),
		Attrs:     attrs,
	}
}

func tableCell[T table.Row](row T, key string, value any, renderCell CellRenderer[T]) templ.Component {
	if renderCell != nil {
		if component := renderCell(row, key, value); component != nil {
			return component
		}
	}
	if component, ok := value.(templ.Component); ok {
		return component
	}
	return Text(table.Stringify(value))
}

// StateUrl returns baseUrl with state encoded as query parameters.
func StateUrl(baseUrl string, state table.ViewState) string {
	query := url.Values{}
	if state.SearchTerm != "" {
		query.Set("search", state.SearchTerm)
	}
	if state.SortKey != "" {
		query.Set("sort", state.SortKey)
		query.Set("dir", state.SortDirection.String())
	}
	if state.Page > 1 {
		query.Set("page", strconv.Itoa(state.Page))
	}
	if len(query) == 0 {
		return baseUrl
	}
	return baseUrl + "?" + query.Encode()
}
