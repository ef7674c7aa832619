package table

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options configure a TabularView. Striped, Hover and Bordered are passed
// through to the renderer and have no effect on the pipeline.
type Options struct {
	PageSize   int
	Searchable bool
	Sortable   bool
	Locale     language.Tag
	Striped    bool
	Hover      bool
	Bordered   bool
}

// DefaultOptions returns a page size of 10 with hover highlighting.
func DefaultOptions() Options {
	return Options{
		PageSize: 10,
		Locale:   language.Und,
		Hover:    true,
	}
}

// TabularView is a searchable, sortable, paginated view over a row
// collection. Every mutation recomputes rows -> filter -> sort -> page before
// it returns. It must not be mutated from more than one goroutine at a time.
type TabularView[T Row] struct {
	columns    []Column[T]
	rows       []T
	options    Options
	state      ViewState
	comparator *Comparator
	fold       cases.Caser
	onActivate func(row T)

	filtered []T
	visible  []T
}

// New creates a view over rows. It fails on a non-positive page size or an invalid schema.
func New[T Row](columns []Column[T], rows []T, options Options) (*TabularView[T], error) {
	if options.PageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	if err := ValidateColumns(columns); err != nil {
		return nil, err
	}

	v := &TabularView[T]{
		columns:    columns,
		rows:       rows,
		options:    options,
		state:      InitialState(),
		comparator: NewComparator(options.Locale),
		fold:       cases.Fold(),
	}
	v.recompute()
	return v, nil
}

// OnRowActivate registers the callback that receives activated rows.
func (v *TabularView[T]) OnRowActivate(fn func(row T)) {
	v.onActivate = fn
}

// SetRows replaces the source rows. A different collection resets the view
// state; passing the same collection again only recomputes. It reports
// whether the state was reset.
func (v *TabularView[T]) SetRows(rows []T) bool {
	reset := !sameCollection(v.rows, rows)
	v.rows = rows
	if reset {
		v.state = InitialState()
	}
	v.recompute()
	return reset
}

// SetColumns replaces the schema. The sort key is dropped if the new schema
// has no sortable column with that key.
func (v *TabularView[T]) SetColumns(columns []Column[T]) error {
	if err := ValidateColumns(columns); err != nil {
		return err
	}
	v.columns = columns
	if !v.isSortable(v.state.SortKey) {
		v.state.SortKey = ""
		v.state.SortDirection = Ascending
	}
	v.recompute()
	return nil
}

// SetSearch sets the search term and returns to the first page.
func (v *TabularView[T]) SetSearch(term string) {
	v.state.SearchTerm = term
	v.state.Page = 1
	v.recompute()
}

// ActivateHeader handles a click on the header with key. The same header
// toggles the direction, another header sorts ascending by its key.
// It reports false and leaves the state alone for non-sortable headers.
func (v *TabularView[T]) ActivateHeader(key string) bool {
	if !v.options.Sortable || !v.isSortable(key) {
		return false
	}

	if v.state.SortKey == key {
		v.state.SortDirection = v.state.SortDirection.Toggle()
	} else {
		v.state.SortKey = key
		v.state.SortDirection = Ascending
	}
	v.recompute()
	return true
}

// NextPage moves one page forward. It is a no-op on the last page.
func (v *TabularView[T]) NextPage() bool {
	if !v.HasNext() {
		return false
	}
	v.state.Page++
	v.recompute()
	return true
}

// PrevPage moves one page back. It is a no-op on the first page.
func (v *TabularView[T]) PrevPage() bool {
	if !v.HasPrev() {
		return false
	}
	v.state.Page--
	v.recompute()
	return true
}

// GoToPage jumps to page, clamped to the available pages, and returns the page shown.
func (v *TabularView[T]) GoToPage(page int) int {
	v.state.Page = page
	v.recompute()
	return v.state.Page
}

// ActivateRow notifies the row callback with the row at index of the
// visible page. The view state does not change.
func (v *TabularView[T]) ActivateRow(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(v.visible) {
		return zero, false
	}
	row := v.visible[index]
	if v.onActivate != nil {
		v.onActivate(row)
	}
	return row, true
}

// Apply restores a state, e.g. one carried in request parameters. Unknown
// or unsortable sort keys, and any sort key of a table that is not sortable,
// are dropped and the page is clamped.
func (v *TabularView[T]) Apply(state ViewState) {
	if !v.options.Sortable || !v.isSortable(state.SortKey) {
		state.SortKey = ""
		state.SortDirection = Ascending
	}
	v.state = state
	v.recompute()
}

func (v *TabularView[T]) State() ViewState {
	return v.state
}

func (v *TabularView[T]) Options() Options {
	return v.options
}

func (v *TabularView[T]) Columns() []Column[T] {
	return v.columns
}

// Rows returns the source collection.
func (v *TabularView[T]) Rows() []T {
	return v.rows
}

// Visible returns the rows of the current page in display order.
func (v *TabularView[T]) Visible() []T {
	return v.visible
}

// FilteredCount is the number of rows matching the search term.
func (v *TabularView[T]) FilteredCount() int {
	return len(v.filtered)
}

func (v *TabularView[T]) TotalPages() int {
	return TotalPages(len(v.filtered), v.options.PageSize)
}

func (v *TabularView[T]) HasPrev() bool {
	return v.state.Page > 1
}

func (v *TabularView[T]) HasNext() bool {
	return v.state.Page < v.TotalPages()
}

// Headers returns the header row with the active sort marked.
func (v *TabularView[T]) Headers() []Header {
	headers := make([]Header, 0, len(v.columns))
	for _, column := range v.columns {
		sortable := v.options.Sortable && column.Sortable
		headers = append(headers, Header{
			Key:       column.Key,
			Label:     column.Header,
			Width:     column.Width,
			Sortable:  sortable,
			Active:    sortable && column.Key == v.state.SortKey,
			Direction: v.state.SortDirection,
		})
	}
	return headers
}

// Cells projects row through the schema.
func (v *TabularView[T]) Cells(row T) []any {
	cells := make([]any, 0, len(v.columns))
	for _, column := range v.columns {
		cells = append(cells, column.Value(row))
	}
	return cells
}

func (v *TabularView[T]) isSortable(key string) bool {
	if key == "" {
		return false
	}
	column, ok := findColumn(v.columns, key)
	return ok && column.Sortable
}

func (v *TabularView[T]) recompute() {
	term := ""
	if v.options.Searchable {
		term = v.state.SearchTerm
	}
	v.filtered = filterRows(v.rows, term, v.fold.String)

	sortKey := ""
	if v.options.Sortable && v.isSortable(v.state.SortKey) {
		sortKey = v.state.SortKey
	}
	sorted := Sort(v.filtered, sortKey, v.state.SortDirection, v.comparator)

	v.state.Page = clampPage(v.state.Page, TotalPages(len(sorted), v.options.PageSize))
	v.visible = Page(sorted, v.state.Page, v.options.PageSize)
}

func sameCollection[T any](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
