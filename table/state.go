package table

import "strings"

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Indicator is the glyph shown next to the active sort header.
func (d Direction) Indicator() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// ParseDirection maps "desc" (any case) to Descending and everything else to Ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Descending
	}
	return Ascending
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	*d = ParseDirection(string(text))
	return nil
}

// ViewState is the transient state a TabularView owns next to its source rows.
// An empty SortKey means no sort is applied.
type ViewState struct {
	Page          int       `json:"page"`
	SearchTerm    string    `json:"search"`
	SortKey       string    `json:"sort,omitempty"`
	SortDirection Direction `json:"direction"`
}

// InitialState is the state of a freshly created or reset table.
func InitialState() ViewState {
	return ViewState{Page: 1, SortDirection: Ascending}
}

// Header is the rendered state of one column header.
type Header struct {
	Key       string
	Label     string
	Width     string
	Sortable  bool
	Active    bool
	Direction Direction
}

// Indicator returns the sort glyph for an active header and "" otherwise.
func (h Header) Indicator() string {
	if !h.Active {
		return ""
	}
	return h.Direction.Indicator()
}
