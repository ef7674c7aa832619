package table

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
	ErrEmptyColumnKey  = errors.New("column key must not be empty")
	ErrDuplicateColumn = errors.New("duplicate column key")
)

// Row is a record a TabularView can project into cells.
// Field returns the value stored under key or nil if there is none.
// Fields returns every field of the record and is what the search runs over.
type Row interface {
	Field(key string) any
	Fields() map[string]any
}

// Column describes how a row is projected into one cell.
type Column[T Row] struct {
	Key      string
	Header   string
	Width    string
	Sortable bool
	// Render overrides the raw field value shown in the cell.
	Render func(row T) any
}

// Value returns the display value of the column for row.
func (c Column[T]) Value(row T) any {
	if c.Render != nil {
		return c.Render(row)
	}
	return row.Field(c.Key)
}

// ValidateColumns checks that every key is set and unique within the schema.
func ValidateColumns[T Row](columns []Column[T]) error {
	seen := make(map[string]struct{}, len(columns))
	for i, column := range columns {
		if column.Key == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyColumnKey)
		}
		if _, ok := seen[column.Key]; ok {
			return fmt.Errorf("column %q: %w", column.Key, ErrDuplicateColumn)
		}
		seen[column.Key] = struct{}{}
	}
	return nil
}

func findColumn[T Row](columns []Column[T], key string) (Column[T], bool) {
	for _, column := range columns {
		if column.Key == key {
			return column, true
		}
	}
	return Column[T]{}, false
}
