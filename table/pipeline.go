package table

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter returns the rows where any field contains term, ignoring case.
// An empty term returns rows unchanged.
func Filter[T Row](rows []T, term string) []T {
	fold := cases.Fold()
	return filterRows(rows, term, fold.String)
}

func filterRows[T Row](rows []T, term string, fold func(string) string) []T {
	if term == "" {
		return rows
	}
	needle := fold(term)

	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, value := range row.Fields() {
			if strings.Contains(fold(Stringify(value)), needle) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	return filtered
}

// Comparator orders two field values: numerically when both are numbers,
// otherwise by collation of their string forms. It is not safe for concurrent use.
type Comparator struct {
	collator *collate.Collator
}

func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{collator: collate.New(tag)}
}

func (c *Comparator) Compare(a, b any) int {
	an, aNumeric := numeric(a)
	bn, bNumeric := numeric(b)
	if aNumeric && bNumeric {
		return cmp.Compare(an, bn)
	}
	return c.collator.CompareString(Stringify(a), Stringify(b))
}

// Sort returns a stably sorted copy of rows ordered by the field key.
// An empty key returns rows unchanged.
func Sort[T Row](rows []T, key string, direction Direction, comparator *Comparator) []T {
	if key == "" {
		return rows
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		result := comparator.Compare(a.Field(key), b.Field(key))
		if direction == Descending {
			return -result
		}
		return result
	})
	return sorted
}

// TotalPages is ceil(count / pageSize) and at least 1.
func TotalPages(count int, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Page returns the 1-indexed page of rows. Pages past the end are empty.
func Page[T any](rows []T, page int, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return rows[:0:0]
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return rows[:0:0]
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end:end]
}

func clampPage(page int, totalPages int) int {
	return max(1, min(page, totalPages))
}
