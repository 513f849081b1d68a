package view

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// Table renders rows of opaque report JSON.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
	Error   string
}

// NewTable collects every key seen across rows as a column, sorted, with
// "_id" leading.
func NewTable(title string, rows []domain.Row) Table {
	seen := map[string]struct{}{}
	for _, row := range rows {
		for key := range row {
			seen[key] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i] == "_id" || columns[j] == "_id" {
			return columns[i] == "_id"
		}
		return columns[i] < columns[j]
	})

	table := Table{Title: title, Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = Cell(row[col])
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

// Headings returns the humanized column names.
func (t Table) Headings() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = Humanize(c)
	}
	return out
}

// Cell renders a decoded JSON value for display.
func Cell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return Dash(val)
	case float64:
		return Money(val)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case map[string]any:
		for _, key := range []string{"full_name", "name", "_id"} {
			if s, ok := val[key].(string); ok && s != "" {
				return s
			}
		}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}
