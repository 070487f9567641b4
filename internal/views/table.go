// Package views builds the page view models the dashboards render as-is.
package views

import "strconv"

// CellKind says how a table cell is drawn
type CellKind string

const (
	CellText     CellKind = "text"
	CellMedia    CellKind = "media"
	CellDateTime CellKind = "datetime"
	CellBadge    CellKind = "badge"
	CellActions  CellKind = "actions"
)

// Column is a table header
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Action is a link offered in a row
type Action struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Cell is one rendered table cell
type Cell struct {
	Kind     CellKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	SubText  string   `json:"subText,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Badge    *Badge   `json:"badge,omitempty"`
	Actions  []Action `json:"actions,omitempty"`
}

// Row is one rendered entity
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Table is a list of rows under a fixed set of columns
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ColumnDef maps an entity of type T to one cell
type ColumnDef[T any] struct {
	Key    string
	Label  string
	Render func(T) Cell
}

// BuildTable renders items through the column definitions.
// Rows is never nil so an empty table encodes as [].
func BuildTable[T any](defs []ColumnDef[T], items []T, id func(T) string) Table {
	table := Table{
		Columns: make([]Column, 0, len(defs)),
		Rows:    make([]Row, 0, len(items)),
	}
	for _, def := range defs {
		table.Columns = append(table.Columns, Column{Key: def.Key, Label: def.Label})
	}
	for _, item := range items {
		row := Row{ID: id(item), Cells: make([]Cell, 0, len(defs))}
		for _, def := range defs {
			row.Cells = append(row.Cells, def.Render(item))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// TextCell is a plain text cell with an optional second line
func TextCell(text, subText string) Cell {
	return Cell{Kind: CellText, Text: text, SubText: subText}
}

// BadgeCell wraps a badge
func BadgeCell(b Badge) Cell {
	return Cell{Kind: CellBadge, Badge: &b}
}

// ActionsCell lists row links
func ActionsCell(actions ...Action) Cell {
	return Cell{Kind: CellActions, Actions: actions}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
