package core

import (
	"time"
)

// Row is a positional record. Its cell references are non-owning: a
// reference to a released cell resolves to nothing. A row stays live while
// the table holds it or any unreleased cell still points at it.
type Row struct {
	index     int
	timestamp time.Time
	cells     []*Cell
	owners    int
	attached  bool
}

func NewRow(index int) *Row {
	return newRowAt(index, time.Time{})
}

func newRowAt(index int, timestamp time.Time) *Row {
	return &Row{
		index:     index,
		timestamp: timestamp,
		cells:     make([]*Cell, 0),
	}
}

func (row *Row) Index() int {
	return row.index
}

func (row *Row) UpdateIndex(index int) {
	row.index = index
}

func (row *Row) Timestamp() time.Time {
	return row.timestamp
}

// Width is the number of cell references, live or not.
func (row *Row) Width() int {
	return len(row.cells)
}

func (row *Row) AddCellRef(cell *Cell) {
	row.cells = append(row.cells, cell)
}

// DropCellRef forgets the reference to exactly this cell.
func (row *Row) DropCellRef(cell *Cell) bool {
	for i, ref := range row.cells {
		if ref == cell {
			copy(row.cells[i:], row.cells[i+1:])
			row.cells[len(row.cells)-1] = nil
			row.cells = row.cells[:len(row.cells)-1]
			return true
		}
	}
	return false
}

func (row *Row) CellAt(i int) (*Cell, bool) {
	if i < 0 || i >= len(row.cells) {
		return nil, false
	}
	cell := row.cells[i]
	if cell == nil || cell.released {
		return nil, false
	}
	return cell, true
}

func (row *Row) LastCell() (*Cell, bool) {
	return row.CellAt(len(row.cells) - 1)
}

// Cells returns the live cells in column order.
func (row *Row) Cells() []*Cell {
	cells := make([]*Cell, 0, len(row.cells))
	for i := range row.cells {
		if cell, ok := row.CellAt(i); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (row *Row) Live() bool {
	return row.attached || row.owners > 0
}

func (row *Row) acquire() {
	row.owners++
}

func (row *Row) releaseOwner() {
	if row.owners > 0 {
		row.owners--
	}
}
