package core

import (
	"cellframe/scalar"
	"fmt"
)

// Cell is one datum of a column. The cell holds its row; the row only
// refers back to the cell and never keeps it alive.
type Cell struct {
	value       scalar.Value
	row         *Row
	columnName  string
	rollingMean scalar.Value
	hasMean     bool
	released    bool
}

func NewCell(value scalar.Value, row *Row, columnName string) *Cell {
	row.acquire()
	return &Cell{
		value:      value,
		row:        row,
		columnName: columnName,
	}
}

func (cell *Cell) Value() scalar.Value {
	return cell.value
}

func (cell *Cell) Row() *Row {
	return cell.row
}

func (cell *Cell) ColumnName() string {
	return cell.columnName
}

func (cell *Cell) SetRollingMean(mean scalar.Value, ok bool) {
	if !ok {
		mean = scalar.Null()
	}
	cell.rollingMean = mean
	cell.hasMean = ok
}

func (cell *Cell) RollingMean() (scalar.Value, bool) {
	return cell.rollingMean, cell.hasMean
}

// Released reports whether the owning column has dropped the cell.
func (cell *Cell) Released() bool {
	return cell.released
}

// Equal holds for the same value at the same row position.
func (cell *Cell) Equal(other *Cell) bool {
	if cell == nil || other == nil {
		return cell == other
	}
	return cell.value.Equal(other.value) && cell.row.Index() == other.row.Index()
}

func (cell *Cell) release() {
	if cell.released {
		return
	}
	cell.released = true
	cell.SetRollingMean(scalar.Null(), false)
	cell.row.releaseOwner()
}

func (cell *Cell) String() string {
	return fmt.Sprintf("<Cell: %s[%d] = %v>", cell.columnName, cell.row.Index(), cell.value)
}
