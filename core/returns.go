package core

import (
	"cellframe/scalar"
)

// DifferenceToLast is cells[index] - cells[index-1], Null at the first row
// and outside the column.
func (column *Column) DifferenceToLast(index int) scalar.Value {
	if index <= 0 || index >= len(column.cells) {
		return scalar.Null()
	}
	previous := column.cells[index-1].value
	current := column.cells[index].value
	return current.Sub(previous)
}

func (column *Column) AllDifferencesToLast() []scalar.Value {
	differences := make([]scalar.Value, len(column.cells))
	for index := range column.cells {
		differences[index] = column.DifferenceToLast(index)
	}
	return differences
}

// UpdateReturns stores the new configuration. When returns are enabled it
// also hands back the full difference series for the owner to materialise.
func (column *Column) UpdateReturns(returns Returns) ([]scalar.Value, bool) {
	returns = NewReturns(returns.Enabled, returns.Target)
	if returns != column.returns {
		column.returns = returns
	}

	if column.returns.Enabled {
		return column.AllDifferencesToLast(), true
	}
	return nil, false
}
