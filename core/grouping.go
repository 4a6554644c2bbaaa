package core

import (
	"cellframe/scalar"
	"cellframe/tree"
	"sort"
)

func (column *Column) addToGroups(cell *Cell) {
	key := cell.value.Key()
	entry, ok := column.groups[key]
	if !ok {
		entry = &group{value: cell.value}
		column.groups[key] = entry
	}
	entry.cells = append(entry.cells, cell)
}

// insertIntoGroup places the cell among its group by row position, for
// cells whose value changed after they were added.
func (column *Column) insertIntoGroup(cell *Cell) {
	key := cell.value.Key()
	entry, ok := column.groups[key]
	if !ok {
		column.groups[key] = &group{value: cell.value, cells: []*Cell{cell}}
		return
	}
	index := cell.row.Index()
	at := sort.Search(len(entry.cells), func(i int) bool {
		return entry.cells[i].row.Index() > index
	})
	entry.cells = append(entry.cells, nil)
	copy(entry.cells[at+1:], entry.cells[at:])
	entry.cells[at] = cell
}

func (column *Column) removeFromGroups(cell *Cell) {
	key := cell.value.Key()
	entry, ok := column.groups[key]
	if !ok {
		return
	}
	for i, member := range entry.cells {
		if member == cell {
			entry.cells = append(entry.cells[:i], entry.cells[i+1:]...)
			break
		}
	}
	if len(entry.cells) == 0 {
		delete(column.groups, key)
	}
}

// Grouped returns the cells currently holding value, in row order.
func (column *Column) Grouped(value scalar.Value) []*Cell {
	entry, ok := column.groups[value.Key()]
	if !ok {
		return nil
	}
	cells := make([]*Cell, len(entry.cells))
	copy(cells, entry.cells)
	return cells
}

// Groups is the number of distinct values in the column.
func (column *Column) Groups() int {
	return len(column.groups)
}

type GroupCount struct {
	Value scalar.Value
	Count int
}

// MostCommon returns the k most frequent values. Equal counts are ordered by
// where the value first appears.
func (column *Column) MostCommon(k int) []GroupCount {
	items := make([]*tree.HeapItem, 0, len(column.groups))
	for _, entry := range column.groups {
		items = append(items, &tree.HeapItem{
			Value:    entry.value,
			Priority: len(entry.cells),
			Order:    entry.cells[0].row.Index(),
		})
	}

	top := tree.TopK(items, k)
	counts := make([]GroupCount, len(top))
	for i, item := range top {
		counts[i] = GroupCount{Value: item.Value.(scalar.Value), Count: item.Priority}
	}
	return counts
}
