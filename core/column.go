package core

import (
	"cellframe/scalar"
	"cellframe/stats"
	"cellframe/window"
	"fmt"
	"math"
	"sync/atomic"
)

var gColumnIdCounter int64 = 0

type RollingMean struct {
	Enabled bool
	Window  int
}

// NewRollingMean refuses to enable a rolling mean without a usable window.
func NewRollingMean(enabled bool, windowSize int) RollingMean {
	if windowSize < 1 {
		return RollingMean{Enabled: false, Window: 0}
	}
	return RollingMean{Enabled: enabled, Window: windowSize}
}

type Returns struct {
	Enabled bool
	Target  string
}

func NewReturns(enabled bool, target string) Returns {
	if target == "" {
		enabled = false
	}
	return Returns{Enabled: enabled, Target: target}
}

type group struct {
	value scalar.Value
	cells []*Cell
}

// Column owns its cells, in row order, and keeps a value->cells index plus
// the configured rolling mean and returns state in step with every change.
type Column struct {
	id          int64
	name        string
	cells       []*Cell
	groups      map[scalar.Key]*group
	rollingMean RollingMean
	windowing   window.Windowing
	returns     Returns
	summary     *stats.Welford
	version     uint64
}

func NewColumn(name string, rollingMean RollingMean, returns Returns) *Column {
	rollingMean = NewRollingMean(rollingMean.Enabled, rollingMean.Window)
	return &Column{
		id:          atomic.AddInt64(&gColumnIdCounter, 1),
		name:        name,
		cells:       make([]*Cell, 0),
		groups:      make(map[scalar.Key]*group),
		rollingMean: rollingMean,
		windowing:   window.NewTrailing(rollingMean.Window),
		returns:     NewReturns(returns.Enabled, returns.Target),
		summary:     stats.NewWelford(),
	}
}

func (column *Column) Name() string {
	return column.name
}

func (column *Column) Len() int {
	return len(column.cells)
}

// Version changes whenever the column's cells or derived values change.
func (column *Column) Version() uint64 {
	return column.version
}

func (column *Column) RollingMeanConfig() RollingMean {
	return column.rollingMean
}

func (column *Column) ReturnsConfig() Returns {
	return column.returns
}

func (column *Column) Cells() []*Cell {
	cells := make([]*Cell, len(column.cells))
	copy(cells, column.cells)
	return cells
}

func (column *Column) CellAt(i int) (*Cell, bool) {
	if i < 0 || i >= len(column.cells) {
		return nil, false
	}
	return column.cells[i], true
}

func (column *Column) Values() []scalar.Value {
	values := make([]scalar.Value, len(column.cells))
	for i, cell := range column.cells {
		values[i] = cell.value
	}
	return values
}

func (column *Column) AddCell(cell *Cell) {
	column.addToGroups(cell)
	column.cells = append(column.cells, cell)
	column.observe(cell.value)
	if column.rollingMean.Enabled {
		column.cellRollingMean(len(column.cells) - 1)
	}
	column.version++
}

// DropCell removes the cell found at its row's position and releases it.
// A cell that is not at that position means the row/column alignment is
// broken, which is unrecoverable.
func (column *Column) DropCell(cell *Cell) {
	position := cell.Row().Index()
	if position < 0 || position >= len(column.cells) || column.cells[position] != cell {
		panic(fmt.Sprintf("column %q: %v is not at its row position %d", column.name, cell, position))
	}

	column.removeFromGroups(cell)
	copy(column.cells[position:], column.cells[position+1:])
	column.cells[len(column.cells)-1] = nil
	column.cells = column.cells[:len(column.cells)-1]
	column.forget(cell.value)
	cell.release()

	if column.rollingMean.Enabled {
		lo, hi := column.windowing.AffectedByRemoval(position, len(column.cells))
		column.recalculateRollingMeans(lo, hi)
	}
	column.version++
}

// replaceValue rewrites the value at position in place, keeping grouping,
// summary and rolling means consistent.
func (column *Column) replaceValue(position int, value scalar.Value) {
	cell := column.cells[position]
	column.removeFromGroups(cell)
	column.forget(cell.value)
	cell.value = value
	column.insertIntoGroup(cell)
	column.observe(value)

	if column.rollingMean.Enabled {
		lo, hi := column.windowing.AffectedByUpdate(position, len(column.cells))
		column.recalculateRollingMeans(lo, hi)
	}
	column.version++
}

// release lets go of every cell, used when the column itself is dropped.
func (column *Column) release() {
	for _, cell := range column.cells {
		cell.release()
	}
	column.cells = nil
	column.groups = make(map[scalar.Key]*group)
	column.summary.Reset()
	column.version++
}

func (column *Column) observe(value scalar.Value) {
	if f, ok := value.ToFloat64(); ok && !math.IsNaN(f) {
		column.summary.Update(f)
	}
}

func (column *Column) forget(value scalar.Value) {
	if f, ok := value.ToFloat64(); ok && !math.IsNaN(f) {
		column.summary.Remove(f)
	}
}

type Summary struct {
	Count    uint64
	Mean     float64
	Variance float64
	StdDev   float64
}

// Summary describes the numeric cells of the column as float64, whatever
// their kinds.
func (column *Column) Summary() Summary {
	return Summary{
		Count:    column.summary.GetCount(),
		Mean:     column.summary.GetMean(),
		Variance: column.summary.GetSampleVariance(),
		StdDev:   column.summary.GetSD(),
	}
}

func (column *Column) String() string {
	return fmt.Sprintf("<Column: %s len=%d groups=%d>", column.name, len(column.cells), len(column.groups))
}

// Distribution describes the numeric cells of the column by order
// statistics. It is false when the column holds no numbers.
func (column *Column) Distribution() (stats.Distribution, bool) {
	xs := make([]float64, 0, len(column.cells))
	for _, cell := range column.cells {
		if f, ok := cell.value.ToFloat64(); ok && !math.IsNaN(f) {
			xs = append(xs, f)
		}
	}
	return stats.Describe(xs)
}
