package core

import (
	"cellframe/scalar"
	"cellframe/stats"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Table owns its rows and columns and keeps them aligned by position:
// rows[i].Index() == i and every column holds one cell per row.
type Table struct {
	rows        []*Row
	columns     []*Column
	logger      *zap.Logger
	clock       func() time.Time
	reportCache *ReportCache
	arrivals    *stats.ArrivalStatistics
}

func NewTable(columnNames []string) (*Table, error) {
	table := &Table{
		rows:     make([]*Row, 0),
		columns:  make([]*Column, 0, len(columnNames)),
		logger:   zap.NewNop(),
		clock:    time.Now,
		arrivals: stats.NewArrivalStatistics(),
	}
	for _, name := range columnNames {
		if err := table.checkNewName(name); err != nil {
			return nil, err
		}
		table.columns = append(table.columns, NewColumn(name, RollingMean{}, Returns{}))
	}
	return table, nil
}

func (table *Table) SetLogger(logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	table.logger = logger
	return table
}

func (table *Table) SetClock(clock func() time.Time) *Table {
	table.clock = clock
	return table
}

func (table *Table) SetReportCache(cache *ReportCache) *Table {
	table.reportCache = cache
	return table
}

func (table *Table) Len() int {
	return len(table.rows)
}

func (table *Table) Width() int {
	return len(table.columns)
}

func (table *Table) Rows() []*Row {
	rows := make([]*Row, len(table.rows))
	copy(rows, table.rows)
	return rows
}

func (table *Table) RowAt(i int) (*Row, bool) {
	if i < 0 || i >= len(table.rows) {
		return nil, false
	}
	return table.rows[i], true
}

func (table *Table) Columns() []*Column {
	columns := make([]*Column, len(table.columns))
	copy(columns, table.columns)
	return columns
}

func (table *Table) ColumnAt(i int) (*Column, bool) {
	if i < 0 || i >= len(table.columns) {
		return nil, false
	}
	return table.columns[i], true
}

func (table *Table) Column(name string) (*Column, bool) {
	index := table.columnIndex(name)
	if index < 0 {
		return nil, false
	}
	return table.columns[index], true
}

// ArrivalStats covers every row ever added. Dropped rows stay counted, since
// the intervals they contributed cannot be taken back out.
func (table *Table) ArrivalStats() *stats.ArrivalStatistics {
	return table.arrivals
}

func (table *Table) columnIndex(name string) int {
	for i, column := range table.columns {
		if column.name == name {
			return i
		}
	}
	return -1
}

func (table *Table) checkNewName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty column name", ErrInvalidConfig)
	}
	if table.columnIndex(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	return nil
}

// isReturnsTarget reports whether some column fills this one with returns.
func (table *Table) isReturnsTarget(name string) bool {
	for _, column := range table.columns {
		if column.returns.Enabled && column.returns.Target == name {
			return true
		}
	}
	return false
}

// OrdinaryColumns are the columns AddRow takes values for, in order. Returns
// targets are filled from their source instead.
func (table *Table) OrdinaryColumns() []*Column {
	columns := make([]*Column, 0, len(table.columns))
	for _, column := range table.columns {
		if !table.isReturnsTarget(column.name) {
			columns = append(columns, column)
		}
	}
	return columns
}

// AddRow appends a row holding one value per ordinary column, then fills
// every returns column from its source's newest cell. It returns the index
// of the new row.
func (table *Table) AddRow(values []scalar.Value) (int, error) {
	ordinary := table.OrdinaryColumns()
	if len(values) != len(ordinary) {
		return 0, fmt.Errorf("%w: got %d values for %d columns", ErrLengthMismatch, len(values), len(ordinary))
	}

	row := newRowAt(len(table.rows), table.clock())
	row.attached = true
	cells := make(map[*Column]*Cell, len(table.columns))
	for i, column := range ordinary {
		cell := NewCell(values[i], row, column.name)
		column.AddCell(cell)
		cells[column] = cell
	}

	// Targets always sit after their source, so one pass in column order
	// sees every source filled before it is read.
	for _, source := range table.columns {
		if !source.returns.Enabled {
			continue
		}
		target, ok := table.Column(source.returns.Target)
		if !ok {
			panic(fmt.Sprintf("column %q: returns target %q is missing", source.name, source.returns.Target))
		}
		cell := NewCell(source.DifferenceToLast(source.Len()-1), row, target.name)
		target.AddCell(cell)
		cells[target] = cell
	}

	for _, column := range table.columns {
		row.AddCellRef(cells[column])
	}
	table.rows = append(table.rows, row)
	table.arrivals.Append(row.timestamp)

	table.logger.Debug("row added",
		zap.Int("index", row.index),
		zap.Int("columns", len(table.columns)))
	return row.index, nil
}

// AddColumnFromValues appends a column holding values[i] for row i.
func (table *Table) AddColumnFromValues(name string, values []scalar.Value, rollingMean RollingMean) error {
	if err := table.checkNewName(name); err != nil {
		return err
	}
	if len(values) != len(table.rows) {
		return fmt.Errorf("%w: got %d values for %d rows", ErrLengthMismatch, len(values), len(table.rows))
	}

	column := NewColumn(name, rollingMean, Returns{})
	for i, row := range table.rows {
		cell := NewCell(values[i], row, name)
		column.AddCell(cell)
		row.AddCellRef(cell)
	}
	table.columns = append(table.columns, column)

	table.logger.Debug("column added",
		zap.String("column", name),
		zap.Int("rows", len(values)),
		zap.Bool("rolling_mean", column.rollingMean.Enabled))
	return nil
}

// CreateReturnsForColumn turns on returns for source and materialises its
// history as a new column, which AddRow keeps filling from then on.
func (table *Table) CreateReturnsForColumn(source, newName string, rollingMean RollingMean) error {
	sourceColumn, ok := table.Column(source)
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, source)
	}
	if err := table.checkNewName(newName); err != nil {
		return err
	}

	previous := sourceColumn.returns
	differences, _ := sourceColumn.UpdateReturns(NewReturns(true, newName))
	if err := table.AddColumnFromValues(newName, differences, rollingMean); err != nil {
		sourceColumn.UpdateReturns(previous)
		return err
	}
	return nil
}

func (table *Table) UpdateRollingMean(name string, rollingMean RollingMean) error {
	column, ok := table.Column(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	column.UpdateRollingMean(rollingMean)
	return nil
}

// DropRow removes row i and asks every column to drop that row's cell.
// Later rows are renumbered first; the dropped row keeps its index, which is
// where each column finds the cell.
func (table *Table) DropRow(i int) error {
	if i < 0 || i >= len(table.rows) {
		return fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, len(table.rows))
	}

	row := table.rows[i]
	copy(table.rows[i:], table.rows[i+1:])
	table.rows[len(table.rows)-1] = nil
	table.rows = table.rows[:len(table.rows)-1]
	row.attached = false
	for j := i; j < len(table.rows); j++ {
		table.rows[j].UpdateIndex(j)
	}

	for slot := 0; slot < row.Width(); slot++ {
		cell, ok := row.CellAt(slot)
		if !ok {
			table.logger.Error("row refers to a released cell",
				zap.Int("row", i),
				zap.Int("slot", slot))
			panic(fmt.Sprintf("row %d: cell reference %d already released", i, slot))
		}
		column, ok := table.Column(cell.columnName)
		if !ok {
			table.logger.Error("cell belongs to an unknown column",
				zap.Int("row", i),
				zap.String("column", cell.columnName))
			panic(fmt.Sprintf("row %d: %v has no owning column", i, cell))
		}
		column.DropCell(cell)
	}

	table.refreshReturns(i)
	table.logger.Debug("row dropped", zap.Int("index", i), zap.Int("remaining", len(table.rows)))
	return nil
}

// refreshReturns re-derives returns cells that compared across the removed
// row. The row now at seam has a new predecessor, and a changed returns
// value at p also changes its own returns column at p and p+1.
func (table *Table) refreshReturns(seam int) {
	changed := make(map[*Column][]int)
	for _, source := range table.columns {
		if !source.returns.Enabled {
			continue
		}
		target, ok := table.Column(source.returns.Target)
		if !ok {
			continue
		}

		positions := map[int]bool{seam: true}
		for _, p := range changed[source] {
			positions[p] = true
			positions[p+1] = true
		}
		for p := range positions {
			if p >= target.Len() {
				continue
			}
			difference := source.DifferenceToLast(p)
			if difference.Equal(target.cells[p].value) {
				continue
			}
			target.replaceValue(p, difference)
			changed[target] = append(changed[target], p)
		}
	}
}

// DropColumn removes column i, unhooks its cells from their rows and
// releases them. A column that was receiving returns stops doing so.
func (table *Table) DropColumn(i int) error {
	if i < 0 || i >= len(table.columns) {
		return fmt.Errorf("%w: %d of %d", ErrColumnOutOfRange, i, len(table.columns))
	}

	column := table.columns[i]
	copy(table.columns[i:], table.columns[i+1:])
	table.columns[len(table.columns)-1] = nil
	table.columns = table.columns[:len(table.columns)-1]

	for _, cell := range column.cells {
		cell.Row().DropCellRef(cell)
	}
	column.release()

	for _, source := range table.columns {
		if source.returns.Enabled && source.returns.Target == column.name {
			source.UpdateReturns(Returns{})
			table.logger.Debug("returns disabled",
				zap.String("column", source.name),
				zap.String("target", column.name))
		}
	}

	table.logger.Debug("column dropped", zap.String("column", column.name))
	return nil
}

// RateOfChange serves Column.RateOfChange through the report cache, when
// one is set.
func (table *Table) RateOfChange(name string, kind scalar.Kind, points int) ([]RatePoint, error) {
	column, ok := table.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if series, found := table.reportCache.GetRateOfChange(column, kind, points); found {
		return series, nil
	}
	series := column.RateOfChange(kind, points)
	table.reportCache.PutRateOfChange(column, kind, points, series)
	return series, nil
}
