package core

import (
	"cellframe/scalar"
	"cellframe/utils"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

// buildColumn lays values out in fresh rows 0..n-1.
func buildColumn(name string, rollingMean RollingMean, values ...scalar.Value) (*Column, []*Row) {
	column := NewColumn(name, rollingMean, Returns{})
	rows := make([]*Row, len(values))
	for i, value := range values {
		rows[i] = NewRow(i)
		cell := NewCell(value, rows[i], name)
		column.AddCell(cell)
		rows[i].AddCellRef(cell)
	}
	return column, rows
}

// assertPartition checks that the value index holds every cell exactly once,
// under its own value.
func assertPartition(t *testing.T, column *Column) {
	t.Helper()
	total := 0
	for key, entry := range column.groups {
		assert.NotEmpty(t, entry.cells)
		for _, cell := range entry.cells {
			assert.Equal(t, key, cell.value.Key())
			assert.False(t, cell.Released())
		}
		total += len(entry.cells)
	}
	assert.Equal(t, len(column.cells), total)
	for _, cell := range column.cells {
		count := 0
		for _, member := range column.Grouped(cell.value) {
			if member == cell {
				count++
			}
		}
		assert.Equal(t, 1, count, "cell %v", cell)
	}
}

func TestColumn_AddCell(t *testing.T) {
	row := NewRow(3)
	cell := NewCell(scalar.Uint16(67), row, "timmeh")
	column := NewColumn("timmeh", RollingMean{}, Returns{})
	column.AddCell(cell)

	assert.Equal(t, 1, column.Len())
	grouped := column.Grouped(scalar.Uint16(67))
	assert.Len(t, grouped, 1)
	assert.Same(t, cell, grouped[0])
	assert.True(t, grouped[0].Equal(NewCell(scalar.Uint16(67), NewRow(3), "other")))
	assert.Nil(t, column.Grouped(scalar.Uint16(68)))

	_, ok := cell.RollingMean()
	assert.False(t, ok)
}

func TestColumn_AddCellRollingMean(t *testing.T) {
	column, _ := buildColumn("timmeh", NewRollingMean(true, 2),
		scalar.Uint16(67), scalar.Uint16(69))

	first, ok := column.cells[0].RollingMean()
	utils.AssertRollingMean(t, first, ok, scalar.Null(), false)
	last, ok := column.cells[1].RollingMean()
	utils.AssertRollingMean(t, last, ok, scalar.Uint16(68), true)
}

func TestColumn_RollingMeanSkipsNulls(t *testing.T) {
	column, _ := buildColumn("gaps", NewRollingMean(true, 3),
		scalar.Int64(3), scalar.Null(), scalar.Int64(9), scalar.Null(), scalar.Null(), scalar.Null())

	utils.AssertValues(t, column.RollingMeans(), []scalar.Value{
		scalar.Null(), scalar.Null(), scalar.Int64(6), scalar.Int64(9), scalar.Int64(9), scalar.Null(),
	})
	// A window of only nulls still carries a mean, and it is Null.
	mean, ok := column.cells[5].RollingMean()
	utils.AssertRollingMean(t, mean, ok, scalar.Null(), true)
	_, ok = column.cells[1].RollingMean()
	assert.False(t, ok)
}

func TestColumn_UpdateRollingMean(t *testing.T) {
	column, _ := buildColumn("timmeh", RollingMean{},
		scalar.Uint16(67), scalar.Uint16(69), scalar.Uint16(71))
	_, ok := column.cells[2].RollingMean()
	assert.False(t, ok)

	before := column.Version()
	column.UpdateRollingMean(NewRollingMean(true, 2))
	assert.Greater(t, column.Version(), before)
	utils.AssertValues(t, column.RollingMeans(), []scalar.Value{
		scalar.Null(), scalar.Uint16(68), scalar.Uint16(70),
	})

	column.UpdateRollingMean(NewRollingMean(true, 3))
	mean, ok := column.cells[2].RollingMean()
	utils.AssertRollingMean(t, mean, ok, scalar.Uint16(69), true)
	_, ok = column.cells[1].RollingMean()
	assert.False(t, ok)

	column.UpdateRollingMean(NewRollingMean(false, 3))
	for _, cell := range column.cells {
		_, ok := cell.RollingMean()
		assert.False(t, ok)
	}
}

func TestColumn_NewRollingMeanRejectsEmptyWindow(t *testing.T) {
	assert.Equal(t, RollingMean{}, NewRollingMean(true, 0))
	assert.Equal(t, RollingMean{Enabled: true, Window: 4}, NewRollingMean(true, 4))
	assert.Equal(t, Returns{Target: ""}, NewReturns(true, ""))
}

func TestColumn_DropCell(t *testing.T) {
	column, rows := buildColumn("timmeh", NewRollingMean(true, 2),
		scalar.Uint16(67), scalar.Uint16(69), scalar.Uint16(71))
	dropped := column.cells[1]

	column.DropCell(dropped)
	rows[2].UpdateIndex(1)

	assert.Equal(t, 2, column.Len())
	assert.True(t, dropped.Released())
	assert.Nil(t, column.Grouped(scalar.Uint16(69)))
	mean, ok := column.cells[1].RollingMean()
	utils.AssertRollingMean(t, mean, ok, scalar.Uint16(69), true)
	assertPartition(t, column)
}

func TestColumn_DropCellOutOfPlacePanics(t *testing.T) {
	column, _ := buildColumn("timmeh", RollingMean{}, scalar.Int64(1), scalar.Int64(2))
	stray := NewCell(scalar.Int64(1), NewRow(1), "timmeh")
	assert.Panics(t, func() { column.DropCell(stray) })

	beyond := NewCell(scalar.Int64(1), NewRow(5), "timmeh")
	assert.Panics(t, func() { column.DropCell(beyond) })
}

func TestColumn_GroupRemovalByIdentity(t *testing.T) {
	column, rows := buildColumn("dupes", RollingMean{},
		scalar.Int64(5), scalar.Int64(5), scalar.Int64(5))

	// After the first removal the survivors are renumbered, so the cell now
	// at row 0 compares equal to the one that was dropped.
	first := column.cells[0]
	column.DropCell(first)
	rows[1].UpdateIndex(0)
	rows[2].UpdateIndex(1)

	grouped := column.Grouped(scalar.Int64(5))
	assert.Len(t, grouped, 2)
	for _, cell := range grouped {
		assert.NotSame(t, first, cell)
	}
	assert.Same(t, column.cells[0], grouped[0])
	assertPartition(t, column)
}

func TestColumn_GroupingKeysNaNAndZero(t *testing.T) {
	column, _ := buildColumn("floats", RollingMean{},
		scalar.Float64(0), scalar.Float64(math.Copysign(0, -1)), scalar.Float64(math.NaN()), scalar.Float64(math.NaN()))
	assert.Equal(t, 2, column.Groups())
	assert.Len(t, column.Grouped(scalar.Float64(math.NaN())), 2)
}

func TestColumn_Mean(t *testing.T) {
	column, _ := buildColumn("timmeh", RollingMean{},
		scalar.Uint16(67), scalar.Uint16(69), scalar.Uint16(71))
	mean, ok := column.Mean()
	assert.True(t, ok)
	assert.True(t, mean.Equal(scalar.Uint16(69)), "got %v", mean)

	empty := NewColumn("empty", RollingMean{}, Returns{})
	_, ok = empty.Mean()
	assert.False(t, ok)

	text, _ := buildColumn("text", RollingMean{}, scalar.Text("a"), scalar.Text("b"))
	_, ok = text.Mean()
	assert.False(t, ok)
}

func TestColumn_MeanSkipsOtherKinds(t *testing.T) {
	column, _ := buildColumn("mixed", RollingMean{},
		scalar.Null(), scalar.Int32(-4), scalar.Text("x"), scalar.Int32(10), scalar.Null(), scalar.Float64(100))
	mean, ok := column.Mean()
	assert.True(t, ok)
	assert.True(t, mean.Equal(scalar.Int32(3)), "got %v", mean)

	floats, _ := buildColumn("floats", RollingMean{}, scalar.Float64(1), scalar.Float64(2))
	mean, ok = floats.Mean()
	assert.True(t, ok)
	assert.True(t, mean.Equal(scalar.Float64(1.5)), "got %v", mean)

	flags, _ := buildColumn("flags", RollingMean{}, scalar.Bool(true), scalar.Bool(false), scalar.Bool(true), scalar.Bool(true))
	mean, ok = flags.Mean()
	assert.True(t, ok)
	assert.True(t, mean.Equal(scalar.Float64(0.75)), "got %v", mean)
}

func TestColumn_MeanOverflow(t *testing.T) {
	column, _ := buildColumn("huge", RollingMean{},
		scalar.Int64(1<<62), scalar.Int64(1<<62), scalar.Int64(1<<62))
	_, ok := column.Mean()
	assert.False(t, ok)
}

func TestColumn_AllDifferencesToLast(t *testing.T) {
	column, _ := buildColumn("timmeh", RollingMean{},
		scalar.Uint16(67), scalar.Uint16(69), scalar.Uint16(71))
	utils.AssertValues(t, column.AllDifferencesToLast(), []scalar.Value{
		scalar.Null(), scalar.Int64(2), scalar.Int64(2),
	})
	assert.True(t, column.DifferenceToLast(-1).IsNull())
	assert.True(t, column.DifferenceToLast(3).IsNull())
}

func TestColumn_UpdateReturns(t *testing.T) {
	column, _ := buildColumn("price", RollingMean{},
		scalar.Int64(6), scalar.Int64(7), scalar.Int64(8), scalar.Int64(11), scalar.Int64(1))

	differences, ok := column.UpdateReturns(NewReturns(true, "price_returns"))
	assert.True(t, ok)
	utils.AssertValues(t, differences, []scalar.Value{
		scalar.Null(), scalar.Int64(1), scalar.Int64(1), scalar.Int64(3), scalar.Int64(-10),
	})
	assert.Equal(t, Returns{Enabled: true, Target: "price_returns"}, column.ReturnsConfig())

	differences, ok = column.UpdateReturns(Returns{})
	assert.False(t, ok)
	assert.Nil(t, differences)
}

func TestColumn_MostCommon(t *testing.T) {
	column, _ := buildColumn("letters", RollingMean{},
		scalar.Text("a"), scalar.Text("b"), scalar.Text("b"), scalar.Text("c"),
		scalar.Text("c"), scalar.Text("a"), scalar.Text("b"))

	top := column.MostCommon(2)
	assert.Len(t, top, 2)
	assert.True(t, top[0].Value.Equal(scalar.Text("b")))
	assert.Equal(t, 3, top[0].Count)
	assert.True(t, top[1].Value.Equal(scalar.Text("a")))
	assert.Equal(t, 2, top[1].Count)

	assert.Len(t, column.MostCommon(10), 3)
	assert.Empty(t, column.MostCommon(0))
}

func TestColumn_Summary(t *testing.T) {
	column, rows := buildColumn("numbers", RollingMean{},
		scalar.Int64(2), scalar.Int64(4), scalar.Int64(4), scalar.Int64(4),
		scalar.Int64(5), scalar.Int64(5), scalar.Int64(7), scalar.Int64(9), scalar.Text("skip"))

	summary := column.Summary()
	utils.AssertEqual(t, uint64(8), summary.Count)
	utils.AssertClose(t, summary.Mean, 5, 1e-9)
	utils.AssertClose(t, summary.Variance, 32.0/7.0, 1e-9)

	column.DropCell(column.cells[7])
	rows[8].UpdateIndex(7)
	summary = column.Summary()
	utils.AssertEqual(t, uint64(7), summary.Count)
	utils.AssertClose(t, summary.Mean, 31.0/7.0, 1e-6)
}

func TestColumn_ReplaceValue(t *testing.T) {
	column, _ := buildColumn("values", NewRollingMean(true, 2),
		scalar.Int64(1), scalar.Int64(3), scalar.Int64(5), scalar.Int64(3))

	column.replaceValue(1, scalar.Int64(7))
	utils.AssertValues(t, column.Values(), []scalar.Value{
		scalar.Int64(1), scalar.Int64(7), scalar.Int64(5), scalar.Int64(3),
	})
	utils.AssertValues(t, column.RollingMeans(), []scalar.Value{
		scalar.Null(), scalar.Int64(4), scalar.Int64(6), scalar.Int64(4),
	})
	assert.Len(t, column.Grouped(scalar.Int64(3)), 1)

	column.replaceValue(0, scalar.Int64(3))
	grouped := column.Grouped(scalar.Int64(3))
	assert.Len(t, grouped, 2)
	assert.Equal(t, 0, grouped[0].Row().Index())
	assert.Equal(t, 3, grouped[1].Row().Index())
	assertPartition(t, column)
}

func TestColumn_Release(t *testing.T) {
	column, rows := buildColumn("gone", RollingMean{}, scalar.Int64(1), scalar.Int64(2))
	cells := column.Cells()

	column.release()
	assert.Equal(t, 0, column.Len())
	assert.Equal(t, 0, column.Groups())
	for i, cell := range cells {
		assert.True(t, cell.Released())
		_, ok := rows[i].CellAt(0)
		assert.False(t, ok)
		assert.False(t, rows[i].Live())
	}
}

func TestColumn_Distribution(t *testing.T) {
	column, _ := buildColumn("numbers", RollingMean{},
		scalar.Int64(9), scalar.Null(), scalar.Uint8(1), scalar.Float64(4), scalar.Text("x"))
	distribution, ok := column.Distribution()
	assert.True(t, ok)
	utils.AssertEqual(t, 1.0, distribution.Min)
	utils.AssertEqual(t, 9.0, distribution.Max)
	utils.AssertClose(t, distribution.Median, 4, 1e-9)

	text, _ := buildColumn("text", RollingMean{}, scalar.Text("x"))
	_, ok = text.Distribution()
	assert.False(t, ok)
}

func TestColumn_RollingMeanSumsWide(t *testing.T) {
	column, _ := buildColumn("narrow", NewRollingMean(true, 2),
		scalar.Uint8(200), scalar.Uint8(100), scalar.Int8(-100), scalar.Int8(-120))

	mean, ok := column.cells[1].RollingMean()
	utils.AssertRollingMean(t, mean, ok, scalar.Uint8(150), true)
	wantMean, ok := column.Mean()
	assert.True(t, ok)
	assert.True(t, wantMean.Equal(scalar.Uint8(150)), "got %v", wantMean)

	// Mixed signedness averages in Int64, then fits back into that kind.
	mean, ok = column.cells[2].RollingMean()
	utils.AssertRollingMean(t, mean, ok, scalar.Int64(0), true)
	mean, ok = column.cells[3].RollingMean()
	utils.AssertRollingMean(t, mean, ok, scalar.Int8(-110), true)
}
