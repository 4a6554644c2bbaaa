package config

import (
	"cellframe/core"
	"cellframe/scalar"
	"fmt"
	"time"
)

// DefaultInterval spaces rows when a definition gives no interval, so rates
// of change are per row.
const DefaultInterval = time.Second

type RollingMeanConfig struct {
	Enabled bool `yaml:"enabled"`
	Window  int  `yaml:"window"`
}

type ReturnsConfig struct {
	Name        string            `yaml:"name"`
	RollingMean RollingMeanConfig `yaml:"rolling_mean"`
}

type ColumnConfig struct {
	Name        string            `yaml:"name"`
	Kind        string            `yaml:"kind"`
	RollingMean RollingMeanConfig `yaml:"rolling_mean"`
	Returns     *ReturnsConfig    `yaml:"returns"`
}

// FrameConfig describes a table: its value columns, the rows to load into
// them and the returns columns to derive afterwards. Row i is stamped
// Start + i*Interval.
type FrameConfig struct {
	Columns  []ColumnConfig  `yaml:"columns"`
	Rows     [][]interface{} `yaml:"rows"`
	Start    time.Time       `yaml:"start"`
	Interval time.Duration   `yaml:"interval"`
	Cache    bool            `yaml:"cache"`
}

func rowClock(start time.Time, interval time.Duration) func() time.Time {
	rows := 0
	return func() time.Time {
		at := start.Add(time.Duration(rows) * interval)
		rows++
		return at
	}
}

func (cfg RollingMeanConfig) build() core.RollingMean {
	return core.NewRollingMean(cfg.Enabled, cfg.Window)
}

// Build creates the table a frame definition describes. Cells are converted
// to their column's kind when one is given.
func Build(frame *FrameConfig) (*core.Table, error) {
	names := make([]string, len(frame.Columns))
	kinds := make([]scalar.Kind, len(frame.Columns))
	for i, column := range frame.Columns {
		names[i] = column.Name
		if column.Kind == "" {
			continue
		}
		kind, err := scalar.ParseKind(column.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %v", core.ErrInvalidConfig, column.Name, err)
		}
		kinds[i] = kind
	}

	interval := frame.Interval
	if interval < 0 {
		return nil, fmt.Errorf("%w: negative interval %v", core.ErrInvalidConfig, interval)
	}
	if interval == 0 {
		interval = DefaultInterval
	}

	table, err := core.NewTable(names)
	if err != nil {
		return nil, err
	}
	table.SetClock(rowClock(frame.Start, interval))
	for _, column := range frame.Columns {
		if column.RollingMean.Enabled {
			if err := table.UpdateRollingMean(column.Name, column.RollingMean.build()); err != nil {
				return nil, err
			}
		}
	}

	for r, raw := range frame.Rows {
		if len(raw) != len(frame.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns",
				core.ErrLengthMismatch, r, len(raw), len(frame.Columns))
		}
		values := make([]scalar.Value, len(raw))
		for c, native := range raw {
			value, err := convertCell(native, kinds[c])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", r, names[c], err)
			}
			values[c] = value
		}
		if _, err := table.AddRow(values); err != nil {
			return nil, err
		}
	}

	for _, column := range frame.Columns {
		if column.Returns == nil {
			continue
		}
		err := table.CreateReturnsForColumn(column.Name, column.Returns.Name, column.Returns.RollingMean.build())
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

func convertCell(native interface{}, kind scalar.Kind) (scalar.Value, error) {
	value, ok := scalar.From(native)
	if !ok {
		return scalar.Null(), fmt.Errorf("%w: unsupported value %v (%T)", core.ErrInvalidConfig, native, native)
	}
	if kind == scalar.KindNull || value.IsNull() || value.Kind() == kind {
		return value, nil
	}
	if !kind.IsNumeric() || !value.IsNumeric() {
		return scalar.Null(), fmt.Errorf("%w: %v is not a %s", core.ErrInvalidConfig, value, kind)
	}
	converted := scalar.Convert(value, kind)
	if converted.IsNull() {
		return scalar.Null(), fmt.Errorf("%w: %v does not fit in %s", core.ErrInvalidConfig, value, kind)
	}
	return converted, nil
}
