package main

import (
	"cellframe/core"
	"cellframe/scalar"
	"fmt"
	"io"
	"strings"
)

type reportOptions struct {
	Points   int
	Top      int
	DropRows []int
}

func joinValues(values []scalar.Value) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = value.String()
	}
	return strings.Join(parts, " ")
}

// meanKind is the kind of the first rolling mean that carries a number.
func meanKind(column *core.Column) (scalar.Kind, bool) {
	for _, mean := range column.RollingMeans() {
		if mean.IsNumeric() {
			return mean.Kind(), true
		}
	}
	return scalar.KindNull, false
}

func writeReport(w io.Writer, table *core.Table, options reportOptions) error {
	fmt.Fprintf(w, "rows=%d columns=%d\n", table.Len(), table.Width())
	for _, column := range table.Columns() {
		fmt.Fprintf(w, "\ncolumn %s (groups=%d)\n", column.Name(), column.Groups())
		fmt.Fprintf(w, "  values:        %s\n", joinValues(column.Values()))
		if column.RollingMeanConfig().Enabled {
			fmt.Fprintf(w, "  rolling means: %s\n", joinValues(column.RollingMeans()))
		}
		if mean, ok := column.Mean(); ok {
			fmt.Fprintf(w, "  mean:          %s\n", mean)
		}
		if summary := column.Summary(); summary.Count > 0 {
			fmt.Fprintf(w, "  summary:       count=%d mean=%.4g sd=%.4g\n", summary.Count, summary.Mean, summary.StdDev)
		}

		if distribution, ok := column.Distribution(); ok {
			fmt.Fprintf(w, "  distribution:  min=%.4g median=%.4g max=%.4g iqr=%.4g\n",
				distribution.Min, distribution.Median, distribution.Max, distribution.IQR)
		}

		common := column.MostCommon(options.Top)
		parts := make([]string, len(common))
		for i, group := range common {
			parts[i] = fmt.Sprintf("%s(x%d)", group.Value, group.Count)
		}
		fmt.Fprintf(w, "  most common:   %s\n", strings.Join(parts, " "))

		kind, ok := meanKind(column)
		if !ok {
			continue
		}
		series, err := table.RateOfChange(column.Name(), kind, options.Points)
		if err != nil {
			return err
		}
		if len(series) > 0 {
			last := series[len(series)-1]
			fmt.Fprintf(w, "  rate:          %.4g per second over %d means\n", last.Slope, options.Points)
		}
	}
	return nil
}
