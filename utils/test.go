package utils

import (
	"cellframe/scalar"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Fatalf("Expected %v to be within %v of %v\n", a, tolerance, b)
	}
}

// AssertValues compares scalar series element-wise using Value.Equal.
func AssertValues(t *testing.T, got []scalar.Value, want []scalar.Value) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scalar values differ (-want +got):\n%s", diff)
	}
}

// AssertRollingMean checks a memoised rolling mean, where ok=false means no
// mean is expected.
func AssertRollingMean(t *testing.T, got scalar.Value, gotOk bool, want scalar.Value, wantOk bool) {
	t.Helper()
	if gotOk != wantOk {
		t.Fatalf("Expected rolling mean present=%v, got present=%v (%v)\n", wantOk, gotOk, got)
	}
	if wantOk && !got.Equal(want) {
		t.Fatalf("Expected rolling mean %v (%v), got %v (%v)\n", want, want.Kind(), got, got.Kind())
	}
}
