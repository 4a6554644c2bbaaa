package window

// Windowing maps a position in a sequence of length n onto the contiguous
// range of positions whose statistic depends on it.
type Windowing interface {
	// Return [lo, hi] for the window ending at position i, and false if
	// no complete window ends there.
	Bounds(i, n int) (int, int, bool)

	// Return the positions [lo, hi] whose windows must be recomputed
	// after the element at position p was removed from a sequence that
	// now has length n. Empty when lo > hi.
	AffectedByRemoval(p, n int) (int, int)

	// As above, for the element at position p being replaced in place.
	AffectedByUpdate(p, n int) (int, int)
}
