package window

// Trailing is a fixed-size window that ends at the current position.
type Trailing struct {
	Size int
}

var _ Windowing = (*Trailing)(nil)

func NewTrailing(size int) *Trailing {
	if size < 1 {
		size = 1
	}
	return &Trailing{Size: size}
}

func (trailing *Trailing) Bounds(i, n int) (int, int, bool) {
	if i < 0 || i >= n || n < trailing.Size || i < trailing.Size-1 {
		return 0, 0, false
	}
	return i - trailing.Size + 1, i, true
}

// Removal shifts every later element left by one, so only the Size-1
// positions starting at p still saw the removed element in their window.
func (trailing *Trailing) AffectedByRemoval(p, n int) (int, int) {
	return p, min(p+trailing.Size-2, n-1)
}

func (trailing *Trailing) AffectedByUpdate(p, n int) (int, int) {
	return p, min(p+trailing.Size-1, n-1)
}
