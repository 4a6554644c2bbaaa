package tree

import "container/heap"

// HeapItem is ranked by Priority, and among equal priorities the item with
// the larger Order ranks lower.
type HeapItem struct {
	Value    interface{}
	Priority int
	Order    int
	Index    int
}

type MinHeap []*HeapItem

func (mh MinHeap) Len() int {
	return len(mh)
}

func ranksLower(a, b *HeapItem) bool {
	if a.Priority == b.Priority {
		return a.Order > b.Order
	}
	return a.Priority < b.Priority
}

func (mh MinHeap) Less(i, j int) bool {
	return ranksLower(mh[i], mh[j])
}

func (mh MinHeap) Swap(i, j int) {
	mh[i], mh[j] = mh[j], mh[i]
	mh[i].Index = i
	mh[j].Index = j
}

func (mh *MinHeap) Push(x interface{}) {
	n := len(*mh)
	item := x.(*HeapItem)
	item.Index = n
	*mh = append(*mh, item)
}

func (mh *MinHeap) Pop() interface{} {
	old := *mh
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.Index = -1
	*mh = old[0 : n-1]
	return item
}

func (mh *MinHeap) Top() interface{} {
	arr := *mh
	item := arr[0]
	return item
}

// ReplaceTop swaps the lowest ranked item for item.
func (mh *MinHeap) ReplaceTop(item *HeapItem) {
	item.Index = 0
	(*mh)[0] = item
	heap.Fix(mh, 0)
}

func NewMinHeap(initSize int) *MinHeap {
	mh := make(MinHeap, 0, initSize)
	heap.Init(&mh)
	return &mh
}

// TopK returns the k highest ranked items, best first.
func TopK(items []*HeapItem, k int) []*HeapItem {
	if k <= 0 {
		return nil
	}
	minHeap := NewMinHeap(k)
	for _, item := range items {
		if minHeap.Len() < k {
			heap.Push(minHeap, item)
		} else if ranksLower(minHeap.Top().(*HeapItem), item) {
			minHeap.ReplaceTop(item)
		}
	}
	top := make([]*HeapItem, minHeap.Len())
	for i := len(top) - 1; i >= 0; i-- {
		top[i] = heap.Pop(minHeap).(*HeapItem)
	}
	return top
}
