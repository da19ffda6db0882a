package heap

import (
	"cmp"

	"github.com/navijation/njheap/util"
)

// Heap is a binary min-heap over a caller-supplied ordering predicate. The
// predicate must be a strict weak ordering; the heap does not validate this.
// A Heap must not be mutated from multiple goroutines without external
// synchronization.
type Heap[T any] struct {
	less  func(a, b T) bool
	items []T
}

// NewHeap creates a heap ordered by less, then pushes the initial items one
// by one in argument order.
func NewHeap[T any](less func(a, b T) bool, items ...T) Heap[T] {
	out := Heap[T]{
		less:  less,
		items: make([]T, 0, len(items)),
	}
	for _, item := range items {
		out.Push(item)
	}
	return out
}

// NewOrderedHeap creates a heap over a naturally ordered element type, using
// the type's "less than" relation.
func NewOrderedHeap[T cmp.Ordered](items ...T) Heap[T] {
	return NewHeap(cmp.Less[T], items...)
}

func (me *Heap[T]) Size() int {
	return len(me.items)
}

func (me *Heap[T]) IsEmpty() bool {
	return len(me.items) == 0
}

// Peek returns the least element without removing it, or an empty optional
// when the heap is empty.
func (me *Heap[T]) Peek() util.Optional[T] {
	if len(me.items) == 0 {
		return util.None[T]()
	}
	return util.Some(me.items[0])
}

func (me *Heap[T]) Push(item T) {
	me.items = append(me.items, item)
	me.siftUp(len(me.items) - 1)
}

// Pop removes and returns the least element, or an empty optional when the
// heap is empty.
func (me *Heap[T]) Pop() util.Optional[T] {
	if len(me.items) == 0 {
		return util.None[T]()
	}

	last := len(me.items) - 1
	me.items[0], me.items[last] = me.items[last], me.items[0]
	out := me.items[last]
	me.items = me.items[:last]
	me.siftDown(0)

	return util.Some(out)
}

func (me *Heap[T]) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if me.less(me.items[parent], me.items[idx]) {
			return
		}
		me.items[parent], me.items[idx] = me.items[idx], me.items[parent]
		idx = parent
	}
}

func (me *Heap[T]) siftDown(idx int) {
	for {
		left, right := 2*idx+1, 2*idx+2
		if left >= len(me.items) {
			return
		}

		// the right child displaces the left only on strict precedence
		least := left
		if right < len(me.items) && me.less(me.items[right], me.items[left]) {
			least = right
		}

		if !me.less(me.items[least], me.items[idx]) {
			return
		}
		me.items[idx], me.items[least] = me.items[least], me.items[idx]
		idx = least
	}
}
