package seqmux

import (
	"iter"

	"github.com/navijation/njheap/heap"
)

// Mux merges sorted fallible sources into a single sorted stream. A source is
// a pull iterator returning its next element, an error, and whether an
// element was produced; each source must already be sorted under the mux
// ordering for the merged stream to be sorted.
type Mux[T any] struct {
	heap        heap.Heap[muxSource[T]]
	sourceCount int
}

type muxSource[T any] struct {
	current      T
	sourceNumber int
	next         func() (T, error, bool)
}

func NewMux[T any](less func(a, b T) bool) Mux[T] {
	return Mux[T]{
		heap: heap.NewHeap(func(a, b muxSource[T]) bool {
			// pick lower elements first, and upon ties pick earlier sources
			// first; this keeps the merge stable
			if less(a.current, b.current) {
				return true
			}
			if less(b.current, a.current) {
				return false
			}
			return a.sourceNumber < b.sourceNumber
		}),
	}
}

// AddSource pulls the source's first element and registers the source. An
// immediately exhausted source is accepted and contributes nothing; an error
// on the first pull is returned and the source is not registered.
func (me *Mux[T]) AddSource(next func() (T, error, bool)) error {
	item, err, exists := next()
	if err != nil {
		return err
	}
	sourceNumber := me.sourceCount
	me.sourceCount++
	if !exists {
		return nil
	}

	me.heap.Push(muxSource[T]{
		current:      item,
		sourceNumber: sourceNumber,
		next:         next,
	})
	return nil
}

// Next returns the least element among the sources' heads. When advancing the
// chosen source fails, its current element is returned together with the
// error.
func (me *Mux[T]) Next() (out T, hasNext bool, _ error) {
	entry, exists := me.heap.Pop().Unpack()
	if !exists {
		return out, false, nil
	}

	item, err, hasMore := entry.next()
	if err != nil {
		return entry.current, false, err
	}
	if hasMore {
		me.heap.Push(muxSource[T]{
			current:      item,
			sourceNumber: entry.sourceNumber,
			next:         entry.next,
		})
	}

	return entry.current, true, nil
}

// Merged merges sorted sequences into one sorted sequence.
func Merged[T any](less func(a, b T) bool, seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mux := NewMux(less)

		stops := make([]func(), 0, len(seqs))
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			stops = append(stops, stop)

			_ = mux.AddSource(func() (T, error, bool) {
				item, exists := next()
				return item, nil, exists
			})
		}

		for {
			item, hasNext, _ := mux.Next()
			if !hasNext {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
