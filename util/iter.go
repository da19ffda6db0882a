package util

import "iter"

func SeqOf[T any](items ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

func CollectSeq[T any](seq iter.Seq[T]) (out []T) {
	for item := range seq {
		out = append(out, item)
	}
	return out
}
