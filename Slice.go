package lazyseq

// FromSlice wraps a slice into a Sequence that yields each element in original order, exactly once.
// The slice itself is not copied; elements are read lazily as the sequence is pulled.
func FromSlice[T any](slice []T) Sequence[T] {
	return &sliceSeq[T]{Slice: slice}
}

type sliceSeq[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *sliceSeq[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceSeq[T]) Err() error {
	return nil
}

func (i *sliceSeq[T]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceSeq[T]) Value() T {
	return i.value
}
