package lazyseq

// Filter will select elements of the upstream sequence where the filter function returns true.
// Elements failing the selection are discarded without ever reaching the downstream consumer,
// so a single downstream pull may advance the upstream by more than one element.
func Filter[T any](src Sequence[T], filter func(T) bool) Sequence[T] {
	return &filterSeq[T]{Sequence: src, Filter: filter}
}

type filterSeq[T any] struct {
	Sequence[T]
	Filter func(T) bool

	value T
}

func (i *filterSeq[T]) Value() T {
	return i.value
}

func (i *filterSeq[T]) Next() bool {
	for i.Sequence.Next() {
		i.value = i.Sequence.Value()
		if i.Filter(i.value) {
			return true
		}
	}
	return false
}
