package lazyseq

// Skip discards the first n upstream elements, or fewer if the upstream exhausts earlier,
// then yields the remainder unchanged.
// The skip prefix is consumed on the first downstream pull, not at construction time.
func Skip[V any](src Sequence[V], n int) Sequence[V] {
	return &skipSeq[V]{
		Sequence: src,
		N:        n,
	}
}

type skipSeq[V any] struct {
	Sequence[V]
	N       int
	skipped int
}

func (i *skipSeq[V]) Next() bool {
	for i.skipped < i.N {
		i.skipped++
		if !i.Sequence.Next() {
			return false
		}
	}
	return i.Sequence.Next()
}
