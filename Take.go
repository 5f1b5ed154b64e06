package lazyseq

// Take yields upstream elements until n have been yielded or the upstream exhausts, whichever comes first.
// The upstream is never pulled past the count: Take(src, 0) returns a sequence that pulls nothing at all,
// and an early-stopped upstream is simply never resumed.
func Take[V any](src Sequence[V], n int) Sequence[V] {
	return &takeSeq[V]{
		Sequence: src,
		N:        n,
	}
}

type takeSeq[V any] struct {
	Sequence[V]
	N     int
	index int
}

func (i *takeSeq[V]) Next() bool {
	if !(i.index < i.N) {
		return false
	}
	if !i.Sequence.Next() {
		return false
	}
	i.index++
	return true
}
