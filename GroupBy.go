package lazyseq

import "go.llib.dev/frameless/pkg/errorkit"

// Group is the result unit of GroupBy:
// a key together with a fresh sequence over every upstream element that mapped to that key,
// in the order those elements appeared upstream.
type Group[K comparable, V any] struct {
	Key    K
	Values Sequence[V]
}

// GroupBy buckets the upstream elements by the key function,
// and yields one Group per distinct key, in first-occurrence order of the keys.
//
// Unlike every other stage, GroupBy is an eager barrier:
// no key's membership is final until the last upstream element is seen,
// so the first downstream pull drains the entire upstream in one uninterrupted pass
// before the first Group is yielded.
// If the upstream reports an error during that pass, no groups are yielded
// and the cause is accessible through Err.
func GroupBy[K comparable, V any](src Sequence[V], key func(V) K) Sequence[Group[K, V]] {
	return &groupBySeq[K, V]{src: src, key: key}
}

type groupBySeq[K comparable, V any] struct {
	src Sequence[V]
	key func(V) K

	drained bool
	closed  bool
	err     error

	keys    []K
	buckets map[K][]V

	index int
	value Group[K, V]
}

func (i *groupBySeq[K, V]) Next() bool {
	if i.closed {
		return false
	}
	if !i.drained {
		i.drain()
	}
	if i.err != nil {
		return false
	}
	if len(i.keys) <= i.index {
		return false
	}
	k := i.keys[i.index]
	i.index++
	i.value = Group[K, V]{Key: k, Values: FromSlice(i.buckets[k])}
	return true
}

func (i *groupBySeq[K, V]) drain() {
	i.drained = true
	i.buckets = make(map[K][]V)
	for i.src.Next() {
		v := i.src.Value()
		k := i.key(v)
		if _, ok := i.buckets[k]; !ok {
			i.keys = append(i.keys, k)
		}
		i.buckets[k] = append(i.buckets[k], v)
	}
	i.err = errorkit.Merge(i.src.Err(), i.src.Close())
}

func (i *groupBySeq[K, V]) Err() error {
	return i.err
}

func (i *groupBySeq[K, V]) Value() Group[K, V] {
	return i.value
}

func (i *groupBySeq[K, V]) Close() error {
	i.closed = true
	if i.drained {
		return nil
	}
	return i.src.Close()
}
