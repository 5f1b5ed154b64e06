package lazyseq

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// The transformation is applied one element at a time, as the downstream consumer pulls.
func Map[To any, From any](src Sequence[From], transform func(From) To) Sequence[To] {
	return MapErr(src, func(v From) (To, error) {
		return transform(v), nil
	})
}

// MapErr is Map for transformations that can fail.
// A failed transformation stops the sequence and the cause becomes accessible through Err.
func MapErr[To any, From any](src Sequence[From], transform func(From) (To, error)) Sequence[To] {
	return &mapSeq[From, To]{
		Sequence:  src,
		Transform: transform,
	}
}

type mapSeq[From, To any] struct {
	Sequence[From]
	Transform func(From) (To, error)

	value To
	err   error
}

func (i *mapSeq[From, To]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Sequence.Next() {
		return false
	}
	v, err := i.Transform(i.Sequence.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *mapSeq[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Sequence.Err()
}

func (i *mapSeq[From, To]) Value() To {
	return i.value
}
