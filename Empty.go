package lazyseq

// Empty sequence is used to represent nil result with Null object pattern
func Empty[T any]() Sequence[T] {
	return &emptySeq[T]{}
}

// emptySeq sequence can help achieve Null Object Pattern when no value is logically expected and a sequence should be returned
type emptySeq[T any] struct{}

func (i *emptySeq[T]) Close() error {
	return nil
}

func (i *emptySeq[T]) Next() bool {
	return false
}

func (i *emptySeq[T]) Err() error {
	return nil
}

func (i *emptySeq[T]) Value() T {
	var v T
	return v
}

// Fail returns a Sequence where the only thing it can do is returning an Err, and never have a next element.
// This can be used when a source encounter an unexpected, non recoverable error during construction.
func Fail[T any](err error) Sequence[T] {
	return &failSeq[T]{err}
}

type failSeq[T any] struct {
	err error
}

func (i *failSeq[T]) Close() error {
	return nil
}

func (i *failSeq[T]) Next() bool {
	return false
}

func (i *failSeq[T]) Err() error {
	return i.err
}

func (i *failSeq[T]) Value() T {
	var v T
	return v
}
