package lazyseq

// Stub wraps a sequence so that any of its methods can be overridden in a test.
func Stub[T any](s Sequence[T]) *StubSeq[T] {
	return &StubSeq[T]{
		Sequence:  s,
		StubValue: s.Value,
		StubClose: s.Close,
		StubNext:  s.Next,
		StubErr:   s.Err,
	}
}

type StubSeq[T any] struct {
	Sequence  Sequence[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

// wrapper

func (m *StubSeq[T]) Close() error {
	return m.StubClose()
}

func (m *StubSeq[T]) Next() bool {
	return m.StubNext()
}

func (m *StubSeq[T]) Err() error {
	return m.StubErr()
}

func (m *StubSeq[T]) Value() T {
	return m.StubValue()
}

// Reseting stubs

func (m *StubSeq[T]) ResetClose() {
	m.StubClose = m.Sequence.Close
}

func (m *StubSeq[T]) ResetNext() {
	m.StubNext = m.Sequence.Next
}

func (m *StubSeq[T]) ResetErr() {
	m.StubErr = m.Sequence.Err
}

func (m *StubSeq[T]) ResetValue() {
	m.StubValue = m.Sequence.Value
}
