package lazyseq

import "go.llib.dev/frameless/pkg/compare"

// Min drains the sequence and returns its smallest element under standard numeric ordering.
// It returns ErrEmptySequence when the sequence yields zero elements,
// and ErrNotANumber when a non numeric element is pulled.
func Min[V any](s Sequence[V]) (float64, error) {
	return extremum(s, compare.IsLess)
}

// Max drains the sequence and returns its largest element under standard numeric ordering.
// It returns ErrEmptySequence when the sequence yields zero elements,
// and ErrNotANumber when a non numeric element is pulled.
func Max[V any](s Sequence[V]) (float64, error) {
	return extremum(s, compare.IsGreater)
}

func extremum[V any](s Sequence[V], better func(int) bool) (m float64, err error) {
	defer func() {
		cErr := s.Close()
		if err == nil {
			err = cErr
		}
	}()
	var found bool
	for s.Next() {
		v := s.Value()
		n, ok := toFloat64(v)
		if !ok {
			return 0, ErrNotANumber.F("%T is not a numeric value", v)
		}
		if !found || better(compare.Numbers(n, m)) {
			m = n
			found = true
		}
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrEmptySequence
	}
	return m, nil
}
