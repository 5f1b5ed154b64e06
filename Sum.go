package lazyseq

// Sum drains the sequence and accumulates the arithmetic sum of its elements, starting at 0.
// The first element that is not a numeric value aborts the drain with ErrNotANumber,
// and no partial sum is returned.
func Sum[V any](s Sequence[V]) (total float64, err error) {
	defer func() {
		cErr := s.Close()
		if err == nil {
			err = cErr
		}
	}()
	for s.Next() {
		v := s.Value()
		n, ok := toFloat64(v)
		if !ok {
			return 0, ErrNotANumber.F("%T is not a numeric value", v)
		}
		total += n
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	return total, nil
}
