package lazyseq

// Collect drains the sequence into a freshly allocated slice, preserving yield order.
// The sequence is closed afterwards, so collecting the same instance a second time
// returns an empty slice.
func Collect[T any](s Sequence[T]) (vs []T, err error) {
	defer func() {
		closeErr := s.Close()
		if err == nil {
			err = closeErr
		}
	}()
	vs = make([]T, 0)
	for s.Next() {
		vs = append(vs, s.Value())
	}
	return vs, s.Err()
}

// CollectSet drains the sequence into a set, collapsing duplicate elements by value equality.
// The resulting set carries no ordering.
func CollectSet[T comparable](s Sequence[T]) (vs map[T]struct{}, err error) {
	defer func() {
		closeErr := s.Close()
		if err == nil {
			err = closeErr
		}
	}()
	vs = make(map[T]struct{})
	for s.Next() {
		vs[s.Value()] = struct{}{}
	}
	return vs, s.Err()
}
