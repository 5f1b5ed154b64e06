package lazyseq

// Reduce folds the sequence into a single value,
// starting from the initial accumulator and combining it with each element in order.
func Reduce[
	R, T any,
	FN func(R, T) R |
		func(R, T) (R, error),
](s Sequence[T], initial R, blk FN) (result R, rErr error) {
	var do func(R, T) (R, error)
	switch blk := any(blk).(type) {
	case func(R, T) R:
		do = func(result R, t T) (R, error) {
			return blk(result, t), nil
		}
	case func(R, T) (R, error):
		do = blk
	}
	defer func() {
		cErr := s.Close()
		if rErr != nil {
			return
		}
		rErr = cErr
	}()
	var v = initial
	for s.Next() {
		var err error
		v, err = do(v, s.Value())
		if err != nil {
			return v, err
		}
	}
	return v, s.Err()
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in a sequence but don't want to do anything else.
func Count[T any](s Sequence[T]) (total int, err error) {
	defer func() {
		closeErr := s.Close()
		if err == nil {
			err = closeErr
		}
	}()
	total = 0
	for s.Next() {
		total++
	}
	return total, s.Err()
}

// First returns the first value of the sequence and closes it.
func First[T any](s Sequence[T]) (value T, found bool, err error) {
	defer func() {
		cErr := s.Close()
		if err == nil {
			err = cErr
		}
	}()
	if !s.Next() {
		return value, false, s.Err()
	}
	return s.Value(), true, s.Err()
}
