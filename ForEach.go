package lazyseq

import "go.llib.dev/frameless/pkg/errorkit"

// Break can be returned from the ForEach block to stop the drain early without reporting an error.
const Break errorkit.Error = `lazyseq:break`

// ForEach drains the sequence, invoking fn once per element, in sequence order, for its side effect.
func ForEach[T any](s Sequence[T], fn func(T) error) (rErr error) {
	defer func() {
		cErr := s.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for s.Next() {
		v := s.Value()
		err := fn(v)
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return s.Err()
}
