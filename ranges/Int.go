// Package ranges provide sequence sources over numeric and character ranges.
package ranges

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/lazyseq"
)

// ErrInvalidRange is returned at construction time when the range boundaries are reversed.
// No element is ever produced from an invalid range.
const ErrInvalidRange errorkit.Error = "InvalidRange"

// Int returns a sequence over the inclusive integer range of begin, begin+1, ..., end.
// A range where end < begin is refused with ErrInvalidRange before any element is produced;
// begin == end is a valid single element range.
func Int(begin, end int) (lazyseq.Sequence[int], error) {
	if end < begin {
		return nil, ErrInvalidRange.F("begin %d is greater than end %d", begin, end)
	}
	return &intRange{Begin: begin, End: end}, nil
}

type intRange struct {
	Begin, End int
	nextIndex  int
	closed     bool
}

func (ir *intRange) Close() error {
	ir.closed = true
	return nil
}

func (ir *intRange) Err() error {
	return nil
}

func (ir *intRange) Next() bool {
	if ir.closed {
		return false
	}
	if ir.End < ir.Begin+ir.nextIndex {
		return false
	}
	ir.nextIndex++
	return true
}

func (ir *intRange) Value() int {
	return ir.Begin + ir.nextIndex - 1
}
