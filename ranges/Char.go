package ranges

import (
	"go.llib.dev/lazyseq"
)

// Char returns a sequence over the inclusive character range of begin, ..., end.
// A range where end < begin is refused with ErrInvalidRange before any element is produced.
func Char(begin, end rune) (lazyseq.Sequence[rune], error) {
	if end < begin {
		return nil, ErrInvalidRange.F("begin %q is greater than end %q", begin, end)
	}
	return &charRange{Begin: begin, End: end}, nil
}

type charRange struct {
	Begin, End rune
	nextIndex  rune
	closed     bool
}

func (rr *charRange) Close() error {
	rr.closed = true
	return nil
}

func (rr *charRange) Err() error {
	return nil
}

func (rr *charRange) Next() bool {
	if rr.closed {
		return false
	}
	if rr.End < rr.Begin+rr.nextIndex {
		return false
	}
	rr.nextIndex++
	return true
}

func (rr *charRange) Value() rune {
	return rr.Begin + rr.nextIndex - 1
}
