package lazyseq

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotANumber is returned by the numeric terminal evaluators (Sum, Min, Max)
	// the moment a non numeric element is pulled from the sequence.
	// The drain in progress is aborted and no partial result is returned.
	ErrNotANumber errorkit.Error = "NotANumber"
	// ErrEmptySequence is returned by Min and Max when the sequence yields zero elements,
	// as the extrema of an empty sequence is not defined.
	ErrEmptySequence errorkit.Error = "EmptySequence"
)
