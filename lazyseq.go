// Package lazyseq provides lazy, composable, pull-based sequence processing.
//
// # Summary
//
// A Sequence's goal is to decouple the origin of the data from the consumer who uses that data.
// A pipeline is built by wrapping a source sequence into stage sequences (Filter, Map, Take, Skip, GroupBy),
// and nothing is evaluated until a terminal evaluator (Collect, CollectSet, Sum, Min, Max, ForEach, Reduce)
// starts pulling values through the chain, one element at a time.
// A Sequence represents a finite ordered list of elements,
// which length is not known until it is fully drained.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package lazyseq

import (
	"io"
)

// Sequence define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use a sequence to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// A Sequence is single-use.
// Once drained or closed, Next keeps returning false,
// so re-draining an exhausted sequence yields an empty result rather than a repeat of the previous one.
// Every stage owns its upstream sequence exclusively;
// pulling from the same upstream through two stages is not a supported usage.
type Sequence[V any] interface {
	// Closer is required to make it able to cancel sequences where resources are being used behind the scene,
	// for all other cases where the underlying io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the sequence.
	// The action should be repeatable without side effects.
	Value() V
}

// Must flattens the (Sequence, error) constructor result forms into a single return value,
// at the cost of panicking on a non nil error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
