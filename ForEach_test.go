package lazyseq_test

import (
	"errors"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazyseq"
)

func TestForEach(t *testing.T) {
	t.Run("it invokes the block once per element, in sequence order", func(t *testing.T) {
		it := assert.MakeIt(t)

		var visited []int
		err := lazyseq.ForEach(lazyseq.FromSlice([]int{1, 2, 3}), func(n int) error {
			visited = append(visited, n)
			return nil
		})
		it.Must.NoError(err)
		it.Must.Equal([]int{1, 2, 3}, visited)
	})

	t.Run("when Break is returned, the drain stops early without an error", func(t *testing.T) {
		it := assert.MakeIt(t)

		var visited []int
		err := lazyseq.ForEach(lazyseq.FromSlice([]int{1, 2, 3}), func(n int) error {
			visited = append(visited, n)
			if n == 2 {
				return lazyseq.Break
			}
			return nil
		})
		it.Must.NoError(err)
		it.Must.Equal([]int{1, 2}, visited)
	})

	t.Run("when the block fails, the error is returned and the drain stops", func(t *testing.T) {
		it := assert.MakeIt(t)

		expectedErr := errors.New("boom")
		var visited []int
		err := lazyseq.ForEach(lazyseq.FromSlice([]int{1, 2, 3}), func(n int) error {
			visited = append(visited, n)
			return expectedErr
		})
		it.Must.ErrorIs(expectedErr, err)
		it.Must.Equal([]int{1}, visited)
	})

	t.Run("it closes the sequence, so a second drain visits nothing", func(t *testing.T) {
		it := assert.MakeIt(t)

		seq := lazyseq.FromSlice([]int{1, 2, 3})
		it.Must.NoError(lazyseq.ForEach(seq, func(int) error { return nil }))

		var visited int
		it.Must.NoError(lazyseq.ForEach(seq, func(int) error {
			visited++
			return nil
		}))
		it.Must.Equal(0, visited)
	})
}
