package lazyseq_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazyseq"
)

func ExampleGroupBy() {
	words := lazyseq.FromSlice([]string{"alpha", "beta", "bravo", "apple"})
	groups := lazyseq.GroupBy(words, func(w string) byte { return w[0] })

	defer groups.Close()
	for groups.Next() {
		g := groups.Value()
		members, _ := lazyseq.Collect(g.Values)
		fmt.Println(string(g.Key), members)
	}
}

func TestGroupBy_smoke(t *testing.T) {
	it := assert.MakeIt(t)

	groups, err := lazyseq.Collect(lazyseq.GroupBy(
		lazyseq.FromSlice([]int{1, 2, 2, 2, 3, 4, 4}),
		func(n int) int { return n }))
	it.Must.NoError(err)

	keys := make([]int, 0)
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	it.Must.Equal([]int{1, 2, 3, 4}, keys)

	vs, err := lazyseq.Collect(groups[1].Values)
	it.Must.NoError(err)
	it.Must.Equal([]int{2, 2, 2}, vs)
}

func TestGroupBy(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		input = testcase.Let(s, func(t *testcase.T) []string {
			return []string{"ant", "bee", "axolotl", "cat", "badger", "albatross"}
		})
		src = testcase.Let(s, func(t *testcase.T) lazyseq.Sequence[string] {
			return lazyseq.FromSlice(input.Get(t))
		})
	)
	subject := testcase.Let(s, func(t *testcase.T) lazyseq.Sequence[lazyseq.Group[byte, string]] {
		return lazyseq.GroupBy(src.Get(t), func(w string) byte { return w[0] })
	})

	s.Then("keys are yielded in first-occurrence order", func(t *testcase.T) {
		groups, err := lazyseq.Collect(subject.Get(t))
		t.Must.NoError(err)

		var keys []byte
		for _, g := range groups {
			keys = append(keys, g.Key)
		}
		t.Must.Equal([]byte{'a', 'b', 'c'}, keys)
	})

	s.Then("each group holds every matching element, in upstream order", func(t *testcase.T) {
		groups, err := lazyseq.Collect(subject.Get(t))
		t.Must.NoError(err)

		vs, err := lazyseq.Collect(groups[0].Values)
		t.Must.NoError(err)
		t.Must.Equal([]string{"ant", "axolotl", "albatross"}, vs)

		vs, err = lazyseq.Collect(groups[1].Values)
		t.Must.NoError(err)
		t.Must.Equal([]string{"bee", "badger"}, vs)
	})

	s.Then("group values are usable as the upstream of further stages", func(t *testcase.T) {
		groups, err := lazyseq.Collect(subject.Get(t))
		t.Must.NoError(err)

		n, err := lazyseq.Count(lazyseq.Filter(groups[0].Values, func(w string) bool {
			return 3 < len(w)
		}))
		t.Must.NoError(err)
		t.Must.Equal(2, n)
	})

	s.When("the source sequence is empty", func(s *testcase.Spec) {
		src.Let(s, func(t *testcase.T) lazyseq.Sequence[string] {
			return lazyseq.Empty[string]()
		})

		s.Then("it yields an empty sequence of groups", func(t *testcase.T) {
			groups, err := lazyseq.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(0, len(groups))
		})
	})

	s.When("the source sequence reports an error", func(s *testcase.Spec) {
		expectedErr := testcase.Let(s, func(t *testcase.T) error {
			return errors.New(t.Random.String())
		})
		src.Let(s, func(t *testcase.T) lazyseq.Sequence[string] {
			return lazyseq.Fail[string](expectedErr.Get(t))
		})

		s.Then("no group is yielded and the cause is reported with Err", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.False(sub.Next())
			t.Must.ErrorIs(expectedErr.Get(t), sub.Err())
		})
	})

	s.Test("the source is not drained before the first pull", func(t *testcase.T) {
		var pulled bool
		stub := lazyseq.Stub(src.Get(t))
		stub.StubNext = func() bool {
			pulled = true
			return stub.Sequence.Next()
		}

		sub := lazyseq.GroupBy[byte, string](stub, func(w string) byte { return w[0] })
		t.Must.False(pulled)

		t.Must.True(sub.Next())
		t.Must.True(pulled)
	})

	s.Test("the first pull drains the whole source in a single pass", func(t *testcase.T) {
		var pulls int
		stub := lazyseq.Stub(src.Get(t))
		stub.StubNext = func() bool {
			pulls++
			return stub.Sequence.Next()
		}

		sub := lazyseq.GroupBy[byte, string](stub, func(w string) byte { return w[0] })
		t.Must.True(sub.Next())
		t.Must.Equal(len(input.Get(t))+1, pulls)
	})
}
