// SPDX-License-Identifier: MIT

package dataflow_test

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlath/dataflow"
)

// word is a string grouping key.
type word string

func (w word) Compare(o word) int { return cmp.Compare(w, o) }
func (w word) Hash() uint64        { return xxhash.Sum64String(string(w)) }

func newEnv(t *testing.T, p int) *dataflow.Environment {
	t.Helper()
	env, err := dataflow.NewEnvironment(dataflow.WithParallelism(p))
	require.NoError(t, err)
	return env
}

func TestEnvironment_Options(t *testing.T) {
	_, err := dataflow.NewEnvironment(dataflow.WithParallelism(0))
	require.True(t, errors.Is(err, dataflow.ErrOptionViolation))

	env, err := dataflow.NewEnvironment()
	require.NoError(t, err)
	require.GreaterOrEqual(t, env.Parallelism(), 1)
	require.NotNil(t, env.Context())
}

func TestFromSlice_PartitionsAndCollect(t *testing.T) {
	env := newEnv(t, 3)
	ds := dataflow.FromSlice(env, []int{1, 2, 3, 4, 5, 6, 7})
	require.Equal(t, 3, ds.Partitions())
	require.Equal(t, 7, ds.Count())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ds.Collect())

	empty := dataflow.FromSlice(env, []int(nil))
	require.Equal(t, 3, empty.Partitions())
	require.Empty(t, empty.Collect())
}

func TestMapFilterFlatMap(t *testing.T) {
	env := newEnv(t, 2)
	ds := dataflow.FromSlice(env, []int{1, 2, 3, 4})

	sq, err := dataflow.Map("square", ds, func(i int) (int, error) { return i * i, nil })
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 9, 16}, sq.Collect())

	even, err := dataflow.Filter("even", sq, func(i int) bool { return i%2 == 0 })
	require.NoError(t, err)
	require.Equal(t, []int{4, 16}, even.Collect())

	dup, err := dataflow.FlatMap("dup", even, func(i int, emit func(int)) error {
		emit(i)
		emit(i)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{4, 4, 16, 16}, dup.Collect())
}

func TestMap_ErrorCarriesOperatorName(t *testing.T) {
	env := newEnv(t, 4)
	boom := errors.New("boom")
	ds := dataflow.FromSlice(env, []int{1, 2, 3, 4, 5})
	_, err := dataflow.Map("explode", ds, func(i int) (int, error) {
		if i == 3 {
			return 0, boom
		}
		return i, nil
	})
	require.True(t, errors.Is(err, boom))
	require.Contains(t, err.Error(), "explode")

	_, err = dataflow.Map[int, int]("nil", ds, nil)
	require.True(t, errors.Is(err, dataflow.ErrNilFunction))
}

func TestGroupReduce_SortsWithinGroups(t *testing.T) {
	env := newEnv(t, 3)
	in := dataflow.FromSlice(env, []string{"b3", "a2", "b1", "a9", "c5", "a1", "b2"})

	grouped, err := dataflow.GroupReduce("concat", in,
		func(s string) word { return word(s[:1]) },
		func(a, b string) int { return cmp.Compare(a, b) },
		func(k word, items []string, emit func(string)) error {
			emit(string(k) + ":" + strings.Join(items, ","))
			return nil
		})
	require.NoError(t, err)

	got := grouped.Collect()
	sort.Strings(got)
	require.Equal(t, []string{"a:a1,a2,a9", "b:b1,b2,b3", "c:c5"}, got)
}

func TestGroupReduce_IndependentOfParallelism(t *testing.T) {
	var input []string
	for i := 0; i < 500; i++ {
		input = append(input, fmt.Sprintf("k%02d", i%37))
	}
	run := func(p int) []string {
		counts, err := dataflow.CountBy("count", dataflow.FromSlice(newEnv(t, p), input),
			func(s string) word { return word(s) })
		require.NoError(t, err)
		var out []string
		for _, c := range counts.Collect() {
			out = append(out, fmt.Sprintf("%s=%d", c.Key, c.Count))
		}
		sort.Strings(out)
		return out
	}
	want := run(1)
	require.Len(t, want, 37)
	for _, p := range []int{2, 5, 16} {
		require.Equal(t, want, run(p), "parallelism %d", p)
	}
}

func TestDistinct_KeepsFirstArrival(t *testing.T) {
	env := newEnv(t, 1)
	in := dataflow.FromSlice(env, []string{"a1", "b1", "a2"})
	d, err := dataflow.Distinct("distinct", in, func(s string) word { return word(s[:1]) })
	require.NoError(t, err)
	require.Equal(t, []string{"a1", "b1"}, d.Collect())
}

func TestJoin(t *testing.T) {
	env := newEnv(t, 2)
	left := dataflow.FromSlice(env, []string{"x", "y", "z"})
	right := dataflow.FromSlice(env, []dataflow.Counted[word]{{Key: "x", Count: 1}, {Key: "y", Count: 2}, {Key: "y", Count: 3}})

	joined, err := dataflow.Join("join", left, right,
		func(s string) word { return word(s) },
		func(c dataflow.Counted[word]) word { return c.Key },
		func(s string, c dataflow.Counted[word]) (string, error) { return fmt.Sprintf("%s%d", s, c.Count), nil })
	require.NoError(t, err)
	require.Equal(t, []string{"x1", "y2", "y3"}, joined.Collect())
}

func TestUnionAndRebalance(t *testing.T) {
	env := newEnv(t, 2)
	a := dataflow.FromSlice(env, []int{1, 2, 3})
	b := dataflow.FromSlice(env, []int{4})
	u := dataflow.Union(a, b)
	require.Equal(t, 4, u.Partitions())
	require.Equal(t, []int{1, 2, 3, 4}, u.Collect())

	r := dataflow.Rebalance(u)
	require.Equal(t, 2, r.Partitions())
	got := r.Collect()
	sort.Ints(got)
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env, err := dataflow.NewEnvironment(dataflow.WithContext(ctx), dataflow.WithParallelism(2))
	require.NoError(t, err)

	_, err = dataflow.Map("cancelled", dataflow.FromSlice(env, []int{1, 2}), func(i int) (int, error) { return i, nil })
	require.True(t, errors.Is(err, context.Canceled))
}
