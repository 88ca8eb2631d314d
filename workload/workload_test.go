package workload

import (
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/goleak"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/deque/pkg/list"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "PushBack", OpPushBack.String())
	assert.Equal(t, "PushFront", OpPushFront.String())
	assert.Equal(t, "PopBack", OpPopBack.String())
	assert.Equal(t, "PopFront", OpPopFront.String())
	assert.Equal(t, "Op(9)", Op(9).String())
}

func TestGenerate(t *testing.T) {
	a := Generate(42, 500)
	b := Generate(42, 500)
	c := Generate(43, 500)
	assert.Check(t, is.Len(a, 500))
	assert.DeepEqual(t, a, b)
	assert.Assert(t, !equalOps(a, c))

	seen := map[Op]int{}
	for _, op := range a {
		seen[op]++
	}
	assert.Equal(t, 4, len(seen))
	assert.Check(t, seen[OpPushBack]+seen[OpPushFront] > seen[OpPopBack]+seen[OpPopFront])

	assert.Check(t, is.Len(Generate(1, 0), 0))
}

func equalOps(a, b []Op) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFill(t *testing.T) {
	for _, front := range []bool{false, true} {
		l := list.New[int]()
		Fill(l, 10, front)
		assert.NilError(t, CheckFill(l, 10, front))

		want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		if front {
			want = []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
		}
		assert.DeepEqual(t, want, Values(l))
	}
}

func TestCheckFillMismatch(t *testing.T) {
	l := list.New[int]()
	Fill(l, 10, false)
	err := CheckFill(l, 10, true)
	assert.Assert(t, errors.Is(err, ErrMismatch))

	err = CheckFill(l, 11, false)
	assert.Assert(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "length 10, expected 11")
}

func TestApplyMixedScenario(t *testing.T) {
	// push 1,2; push_front 0; pop; pop_front
	ops := []Op{OpPushBack, OpPushBack, OpPushFront, OpPopBack, OpPopFront}
	l := list.New[int]()
	model := []int{}
	stats, err := Apply(l, ops, &model)
	assert.NilError(t, err)
	assert.Equal(t, Stats{Pushes: 3, Pops: 2}, stats)
	// Values are op indices, so the list is [2 0 1] before the pops.
	assert.DeepEqual(t, []int{0}, Values(l))
	assert.DeepEqual(t, []int{0}, model)
}

func TestApplyEmptyPops(t *testing.T) {
	l := list.New[int]()
	model := []int{}
	stats, err := Apply(l, []Op{OpPopBack, OpPopFront, OpPopBack}, &model)
	assert.NilError(t, err)
	assert.Equal(t, 3, stats.EmptyPops)
	assert.Equal(t, 0, stats.Pops)
	assert.Check(t, l.IsEmpty())
}

func TestApplyGenerated(t *testing.T) {
	for _, seed := range []uint64{1, 7, 99, 0xfeedface} {
		l := list.New[int]()
		model := []int{}
		ops := Generate(seed, 3000)
		stats, err := Apply(l, ops, &model)
		assert.NilError(t, err, "seed %d", seed)
		assert.Equal(t, len(ops), stats.Pushes+stats.Pops+stats.EmptyPops)
		assert.Equal(t, stats.Pushes-stats.Pops, l.Len())
	}
}

func TestApplyWithoutModel(t *testing.T) {
	l := list.New[int]()
	stats, err := Apply(l, Generate(5, 1000), nil)
	assert.NilError(t, err)
	assert.Equal(t, stats.Pushes-stats.Pops, l.Len())
}

func TestApplyDetectsDivergence(t *testing.T) {
	l := list.New[int]()
	l.PushBack(-1)
	model := []int{}
	_, err := Apply(l, []Op{OpPopBack}, &model)
	assert.Assert(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "op 0 (PopBack)")
}

func TestApplyUnknownOp(t *testing.T) {
	l := list.New[int]()
	_, err := Apply(l, []Op{Op(17)}, nil)
	assert.ErrorContains(t, err, "unknown operation Op(17)")
}
