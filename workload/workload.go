// Package workload generates reproducible push/pop sequences and runs them
// against a list.List, optionally checking every step against a slice model.
package workload

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"hop.computer/deque/pkg/list"
	"hop.computer/deque/pkg/readers"
)

// ErrMismatch is returned when a list disagrees with its reference model.
var ErrMismatch = errors.New("list does not match model")

// Op is a single list operation.
type Op int

// Op constants
const (
	OpPushBack Op = iota
	OpPushFront
	OpPopBack
	OpPopFront
)

func (o Op) String() string {
	switch o {
	case OpPushBack:
		return "PushBack"
	case OpPushFront:
		return "PushFront"
	case OpPopBack:
		return "PopBack"
	case OpPopFront:
		return "PopFront"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Pushes are twice as likely as pops so generated lists tend to grow.
var opTable = [...]Op{
	OpPushBack,
	OpPushFront,
	OpPopBack,
	OpPopFront,
	OpPushBack,
	OpPushFront,
}

// Generate returns n operations derived from seed. The same seed and n always
// produce the same sequence.
func Generate(seed uint64, n int) []Op {
	p := readers.NewDeterministicPicker(seed, len(opTable))
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = opTable[p.Pick()]
	}
	return ops
}

// Stats counts what Apply did.
type Stats struct {
	Pushes    int
	Pops      int
	EmptyPops int
}

// Apply runs ops against l. Operation i pushes the value i. If model is not
// nil it is updated alongside l, and every pop, every length, and the final
// contents are compared against it.
func Apply(l *list.List[int], ops []Op, model *[]int) (Stats, error) {
	var s Stats
	for i, op := range ops {
		var h list.Handle[int]
		var ok bool
		switch op {
		case OpPushBack:
			l.PushBack(i)
			s.Pushes++
			if model != nil {
				*model = append(*model, i)
			}
			continue
		case OpPushFront:
			l.PushFront(i)
			s.Pushes++
			if model != nil {
				*model = slices.Insert(*model, 0, i)
			}
			continue
		case OpPopBack:
			h, ok = l.PopBack()
		case OpPopFront:
			h, ok = l.PopFront()
		default:
			return s, errors.Errorf("op %d: unknown operation %s", i, op)
		}

		if !ok {
			s.EmptyPops++
		} else {
			s.Pops++
		}
		if model == nil {
			continue
		}
		if err := checkPop(*model, op, h, ok); err != nil {
			return s, errors.Wrapf(err, "op %d (%s)", i, op)
		}
		if ok {
			if op == OpPopBack {
				*model = (*model)[:len(*model)-1]
			} else {
				*model = slices.Delete(*model, 0, 1)
			}
		}
		if l.Len() != len(*model) {
			return s, errors.Wrapf(ErrMismatch, "op %d (%s): length %d, expected %d", i, op, l.Len(), len(*model))
		}
	}
	if model != nil {
		got := Values(l)
		if !slices.Equal(got, *model) {
			return s, errors.Wrapf(ErrMismatch, "final contents %v, expected %v", got, *model)
		}
	}
	return s, nil
}

func checkPop(model []int, op Op, h list.Handle[int], ok bool) error {
	if len(model) == 0 {
		if ok {
			return errors.Wrapf(ErrMismatch, "popped %d from an empty list", h.Value())
		}
		return nil
	}
	if !ok {
		return errors.Wrapf(ErrMismatch, "pop failed with %d items expected", len(model))
	}
	want := model[0]
	if op == OpPopBack {
		want = model[len(model)-1]
	}
	if h.Value() != want {
		return errors.Wrapf(ErrMismatch, "popped %d, expected %d", h.Value(), want)
	}
	return nil
}

// Values copies the contents of l into a slice, front to back.
func Values[T any](l *list.List[T]) []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Fill pushes 0 through n-1 onto l, at the back or at the front.
func Fill(l *list.List[int], n int, front bool) {
	for i := 0; i < n; i++ {
		if front {
			l.PushFront(i)
		} else {
			l.PushBack(i)
		}
	}
}

// CheckFill verifies that l holds exactly what Fill(l, n, front) produces on
// an empty list: 0 through n-1 in push order, or reversed for front pushes.
func CheckFill(l *list.List[int], n int, front bool) error {
	if l.Len() != n {
		return errors.Wrapf(ErrMismatch, "length %d, expected %d", l.Len(), n)
	}
	i := 0
	for v := range l.All() {
		want := i
		if front {
			want = n - 1 - i
		}
		if v != want {
			return errors.Wrapf(ErrMismatch, "position %d holds %d, expected %d", i, v, want)
		}
		i++
	}
	if i != n {
		return errors.Wrapf(ErrMismatch, "iterated %d items, expected %d", i, n)
	}
	return nil
}
