package list

import (
	"testing"

	"gotest.tools/assert"
)

func fillAndTearDown(t *testing.T, n int) {
	l := New[int]()
	for i := 0; i < n; i++ {
		l.PushBack(i)
	}
	assert.Equal(t, n, l.Len())

	count := 0
	for v := range l.All() {
		if v != count {
			t.Fatalf("expected %d at position %d, got %d", count, count, v)
		}
		count++
	}
	assert.Equal(t, n, count)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Assert(t, l.IsEmpty())
}

func TestLarge(t *testing.T) {
	fillAndTearDown(t, 100000)
}

func TestHuge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ten million element list in short mode")
	}
	fillAndTearDown(t, 10000000)
}

func TestHugeDrain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ten million element list in short mode")
	}
	const n = 10000000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.PushFront(i)
	}
	assert.Equal(t, n, l.Len())
	for i := 0; i < n; i++ {
		h, ok := l.PopBack()
		if !ok || h.Value() != i {
			t.Fatalf("pop %d: got %d, %v", i, h.Value(), ok)
		}
	}
	assert.Assert(t, l.IsEmpty())
}
