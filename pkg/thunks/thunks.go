// Package thunks contains pointers to functions that might be replaced in
// tests.
package thunks

import (
	"time"
)

// TimeNow is an alias for time.Now
var TimeNow func() time.Time = time.Now

// TestTick is how far the clock installed by SetUpTest moves on each call.
const TestTick = time.Millisecond

// SetUpTest replaces thunks with stable test versions. TimeNow starts at a
// fixed date and advances by TestTick every time it is called. The returned
// function restores the real implementations.
func SetUpTest() (restore func()) {
	now := time.Date(1992, 12, 31, 1, 2, 3, 4, time.UTC)
	TimeNow = func() time.Time {
		t := now
		now = now.Add(TestTick)
		return t
	}
	return func() {
		TimeNow = time.Now
	}
}
