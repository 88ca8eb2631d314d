package thunks

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestSetUpTest(t *testing.T) {
	restore := SetUpTest()
	a := TimeNow()
	b := TimeNow()
	assert.Equal(t, time.Date(1992, 12, 31, 1, 2, 3, 4, time.UTC), a)
	assert.Equal(t, TestTick, b.Sub(a))

	restore()
	assert.Assert(t, TimeNow().Year() > 1992)
}
