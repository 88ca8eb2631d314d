// Package must contains helpers that panic on error instead of returning the
// error.
package must

import (
	"crypto/rand"
	"encoding/binary"

	"hop.computer/deque/pkg"
)

// Seed returns a fresh non-zero workload seed read from crypto/rand. It panics
// if the system random source is unavailable.
func Seed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		pkg.Panicf("unable to read from random: %s", err.Error())
	}
	s := binary.LittleEndian.Uint64(b[:])
	if s == 0 {
		s = 1
	}
	return s
}

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping another function call that returns two values, to get a single
// statement that only returns one value.
//
// Example:
//
//	n := must.Do(r.Read(buf))
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}
