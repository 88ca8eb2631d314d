// Package pkg contains standalone helpers shared by the list, workload and
// command packages. It depends on nothing except the standard library.
package pkg

import (
	"fmt"
)

// Panicf functions like printf, but for constructing a string sent to panic.
// Use it for programmer errors only, never for conditions a caller can hit
// through normal use of a container.
func Panicf(msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	panic(s)
}
