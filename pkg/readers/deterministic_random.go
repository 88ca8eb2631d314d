// Package readers provides seeded, reproducible sources of bytes and choices
// for driving list workloads.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/deque/pkg"
	"hop.computer/deque/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
var mask = [aes.BlockSize]byte{0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. It will return a deterministic byte sequence based
// on the seed and the total number of bytes read. The number of calls does not
// matter. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	for i := 0; i < len(p); i += len(mask) {
		chunk := p[i:]
		c.stream.XORKeyStream(chunk, mask[0:min(len(chunk), len(mask))])
	}
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// DeterministicRandomReader returns a "random" reader based on the seed
// provided, using AES in CTR mode. The key is based on the seed. The IV is
// static.
func DeterministicRandomReader(seed uint64) io.Reader {
	return newCTRReader(seed)
}

func newCTRReader(seed uint64) *ctrReader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// DeterministicPicker makes reproducible choices among a fixed number of
// options. Two pickers built from the same seed and choice count produce the
// same sequence.
type DeterministicPicker struct {
	r       *ctrReader
	choices int
}

// NewDeterministicPicker returns a picker over [0, choices). It panics if
// choices is not positive.
func NewDeterministicPicker(seed uint64, choices int) *DeterministicPicker {
	if choices <= 0 {
		pkg.Panicf("choices must be positive, got %d", choices)
	}
	return &DeterministicPicker{
		r:       newCTRReader(seed),
		choices: choices,
	}
}

// Pick returns the next choice.
func (p *DeterministicPicker) Pick() int {
	var buf [4]byte
	_ = must.Do(p.r.Read(buf[:]))
	return int(binary.LittleEndian.Uint32(buf[:]) % uint32(p.choices))
}

// Choices returns the number of options the picker chooses among.
func (p *DeterministicPicker) Choices() int {
	return p.choices
}
