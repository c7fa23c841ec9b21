package sha1

import (
	"math/bits"

	"github.com/chksum/go-chksum/core/md"
)

// Initialization constants from RFC 3174 section 6.1.
const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Round constants, one per 20-round quartile.
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

const rounds = 80

// State is the running SHA-1 hash: five 32-bit working variables updated
// once per block. It is a plain value; Compress returns the successor
// state without touching the receiver.
type State struct {
	a, b, c, d, e uint32
}

// NewState returns the initial SHA-1 state.
func NewState() State {
	return State{init0, init1, init2, init3, init4}
}

// Words returns the state's five words in register order.
func (s State) Words() [5]uint32 {
	return [5]uint32{s.a, s.b, s.c, s.d, s.e}
}

// Reset returns the initial state, discarding all processed history.
func (s State) Reset() State {
	return NewState()
}

// Compress folds one 64-byte block into the state per RFC 3174 section 6.1:
// message schedule expansion to 80 words, the 80-round loop with the
// quartile-selected boolean function, and the final feed-forward addition.
// All arithmetic is modular 32-bit.
func (s State) Compress(block md.Block) State {
	var w [rounds]uint32
	bw := block.Words()
	copy(w[:md.WordsPerBlock], bw[:])
	for t := md.WordsPerBlock; t < rounds; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := s.a, s.b, s.c, s.d, s.e
	for t := 0; t < rounds; t++ {
		var f, k uint32
		switch {
		case t < 20:
			f = (b & c) | (^b & d)
			k = k0
		case t < 40:
			f = b ^ c ^ d
			k = k1
		case t < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}
		temp := bits.RotateLeft32(a, 5) + f + e + k + w[t]
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = temp
	}

	return State{s.a + a, s.b + b, s.c + c, s.d + d, s.e + e}
}
