package sha256

import (
	"math/bits"

	"github.com/chksum/go-chksum/core/md"
)

// Initialization constants from FIPS 180-4 section 5.3.3.
var initH = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// Round constants from FIPS 180-4 section 4.2.2.
var k = [64]uint32{
	0x428A2F98, 0x71374491, 0xB5C0FBCF, 0xE9B5DBA5,
	0x3956C25B, 0x59F111F1, 0x923F82A4, 0xAB1C5ED5,
	0xD807AA98, 0x12835B01, 0x243185BE, 0x550C7DC3,
	0x72BE5D74, 0x80DEB1FE, 0x9BDC06A7, 0xC19BF174,
	0xE49B69C1, 0xEFBE4786, 0x0FC19DC6, 0x240CA1CC,
	0x2DE92C6F, 0x4A7484AA, 0x5CB0A9DC, 0x76F988DA,
	0x983E5152, 0xA831C66D, 0xB00327C8, 0xBF597FC7,
	0xC6E00BF3, 0xD5A79147, 0x06CA6351, 0x14292967,
	0x27B70A85, 0x2E1B2138, 0x4D2C6DFC, 0x53380D13,
	0x650A7354, 0x766A0ABB, 0x81C2C92E, 0x92722C85,
	0xA2BFE8A1, 0xA81A664B, 0xC24B8B70, 0xC76C51A3,
	0xD192E819, 0xD6990624, 0xF40E3585, 0x106AA070,
	0x19A4C116, 0x1E376C08, 0x2748774C, 0x34B0BCB5,
	0x391C0CB3, 0x4ED8AA4A, 0x5B9CCA4F, 0x682E6FF3,
	0x748F82EE, 0x78A5636F, 0x84C87814, 0x8CC70208,
	0x90BEFFFA, 0xA4506CEB, 0xBEF9A3F7, 0xC67178F2,
}

const rounds = 64

// State is the running SHA-256 hash: eight 32-bit working variables
// updated once per block. It is a plain value; Compress returns the
// successor state without touching the receiver.
type State struct {
	a, b, c, d, e, f, g, h uint32
}

// NewState returns the initial SHA-256 state.
func NewState() State {
	return State{
		initH[0], initH[1], initH[2], initH[3],
		initH[4], initH[5], initH[6], initH[7],
	}
}

// Words returns the state's eight words in register order.
func (s State) Words() [8]uint32 {
	return [8]uint32{s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h}
}

// Reset returns the initial state, discarding all processed history.
func (s State) Reset() State {
	return NewState()
}

func smallSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

// Compress folds one 64-byte block into the state per FIPS 180-4 section
// 6.2.2: message schedule expansion to 64 words via the two small sigma
// functions, the 64-round loop with ch/maj and the per-round constant
// table, and the final feed-forward addition. All arithmetic is modular
// 32-bit.
func (s State) Compress(block md.Block) State {
	var w [rounds]uint32
	bw := block.Words()
	copy(w[:md.WordsPerBlock], bw[:])
	for t := md.WordsPerBlock; t < rounds; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h
	for t := 0; t < rounds; t++ {
		ch := (e & f) ^ (^e & g)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t1 := h + bigSigma1(e) + ch + k[t] + w[t]
		t2 := bigSigma0(a) + maj
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return State{
		s.a + a, s.b + b, s.c + c, s.d + d,
		s.e + e, s.f + f, s.g + g, s.h + h,
	}
}
