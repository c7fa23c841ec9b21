package sha1

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Size is the SHA-1 digest length in bytes.
const Size = 20

// Digest is a finished SHA-1 hash value: the big-endian serialization of
// the final state. It is a plain array, so digests copy and compare
// freely, and d[:] is valid input to a further hash computation.
type Digest [Size]byte

// NewDigest serializes a state into a digest.
func NewDigest(s State) Digest {
	var d Digest
	w := s.Words()
	for i, word := range w {
		binary.BigEndian.PutUint32(d[i*4:], word)
	}
	return d
}

// Bytes returns the digest as a slice.
func (d Digest) Bytes() []byte {
	return d[:]
}

// ToHexLowercase renders the digest as lowercase hex.
func (d Digest) ToHexLowercase() string {
	return hex.EncodeToString(d[:])
}

// ToHexUppercase renders the digest as uppercase hex.
func (d Digest) ToHexUppercase() string {
	return strings.ToUpper(hex.EncodeToString(d[:]))
}

func (d Digest) String() string {
	return d.ToHexLowercase()
}
