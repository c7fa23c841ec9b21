// Package sha1 implements the SHA-1 hash function from RFC 3174 as a pair
// of value types: Update accumulates arbitrarily chunked input, Finalize is
// the padded terminal state digests are derived from.
//
//	digest := sha1.New().Update([]byte("Hello")).Update([]byte(" World")).Digest()
//
// The digest is identical no matter how the input is split across Update
// calls. A Digest's bytes satisfy the same input contract as any other
// data, so hash-of-hash chaining is just another Update.
//
// SHA-1 is retained for interoperability with formats that require it; see
// RFC 6194 before using it anywhere collision resistance matters.
package sha1

import "github.com/chksum/go-chksum/core/md"

// BlockSize is the SHA-1 compression input size in bytes.
const BlockSize = md.BlockSize

// Update is an in-progress SHA-1 computation. The zero value is not
// meaningful; start from New.
type Update struct {
	u md.Update[State]
}

// New returns an empty SHA-1 computation.
func New() Update {
	return Update{md.NewUpdate(NewState())}
}

// Hash computes the SHA-1 digest of data in one shot.
func Hash(data []byte) Digest {
	return New().Update(data).Digest()
}

// Update absorbs data and returns the successor computation.
func (u Update) Update(data []byte) Update {
	return Update{u.u.Update(data)}
}

// Finalize applies padding and returns the terminal state. The receiver is
// unchanged; calling Finalize repeatedly yields identical results.
func (u Update) Finalize() Finalize {
	return Finalize{u.u.Finalize()}
}

// Digest is shorthand for Finalize().Digest().
func (u Update) Digest() Digest {
	return u.Finalize().Digest()
}

// Reset returns an empty computation, reusing the buffer.
func (u Update) Reset() Update {
	return Update{u.u.Reset()}
}

// Len reports the number of input bytes absorbed so far.
func (u Update) Len() uint64 {
	return u.u.Len()
}

// Finalize is a finished SHA-1 computation.
type Finalize struct {
	f md.Finalize[State]
}

// Digest serializes the final state. Repeated calls return identical
// digests without recomputation.
func (f Finalize) Digest() Digest {
	return NewDigest(f.f.State())
}

// Reset discards the finished state and returns a fresh computation.
func (f Finalize) Reset() Update {
	return Update{f.f.Reset()}
}
