// Package md implements the streaming side of the Merkle–Damgård
// construction shared by the SHA-1 and SHA-2 family: fixed-size input
// blocks, a buffering accumulator that accepts arbitrarily chunked input,
// and length padding ahead of the final compression calls.
//
// The compression transform itself is algorithm specific and supplied via
// the State type parameter. The accumulator guarantees the same digest
// regardless of how callers split their input across Update calls.
package md

import "fmt"

const (
	// BlockSize is the compression input size in bytes, common to SHA-1
	// and SHA-256.
	BlockSize = 64
	// WordsPerBlock is the number of 32-bit big-endian words in a block.
	WordsPerBlock = BlockSize / 4

	// lengthSize is the size of the trailing bit-length field written by
	// the padding rule.
	lengthSize = 8
)

// State is the running compression state of a Merkle–Damgård hash.
// Implementations are value types: Compress folds one block into the state
// and returns the successor state, Reset returns the algorithm's fixed
// initialization constants.
type State[S any] interface {
	Compress(block Block) S
	Reset() S
}

// Block is exactly one compression input. It is only ever built from
// exactly BlockSize bytes.
type Block [BlockSize]byte

// NewBlock copies b into a Block. The accumulator only ever produces
// exactly-sized slices, so any other length is an implementation bug and
// panics rather than returning an error.
func NewBlock(b []byte) Block {
	if len(b) != BlockSize {
		panic(fmt.Sprintf("md: block must be exactly %d bytes, got %d", BlockSize, len(b)))
	}
	var blk Block
	copy(blk[:], b)
	return blk
}

// Words returns the block reinterpreted as big-endian 32-bit words in
// original byte order.
func (b Block) Words() [WordsPerBlock]uint32 {
	var w [WordsPerBlock]uint32
	for i := range w {
		j := i * 4
		w[i] = uint32(b[j])<<24 | uint32(b[j+1])<<16 | uint32(b[j+2])<<8 | uint32(b[j+3])
	}
	return w
}

// Update accumulates input for an in-progress hash computation. It owns the
// running state, a buffer of not-yet-compressed bytes (always shorter than
// one block between calls) and a count of bytes already folded into the
// state. Methods are value-returning so computations can be chained; give
// each logical computation its own value and no locking is needed.
type Update[S State[S]] struct {
	state       S
	unprocessed []byte
	processed   uint64
}

// NewUpdate returns an empty accumulator starting from the given initial
// state.
func NewUpdate[S State[S]](initial S) Update[S] {
	return Update[S]{
		state:       initial,
		unprocessed: make([]byte, 0, BlockSize),
	}
}

// Update absorbs data, compressing every complete block and buffering the
// remainder. The returned value supersedes the receiver; the buffered tail
// is always strictly shorter than one block.
func (u Update[S]) Update(data []byte) Update[S] {
	state, unprocessed, processed := u.state, u.unprocessed, u.processed

	if len(unprocessed) > 0 {
		if len(unprocessed)+len(data) < BlockSize {
			// Not enough for a single block yet.
			unprocessed = append(unprocessed, data...)
			return Update[S]{state, unprocessed, processed}
		}
		// Complete the buffered block from the head of data, then fall
		// through to whole-block processing of the rest.
		missing := BlockSize - len(unprocessed)
		unprocessed = append(unprocessed, data[:missing]...)
		state = state.Compress(NewBlock(unprocessed))
		processed += BlockSize
		unprocessed = unprocessed[:0]
		data = data[missing:]
	}

	for len(data) >= BlockSize {
		state = state.Compress(NewBlock(data[:BlockSize]))
		processed += BlockSize
		data = data[BlockSize:]
	}
	if len(data) > 0 {
		unprocessed = append(unprocessed, data...)
	}
	return Update[S]{state, unprocessed, processed}
}

// Finalize applies the padding rule to the buffered remainder and returns
// the terminal state. The receiver is not mutated, so Finalize can be
// called repeatedly and interleaved with further Update calls on the same
// value, always with identical results.
//
// The trailing length field holds the total number of bits processed. The
// byte counter wraps modulo 2^64; inputs long enough to wrap it silently
// produce the digest of the wrapped length, a known limit of the 64-bit
// length field rather than a defect.
func (u Update[S]) Finalize() Finalize[S] {
	state := u.state
	bits := (u.processed + uint64(len(u.unprocessed))) * 8

	var padding [2 * BlockSize]byte
	n := copy(padding[:], u.unprocessed)
	padding[n] = 0x80

	// One block when the 0x80 marker leaves room for the length field,
	// two when the padding spills over.
	size := BlockSize
	if n+1+lengthSize > BlockSize {
		size = 2 * BlockSize
	}
	for i := 0; i < lengthSize; i++ {
		padding[size-1-i] = byte(bits >> (8 * i))
	}

	for off := 0; off < size; off += BlockSize {
		state = state.Compress(NewBlock(padding[off : off+BlockSize]))
	}
	return Finalize[S]{state}
}

// Reset clears the buffer and counter and restores the initial state,
// keeping the buffer's capacity.
func (u Update[S]) Reset() Update[S] {
	return Update[S]{
		state:       u.state.Reset(),
		unprocessed: u.unprocessed[:0],
	}
}

// Len reports the total number of bytes absorbed so far, buffered tail
// included. It wraps with the processed counter.
func (u Update[S]) Len() uint64 {
	return u.processed + uint64(len(u.unprocessed))
}

// Finalize is the terminal, post-padding state of a computation. Digests
// are derived from it repeatedly without recomputation.
type Finalize[S State[S]] struct {
	state S
}

// State returns the post-padding compression state the digest is
// serialized from.
func (f Finalize[S]) State() S {
	return f.state
}

// Reset discards the finalized state and returns a fresh accumulator, so a
// finished hash handle can start a brand-new streaming session.
func (f Finalize[S]) Reset() Update[S] {
	return NewUpdate(f.state.Reset())
}
