package chksum

import (
	"fmt"
	"hash"

	"github.com/chksum/go-chksum/sha1"
	"github.com/chksum/go-chksum/sha256"
)

// Hasher is the standard-library view of a hash computation. Write absorbs
// chunks, Sum appends the digest of everything written so far without
// disturbing the running state, Reset recycles the hasher for new input.
// A Hasher is a single logical computation; it is not safe for concurrent
// use, but independent Hashers never contend.
type Hasher interface {
	hash.Hash
	Algorithm() Algorithm
}

// NewHasher returns a Hasher for the given algorithm.
func NewHasher(a Algorithm) (Hasher, error) {
	switch a {
	case SHA1:
		return &sha1Hasher{u: sha1.New()}, nil
	case SHA256:
		return &sha256Hasher{u: sha256.New()}, nil
	}
	return nil, fmt.Errorf("unknown hash algorithm: %v", a)
}

// Sum computes the digest of data in one shot.
func Sum(a Algorithm, data []byte) ([]byte, error) {
	switch a {
	case SHA1:
		d := sha1.Hash(data)
		return d.Bytes(), nil
	case SHA256:
		d := sha256.Hash(data)
		return d.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown hash algorithm: %v", a)
}

type sha1Hasher struct {
	u sha1.Update
}

func (h *sha1Hasher) Algorithm() Algorithm { return SHA1 }
func (h *sha1Hasher) Size() int            { return sha1.Size }
func (h *sha1Hasher) BlockSize() int       { return sha1.BlockSize }

func (h *sha1Hasher) Write(p []byte) (int, error) {
	h.u = h.u.Update(p)
	return len(p), nil
}

func (h *sha1Hasher) Sum(b []byte) []byte {
	d := h.u.Digest()
	return append(b, d[:]...)
}

func (h *sha1Hasher) Reset() {
	h.u = h.u.Reset()
}

type sha256Hasher struct {
	u sha256.Update
}

func (h *sha256Hasher) Algorithm() Algorithm { return SHA256 }
func (h *sha256Hasher) Size() int            { return sha256.Size }
func (h *sha256Hasher) BlockSize() int       { return sha256.BlockSize }

func (h *sha256Hasher) Write(p []byte) (int, error) {
	h.u = h.u.Update(p)
	return len(p), nil
}

func (h *sha256Hasher) Sum(b []byte) []byte {
	d := h.u.Digest()
	return append(b, d[:]...)
}

func (h *sha256Hasher) Reset() {
	h.u = h.u.Reset()
}
