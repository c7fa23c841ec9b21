// Package chksum ties the hash engines together behind the standard
// hash.Hash contract: an Algorithm enumeration, a Hasher adapter over the
// value-typed SHA-1 and SHA-256 computations, and one-shot helpers.
package chksum

import (
	"fmt"

	"github.com/multiformats/go-multicodec"

	"github.com/chksum/go-chksum/core/md"
	"github.com/chksum/go-chksum/sha1"
	"github.com/chksum/go-chksum/sha256"
)

// Algorithm identifies a supported hash function.
type Algorithm int

const (
	SHA1 Algorithm = iota + 1
	SHA256
)

// ParseAlgorithm maps a name like "sha1" or "sha256" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "sha1", "sha-1":
		return SHA1, nil
	case "sha256", "sha-256", "sha2-256":
		return SHA256, nil
	}
	return 0, fmt.Errorf("unknown hash algorithm: %q", name)
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	}
	return 0
}

// BlockSize returns the compression input size in bytes.
func (a Algorithm) BlockSize() int {
	return md.BlockSize
}

// MulticodecCode returns the multicodec table entry for the algorithm,
// usable as a multihash type code.
func (a Algorithm) MulticodecCode() multicodec.Code {
	switch a {
	case SHA1:
		return multicodec.Sha1
	case SHA256:
		return multicodec.Sha2_256
	}
	return 0
}
