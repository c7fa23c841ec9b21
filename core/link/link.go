// Package link bridges digests into the multiformats world: multihash
// wrapping, CID construction over raw content, and multibase rendering.
package link

import (
	"bytes"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"

	chksum "github.com/chksum/go-chksum"
)

// ToMultihash wraps a raw digest in a multihash carrying the algorithm's
// multicodec code.
func ToMultihash(a chksum.Algorithm, digest []byte) (multihash.Multihash, error) {
	if len(digest) != a.Size() {
		return nil, fmt.Errorf("expected %d byte %s digest, got %d bytes", a.Size(), a, len(digest))
	}
	encoded, err := multihash.Encode(digest, uint64(a.MulticodecCode()))
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}
	return multihash.Multihash(encoded), nil
}

// ToLink builds a CIDv1 over raw content bytes from a digest of those
// bytes.
func ToLink(a chksum.Algorithm, digest []byte) (cid.Cid, error) {
	mh, err := ToMultihash(a, digest)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(uint64(multicodec.Raw), mh), nil
}

// Format renders a link in the given multibase encoding.
func Format(c cid.Cid, enc multibase.Encoding) (string, error) {
	return c.StringOfBase(enc)
}

// DigestOf unwraps a multihash, returning the algorithm it was produced
// with and the raw digest. Multihashes carrying a code outside the
// supported algorithms are rejected.
func DigestOf(mh multihash.Multihash) (chksum.Algorithm, []byte, error) {
	r := bytes.NewReader(mh)
	code, err := varint.ReadUvarint(r)
	if err != nil {
		return 0, nil, fmt.Errorf("reading multihash code: %w", err)
	}

	var algo chksum.Algorithm
	switch multicodec.Code(code) {
	case multicodec.Sha1:
		algo = chksum.SHA1
	case multicodec.Sha2_256:
		algo = chksum.SHA256
	default:
		return 0, nil, fmt.Errorf("unsupported multihash code: 0x%x", code)
	}

	size, err := varint.ReadUvarint(r)
	if err != nil {
		return 0, nil, fmt.Errorf("reading multihash length: %w", err)
	}
	digest := mh[len(mh)-r.Len():]
	if uint64(len(digest)) != size || size != uint64(algo.Size()) {
		return 0, nil, fmt.Errorf("expected %d byte %s digest, got %d bytes", algo.Size(), algo, len(digest))
	}
	return algo, digest, nil
}
