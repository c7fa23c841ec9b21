package link

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	chksum "github.com/chksum/go-chksum"
	"github.com/chksum/go-chksum/sha256"
	"github.com/chksum/go-chksum/testing/helpers"
)

func TestToMultihash(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		digest := sha256.Hash([]byte("abc"))
		mh := helpers.Must(ToMultihash(chksum.SHA256, digest.Bytes()))

		decoded := helpers.Must(multihash.Decode(mh))
		require.Equal(t, uint64(multicodec.Sha2_256), decoded.Code)
		require.Equal(t, digest.Bytes(), decoded.Digest)

		algo, raw, err := DigestOf(mh)
		require.NoError(t, err)
		require.Equal(t, chksum.SHA256, algo)
		require.Equal(t, digest.Bytes(), raw)
	})

	t.Run("wrong digest size", func(t *testing.T) {
		_, err := ToMultihash(chksum.SHA1, helpers.RandomBytes(32))
		require.Error(t, err)
	})
}

func TestDigestOfUnsupportedCode(t *testing.T) {
	mh := helpers.Must(multihash.Encode(helpers.RandomBytes(32), multihash.SHA3_256))
	_, _, err := DigestOf(multihash.Multihash(mh))
	require.Error(t, err)
}

func TestToLink(t *testing.T) {
	digest := sha256.Hash([]byte("some data"))
	c := helpers.Must(ToLink(chksum.SHA256, digest.Bytes()))

	require.Equal(t, uint64(1), c.Prefix().Version)
	require.Equal(t, uint64(multicodec.Raw), c.Prefix().Codec)

	decoded := helpers.Must(multihash.Decode(c.Hash()))
	require.Equal(t, digest.Bytes(), decoded.Digest)
}

func TestFormat(t *testing.T) {
	digest := sha256.Hash([]byte("some data"))
	c := helpers.Must(ToLink(chksum.SHA256, digest.Bytes()))

	for _, enc := range []multibase.Encoding{multibase.Base32, multibase.Base58BTC, multibase.Base16} {
		s := helpers.Must(Format(c, enc))
		parsed := helpers.Must(cid.Decode(s))
		require.True(t, c.Equals(parsed), "encoding %d", enc)
	}
}
