package chksum

import (
	"hash"
	"testing"

	"github.com/multiformats/go-multicodec"
	"github.com/stretchr/testify/require"

	"github.com/chksum/go-chksum/testing/helpers"
)

var _ hash.Hash = Hasher(nil)

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]Algorithm{
		"sha1":     SHA1,
		"sha-1":    SHA1,
		"sha256":   SHA256,
		"sha-256":  SHA256,
		"sha2-256": SHA256,
	} {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseAlgorithm("md5")
	require.Error(t, err)
}

func TestAlgorithmProperties(t *testing.T) {
	require.Equal(t, "sha1", SHA1.String())
	require.Equal(t, "sha256", SHA256.String())
	require.Equal(t, 20, SHA1.Size())
	require.Equal(t, 32, SHA256.Size())
	require.Equal(t, 64, SHA1.BlockSize())
	require.Equal(t, 64, SHA256.BlockSize())
	require.Equal(t, multicodec.Sha1, SHA1.MulticodecCode())
	require.Equal(t, multicodec.Sha2_256, SHA256.MulticodecCode())
}

func TestHasher(t *testing.T) {
	for _, algo := range []Algorithm{SHA1, SHA256} {
		t.Run(algo.String(), func(t *testing.T) {
			data := helpers.RandomBytes(150)
			want := helpers.Must(Sum(algo, data))

			h := helpers.Must(NewHasher(algo))
			require.Equal(t, algo, h.Algorithm())
			require.Equal(t, algo.Size(), h.Size())
			require.Equal(t, algo.BlockSize(), h.BlockSize())

			// Chunked writes equal one-shot.
			for _, chunk := range [][]byte{data[:1], data[1:64], data[64:]} {
				n, err := h.Write(chunk)
				require.NoError(t, err)
				require.Equal(t, len(chunk), n)
			}
			require.Equal(t, want, h.Sum(nil))

			// Sum does not disturb the running state.
			require.Equal(t, want, h.Sum(nil))

			// Sum appends.
			require.Equal(t, append([]byte("prefix"), want...), h.Sum([]byte("prefix")))

			// Reset recycles the hasher.
			h.Reset()
			fresh := helpers.Must(NewHasher(algo))
			require.Equal(t, fresh.Sum(nil), h.Sum(nil))
		})
	}
}

func TestSumUnknownAlgorithm(t *testing.T) {
	_, err := Sum(Algorithm(42), nil)
	require.Error(t, err)

	_, err = NewHasher(Algorithm(42))
	require.Error(t, err)
}
