package sha256

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chksum/go-chksum/core/md"
)

// Compressing a manually padded single block must reproduce the published
// digest, exercising the transform without the streaming layer.
func TestCompressPaddedBlock(t *testing.T) {
	var block [md.BlockSize]byte
	copy(block[:], "abc")
	block[3] = 0x80
	block[63] = 24 // bit length of "abc"

	s := NewState().Compress(md.NewBlock(block[:]))
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		NewDigest(s).ToHexLowercase())
}

// The all-padding block of the empty message.
func TestCompressEmptyMessageBlock(t *testing.T) {
	var block [md.BlockSize]byte
	block[0] = 0x80

	s := NewState().Compress(md.NewBlock(block[:]))
	require.Equal(t, [8]uint32{
		0xE3B0C442, 0x98FC1C14, 0x9AFBF4C8, 0x996FB924,
		0x27AE41E4, 0x649B934C, 0xA495991B, 0x7852B855,
	}, s.Words())
}

func TestCompressIsPure(t *testing.T) {
	s := NewState()
	block := md.NewBlock(make([]byte, md.BlockSize))

	first := s.Compress(block)
	second := s.Compress(block)
	require.Equal(t, first, second)
	require.Equal(t, NewState(), s)
}

func TestStateReset(t *testing.T) {
	s := NewState().Compress(md.NewBlock(make([]byte, md.BlockSize)))
	require.NotEqual(t, NewState(), s)
	require.Equal(t, NewState(), s.Reset())
}

func TestInitialWords(t *testing.T) {
	w := NewState().Words()
	require.Equal(t, uint32(0x6A09E667), w[0])
	require.Equal(t, uint32(0x5BE0CD19), w[7])
}
