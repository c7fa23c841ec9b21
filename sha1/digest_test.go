package sha1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestRendering(t *testing.T) {
	d := Hash([]byte("Hello World"))

	require.Equal(t, "0a4d55a8d778e5022fab701977c5d840bbc486d0", d.ToHexLowercase())
	require.Equal(t, "0A4D55A8D778E5022FAB701977C5D840BBC486D0", d.ToHexUppercase())
	require.Equal(t, d.ToHexLowercase(), d.String())
	require.Len(t, d.Bytes(), Size)
}

func TestNewDigestSerialization(t *testing.T) {
	// Initial state words serialized big-endian.
	d := NewDigest(NewState())
	require.Equal(t, []byte{0x67, 0x45, 0x23, 0x01}, d.Bytes()[:4])
	require.Equal(t, []byte{0xC3, 0xD2, 0xE1, 0xF0}, d.Bytes()[16:])
}
