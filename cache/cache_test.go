package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chksum/go-chksum/testing/helpers"
)

func TestDigestCache(t *testing.T) {
	c := helpers.Must(NewDigestCache(2))

	d1 := helpers.RandomBytes(20)
	d2 := helpers.RandomBytes(32)
	c.Put("a", d1)
	c.Put("b", d2)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, d1, got)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestDigestCacheEviction(t *testing.T) {
	c := helpers.Must(NewDigestCache(2))

	c.Put("a", helpers.RandomBytes(20))
	c.Put("b", helpers.RandomBytes(20))
	c.Put("c", helpers.RandomBytes(20))

	require.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok, "least recently used entry should be evicted")
}

func TestDefaultSize(t *testing.T) {
	c := helpers.Must(NewDigestCache(0))
	for i := 0; i < DigestCacheSize; i++ {
		c.Put(fmt.Sprintf("key-%d", i), nil)
	}
	require.Equal(t, DigestCacheSize, c.Len())
}
