package rs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBatchRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	rng := rand.New(rand.NewSource(3))

	const numBlocks = 64
	blocks := make([][]byte, numBlocks)
	for i := range blocks {
		blocks[i] = make([]byte, c.Params().K)
		rng.Read(blocks[i])
	}

	encoded := c.EncodeBatch(blocks, 8)
	require.Len(t, encoded, numBlocks)

	parity := make([][]byte, numBlocks)
	tags := make([]byte, numBlocks)
	for i, r := range encoded {
		require.NoError(t, r.Err)
		parity[i] = r.Parity
		tags[i] = r.Tag
	}

	decoded := c.DecodeBatch(blocks, parity, tags, true, 8)
	require.Len(t, decoded, numBlocks)
	for i, r := range decoded {
		require.NoError(t, r.Err)
		assert.Equal(t, WithoutErrors, r.Status)
		assert.Equal(t, blocks[i], r.Data)
	}
}
