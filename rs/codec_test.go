package rs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(DefaultParams)
	require.NoError(t, err)
	return c
}

// TestScenarioA is "clean round trip": untouched parity and tag decode
// the original data back with WithoutErrors.
func TestScenarioA(t *testing.T) {
	c := newTestCodec(t)
	data := []byte{0x9A, 0x48, 0x3E, 0x35, 0x27, 0xA8, 0x78, 0xE9, 0x64, 0x91}

	parity, tag, err := c.EncodeBlock(data)
	require.NoError(t, err)

	got, status, err := c.DecodeBlock(data, parity, tag, true)
	require.NoError(t, err)
	assert.Equal(t, WithoutErrors, status)
	assert.Equal(t, data, got)
}

// TestScenarioB is "two-error correction": two corrupted data bytes are
// restored bitwise to the original input.
func TestScenarioB(t *testing.T) {
	c := newTestCodec(t)
	original := []byte{0x9A, 0x48, 0x3E, 0x35, 0x27, 0xA8, 0x78, 0xE9, 0x64, 0x91}

	parity, tag, err := c.EncodeBlock(original)
	require.NoError(t, err)

	corrupted := append([]byte(nil), original...)
	corrupted[4] = 0xE9
	corrupted[8] = 0xF3

	got, status, err := c.DecodeBlock(corrupted, parity, tag, true)
	require.NoError(t, err)
	assert.Equal(t, Fixed, status)
	assert.Equal(t, original, got)
}

// TestScenarioC is "three-error uncorrectable": corrupting E=3 data
// positions must not silently produce wrong-but-tag-matching data.
func TestScenarioC(t *testing.T) {
	c := newTestCodec(t)
	original := []byte{0x9A, 0x48, 0x3E, 0x35, 0x27, 0xA8, 0x78, 0xE9, 0x64, 0x91}

	parity, tag, err := c.EncodeBlock(original)
	require.NoError(t, err)

	corrupted := append([]byte(nil), original...)
	corrupted[2] = 0x01
	corrupted[5] = 0x02
	corrupted[8] = 0x03

	got, status, err := c.DecodeBlock(corrupted, parity, tag, true)
	require.NoError(t, err)
	if status == Fixed {
		assert.Equal(t, original, got)
	} else {
		assert.Equal(t, Uncorrectable, status)
	}
}

// TestScenarioD is "zero-error large corpus": random inputs round trip
// cleanly every time.
func TestScenarioD(t *testing.T) {
	c := newTestCodec(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		data := make([]byte, c.Params().K)
		rng.Read(data)

		parity, tag, err := c.EncodeBlock(data)
		require.NoError(t, err)

		got, status, err := c.DecodeBlock(data, parity, tag, true)
		require.NoError(t, err)
		require.Equal(t, WithoutErrors, status)
		require.Equal(t, data, got)
	}
}

// TestScenarioE is the "single-error sweep": every data position,
// corrupted to every other byte value, must be correctable.
func TestScenarioE(t *testing.T) {
	c := newTestCodec(t)
	data := []byte{0x9A, 0x48, 0x3E, 0x35, 0x27, 0xA8, 0x78, 0xE9, 0x64, 0x91}

	parity, tag, err := c.EncodeBlock(data)
	require.NoError(t, err)

	for i := 0; i < c.Params().K; i++ {
		for v := 0; v < 256; v++ {
			if byte(v) == data[i] {
				continue
			}
			corrupted := append([]byte(nil), data...)
			corrupted[i] = byte(v)

			got, status, err := c.DecodeBlock(corrupted, parity, tag, true)
			require.NoError(t, err)
			require.Equalf(t, Fixed, status, "position %d value %#x", i, v)
			require.Equal(t, data, got)
		}
	}
}

// TestScenarioF is "byte-truncation recovery": search for a data block
// whose Lagrange polynomial evaluates to 256 at some parity abscissa
// (so the wire-truncated parity byte is 0), and confirm the decoder
// still recovers the original data.
func TestScenarioF(t *testing.T) {
	c := newTestCodec(t)
	rng := rand.New(rand.NewSource(2))

	for attempt := 0; attempt < 100000; attempt++ {
		data := make([]byte, c.Params().K)
		rng.Read(data)

		parity, tag, err := c.EncodeBlock(data)
		require.NoError(t, err)

		truncated := false
		for _, b := range parity {
			if b == 0 {
				truncated = true
			}
		}
		if !truncated {
			continue
		}

		got, status, err := c.DecodeBlock(data, parity, tag, true)
		require.NoError(t, err)
		require.Equal(t, WithoutErrors, status)
		require.Equal(t, data, got)
		return
	}

	t.Skip("no byte-truncation case found in the sampled corpus")
}

func TestEncodeBlockDeterministic(t *testing.T) {
	c := newTestCodec(t)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	p1, t1, err := c.EncodeBlock(data)
	require.NoError(t, err)
	p2, t2, err := c.EncodeBlock(data)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, t1, t2)
}

func TestRoundTripProperty(t *testing.T) {
	c := newTestCodec(t)

	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), c.Params().K, c.Params().K).Draw(t, "data")

		parity, tag, err := c.EncodeBlock(data)
		require.NoError(t, err)

		got, status, err := c.DecodeBlock(data, parity, tag, true)
		require.NoError(t, err)
		assert.Equal(t, WithoutErrors, status)
		assert.Equal(t, data, got)
	})
}

func TestCorrectionUpToEMinusOneProperty(t *testing.T) {
	c := newTestCodec(t)
	e := c.Params().E
	k := c.Params().K

	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), k, k).Draw(t, "data")
		numErrors := rapid.IntRange(0, e-1).Draw(t, "numErrors")

		parity, tag, err := c.EncodeBlock(data)
		require.NoError(t, err)

		corrupted := append([]byte(nil), data...)
		// Positions need not be distinct: duplicates only reduce the
		// actual number of corrupted bytes, which still satisfies "at
		// most E-1 positions".
		positions := rapid.SliceOfN(rapid.IntRange(0, k-1), numErrors, numErrors).Draw(t, "positions")
		for _, pos := range positions {
			v := rapid.Byte().Draw(t, "v")
			corrupted[pos] = v
		}

		got, status, err := c.DecodeBlock(corrupted, parity, tag, true)
		require.NoError(t, err)
		require.NotEqual(t, Uncorrectable, status)
		assert.Equal(t, data, got)
	})
}
