package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionParityFitsNibble(t *testing.T) {
	x := []Elem{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	y := []Elem{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

	h, err := positionParity(x, y)
	require.NoError(t, err)
	assert.LessOrEqual(t, h, Elem(15))
}

func TestCRC16CCITTKnownVector(t *testing.T) {
	// "123456789" is the canonical CRC-16/CCITT-FALSE test vector.
	got := crc16CCITT([]byte("123456789"))
	assert.Equal(t, uint16(0x29B1), got)
}

func TestTagByteFlipDetection(t *testing.T) {
	x := []Elem{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	y := []Elem{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130}

	tag, err := tagByte(x, y)
	require.NoError(t, err)

	y[0] = 200
	flipped, err := tagByte(x, y)
	require.NoError(t, err)

	assert.NotEqual(t, tag, flipped)
}
