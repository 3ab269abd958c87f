package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInterpolateReproducesInputs(t *testing.T) {
	f := newField(257)

	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 10).Draw(t, "k")
		x := make([]Elem, k)
		y := make([]Elem, k)
		for i := 0; i < k; i++ {
			x[i] = Elem(i)
			y[i] = Elem(rapid.Uint32Range(0, 256).Draw(t, "y"))
		}

		p, err := f.interpolate(x, y, k+3)
		require.NoError(t, err)
		assert.Less(t, p.degree, k)

		for i := 0; i < k; i++ {
			assert.Equal(t, y[i], f.evaluate(p, x[i]))
		}
	})
}

func TestInterpolateZeroOrdinateNoUnderflow(t *testing.T) {
	f := newField(257)

	x := []Elem{0, 1, 2, 3}
	y := []Elem{0, 0, 0, 0}

	p, err := f.interpolate(x, y, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, p.degree)
	for i := range x {
		assert.Equal(t, Elem(0), f.evaluate(p, x[i]))
	}
}
