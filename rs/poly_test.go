package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPolyEvaluateMatchesDirectSum(t *testing.T) {
	f := newField(257)

	rapid.Check(t, func(t *rapid.T) {
		degree := rapid.IntRange(0, 8).Draw(t, "degree")
		p := zeroPoly(8)
		p.degree = degree
		for i := 0; i <= degree; i++ {
			p.coeffs[i] = Elem(rapid.Uint32Range(0, 256).Draw(t, "c"))
		}
		p.reduce()

		x := Elem(rapid.Uint32Range(0, 256).Draw(t, "x"))

		var want Elem
		xi := Elem(1)
		for i := 0; i <= p.degree; i++ {
			want = f.add(want, f.mul(p.coeffs[i], xi))
			xi = f.mul(xi, x)
		}

		assert.Equal(t, want, f.evaluate(p, x))
	})
}

func TestPolyAddAliasingSafe(t *testing.T) {
	f := newField(257)

	p := zeroPoly(4)
	p.degree = 2
	p.coeffs[0], p.coeffs[1], p.coeffs[2] = 3, 5, 7

	q := zeroPoly(4)
	q.degree = 1
	q.coeffs[0], q.coeffs[1] = 1, 2

	f.addPoly(p, q, &p)

	assert.Equal(t, 2, p.degree)
	assert.Equal(t, []Elem{4, 7, 7, 0, 0}, p.coeffs)
}

func TestPolyMulDegreeOverflowIsProgrammerError(t *testing.T) {
	f := newField(257)

	p := zeroPoly(2)
	p.degree = 2
	p.coeffs[2] = 1

	q := zeroPoly(2)
	q.degree = 2
	q.coeffs[2] = 1

	r := zeroPoly(2)
	err := f.mulPoly(p, q, &r)

	require.Error(t, err)
	var progErr *ProgrammerError
	assert.ErrorAs(t, err, &progErr)
}

func TestPolyReduceDropsTrailingZeros(t *testing.T) {
	p := polynomial{degree: 3, coeffs: []Elem{1, 2, 0, 0}}
	p.reduce()
	assert.Equal(t, 1, p.degree)
}
