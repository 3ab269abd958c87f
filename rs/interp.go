package rs

// SPDX-FileCopyrightText: The rscodec Authors

// interpolate builds the unique polynomial L of degree < len(x) with
// L(x[i]) == y[i] for every i, by classical Lagrange interpolation: for
// each i, the basis numerator Π_{j!=i} (t - x[j]) is built as a product
// of monic linears (t + (P - x[j])), which keeps every coefficient in
// [0, P) without signed arithmetic, scaled by y[i] / basis(x[i]).
//
// maxDegree bounds the working polynomials' capacity (spec's N, the
// total evaluation points per block); mulPoly's degree-overflow check
// runs against that capacity and can only fail here when len(x)-1
// exceeds maxDegree.
func (f *field) interpolate(x, y []Elem, maxDegree int) (polynomial, error) {
	result := zeroPoly(maxDegree)
	linear := zeroPoly(maxDegree)
	basis := zeroPoly(maxDegree)
	term := zeroPoly(maxDegree)

	for i := range x {
		basis = onePoly(maxDegree)

		for j := range x {
			if i == j {
				continue
			}
			linear.degree = 1
			for k := range linear.coeffs {
				linear.coeffs[k] = 0
			}
			linear.coeffs[0] = Elem((f.prime - uint32(x[j])) % f.prime)
			linear.coeffs[1] = 1

			if err := f.mulPoly(basis, linear, &term); err != nil {
				return polynomial{}, err
			}
			basis, term = term, basis
		}

		denom := f.evaluate(basis, x[i])
		factor, err := f.div(y[i], denom)
		if err != nil {
			return polynomial{}, err
		}

		f.scalePoly(basis, factor, &term)
		f.addPoly(result, term, &result)
	}

	return result, nil
}
