package rs

// SPDX-FileCopyrightText: The rscodec Authors

// polynomial is a fixed-capacity dense polynomial over the field:
// degree d and coefficients coeffs[0..d] in ascending order, coeffs[0]
// the constant term. Reduced after every operation that returns one:
// d == 0 || coeffs[d] != 0.
type polynomial struct {
	degree int
	coeffs []Elem
}

// zeroPoly returns the additive identity, sized for a block of up to
// maxDegree.
func zeroPoly(maxDegree int) polynomial {
	return polynomial{degree: 0, coeffs: make([]Elem, maxDegree+1)}
}

// onePoly returns the multiplicative identity.
func onePoly(maxDegree int) polynomial {
	p := zeroPoly(maxDegree)
	p.coeffs[0] = 1
	return p
}

// reduce drops leading zero coefficients until the degree invariant
// holds.
func (p *polynomial) reduce() {
	for p.degree > 0 && p.coeffs[p.degree] == 0 {
		p.degree--
	}
}

// clone makes an independent copy, used to protect against aliasing when
// a caller passes the same polynomial as both operand and destination.
func (p polynomial) clone() polynomial {
	c := polynomial{degree: p.degree, coeffs: make([]Elem, len(p.coeffs))}
	copy(c.coeffs, p.coeffs)
	return c
}

// addPoly computes r = p + q, coefficient-wise field addition followed by
// reduction. Safe when r aliases p or q: the aliased operand is copied
// first.
func (f *field) addPoly(p, q polynomial, r *polynomial) {
	if sameBacking(r, &p) {
		cp := p.clone()
		p = cp
	}
	if sameBacking(r, &q) {
		cq := q.clone()
		q = cq
	}

	r.degree = max(p.degree, q.degree)
	for i := range r.coeffs {
		r.coeffs[i] = 0
	}
	for i := 0; i <= p.degree; i++ {
		r.coeffs[i] = f.add(r.coeffs[i], p.coeffs[i])
	}
	for i := 0; i <= q.degree; i++ {
		r.coeffs[i] = f.add(r.coeffs[i], q.coeffs[i])
	}
	r.reduce()
}

// mulPoly computes r = p * q by schoolbook multiplication, degree(r) =
// degree(p) + degree(q). Fails with a ProgrammerError when the result
// would exceed the capacity of r.coeffs — legal decoder inputs never
// drive this path (spec §4.2). Safe when r aliases p or q.
func (f *field) mulPoly(p, q polynomial, r *polynomial) error {
	const op = "mulPoly"

	if sameBacking(r, &p) {
		cp := p.clone()
		p = cp
	}
	if sameBacking(r, &q) {
		cq := q.clone()
		q = cq
	}

	degree := p.degree + q.degree
	if degree >= len(r.coeffs) {
		return programmerError(op, "degree overflow: %d+%d exceeds capacity %d", p.degree, q.degree, len(r.coeffs)-1)
	}

	r.degree = degree
	for i := range r.coeffs {
		r.coeffs[i] = 0
	}
	for i := 0; i <= p.degree; i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		for j := 0; j <= q.degree; j++ {
			r.coeffs[i+j] = f.add(r.coeffs[i+j], f.mul(p.coeffs[i], q.coeffs[j]))
		}
	}
	r.reduce()
	return nil
}

// scalePoly computes r = a*p, multiplying every coefficient by the field
// element a, then reduces.
func (f *field) scalePoly(p polynomial, a Elem, r *polynomial) {
	if sameBacking(r, &p) {
		cp := p.clone()
		p = cp
	}
	r.degree = p.degree
	for i := range r.coeffs {
		r.coeffs[i] = 0
	}
	for i := 0; i <= p.degree; i++ {
		r.coeffs[i] = f.mul(p.coeffs[i], a)
	}
	r.reduce()
}

// evaluate computes p(x) by Horner's method, single pass from the top
// degree downward.
func (f *field) evaluate(p polynomial, x Elem) Elem {
	px := p.coeffs[p.degree]
	for i := p.degree - 1; i >= 0; i-- {
		px = f.add(p.coeffs[i], f.mul(px, x))
	}
	return px
}

func sameBacking(r *polynomial, p *polynomial) bool {
	return len(r.coeffs) > 0 && len(p.coeffs) > 0 && &r.coeffs[0] == &p.coeffs[0]
}
