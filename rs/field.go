package rs

// SPDX-FileCopyrightText: The rscodec Authors

// Field arithmetic modulo the prime P. Addition and multiplication widen
// to uint32 before reducing so (P-1)^2 never overflows; see
// Params.validate for the bound this relies on.

// Elem is a field element in [0, P).
type Elem uint32

// field holds P and its precomputed multiplicative-inverse table. inv[0]
// is the sentinel described by spec §4.1: it is never dereferenced by
// div, only guarded against.
type field struct {
	prime uint32
	inv   []Elem
}

// inverseTable257 is the multiplicative inverse of every nonzero element
// of GF(257), inv[b]*b == 1 (mod 257). Lifted verbatim from the reference
// implementation's MOD_USE_ARRAY table (computed once, offline, the same
// way the reference comment suggests: "you can use Wolfram Mathematica to
// get the values"). inv[0] is the unused sentinel.
var inverseTable257 = [257]Elem{
	0, 1, 129, 86, 193, 103, 43, 147,
	225, 200, 180, 187, 150, 178, 202, 120,
	241, 121, 100, 230, 90, 49, 222, 190,
	75, 72, 89, 238, 101, 195, 60, 199,
	249, 148, 189, 235, 50, 132, 115, 145,
	45, 163, 153, 6, 111, 40, 95, 175,
	166, 21, 36, 126, 173, 97, 119, 243,
	179, 248, 226, 61, 30, 59, 228, 102,
	253, 87, 74, 234, 223, 149, 246, 181,
	25, 169, 66, 24, 186, 247, 201, 244,
	151, 165, 210, 96, 205, 127, 3, 65,
	184, 26, 20, 209, 176, 152, 216, 46,
	83, 53, 139, 135, 18, 28, 63, 5,
	215, 164, 177, 245, 188, 224, 250, 44,
	218, 116, 124, 38, 113, 134, 159, 54,
	15, 17, 158, 140, 114, 220, 51, 85,
	255, 2, 172, 206, 37, 143, 117, 99,
	240, 242, 203, 98, 123, 144, 219, 133,
	141, 39, 213, 7, 33, 69, 12, 80,
	93, 42, 252, 194, 229, 239, 122, 118,
	204, 174, 211, 41, 105, 81, 48, 237,
	231, 73, 192, 254, 130, 52, 161, 47,
	92, 106, 13, 56, 10, 71, 233, 191,
	88, 232, 76, 11, 108, 34, 23, 183,
	170, 4, 155, 29, 198, 227, 196, 31,
	9, 78, 14, 138, 160, 84, 131, 221,
	236, 91, 82, 162, 217, 146, 251, 104,
	94, 212, 112, 142, 125, 207, 22, 68,
	109, 8, 58, 197, 62, 156, 19, 168,
	185, 182, 67, 35, 208, 167, 27, 157,
	136, 16, 137, 55, 79, 107, 70, 77,
	57, 32, 110, 214, 154, 64, 171, 128,
	256,
}

// newField builds the field for prime. For the default modulus it reuses
// the precomputed literal table; for any other prime it falls back to an
// extended-Euclid computation performed once, here, rather than on every
// div call (the literal holds inverses mod 257 only, so it cannot serve
// any other P).
func newField(prime uint32) *field {
	if prime == 257 {
		return &field{prime: prime, inv: inverseTable257[:]}
	}

	inv := make([]Elem, prime)
	for b := uint32(1); b < prime; b++ {
		inv[b] = Elem(extendedEuclidInverse(b, prime))
	}
	return &field{prime: prime, inv: inv}
}

// extendedEuclidInverse computes b^-1 mod m via the extended Euclidean
// algorithm, the alternate strategy named in spec §9 (kept as the generic
// fallback instead of behind a build tag, since unlike the default-P fast
// path it is load-bearing whenever Prime != 257). See field_alt.go for
// the naive search, kept only for benchmarking.
func extendedEuclidInverse(b, m uint32) uint32 {
	var a, mm = int64(b), int64(m)
	var y, x int64 = 0, 1

	for a > 1 {
		q := a / mm
		a, mm = mm, a%mm
		x, y = y, x-q*y
	}
	if x < 0 {
		x += int64(m)
	}
	return uint32(x)
}

// add returns (a + b) mod P.
func (f *field) add(a, b Elem) Elem {
	return Elem((uint32(a) + uint32(b)) % f.prime)
}

// mul returns (a * b) mod P.
func (f *field) mul(a, b Elem) Elem {
	return Elem((uint32(a) * uint32(b)) % f.prime)
}

// div returns a * inv(b) mod P. It fails with InverseUndefined only when
// b is the zero sentinel; P prime guarantees every other b has an
// inverse.
func (f *field) div(a, b Elem) (Elem, error) {
	if b == 0 {
		return 0, errInverseUndefined
	}
	return f.mul(a, f.inv[b]), nil
}
