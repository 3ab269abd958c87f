//go:build rsbench

package rs

// SPDX-FileCopyrightText: The rscodec Authors

// NaiveInverse is the brute-force alternative named in spec §9 ("naive vs
// extended Euclid vs table lookup"): try every candidate until one
// satisfies b*n == 1 (mod m). Exported, and only built under the rsbench
// tag, so cmd/rsbench can time it; never used on the hot path. Mirrors ReedSolomon.c's MOD_USE_NAIVE
// branch.
func NaiveInverse(b, m uint32) (uint32, bool) {
	for n := uint32(1); n < m; n++ {
		if (b*n)%m == 1 {
			return n, true
		}
	}
	return 0, false
}
