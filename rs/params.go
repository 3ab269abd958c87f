package rs

// SPDX-FileCopyrightText: The rscodec Authors

// Params bundles the build-time configuration of a codec instance: field
// modulus, data symbols per block, and parity symbols per block. A Params
// is validated once, at NewCodec time, and reused for the lifetime of the
// process — the Go rendering of "fixed before compilation" from a system
// that is otherwise configured per call (see SPEC_FULL.md §3).
type Params struct {
	// Prime is the field modulus P. Must be prime and > 255 so every
	// byte value fits unchanged as a field element.
	Prime uint32
	// K is the number of data symbols per block.
	K int
	// E is the number of parity symbols per block. The decoder detects
	// up to E errors and corrects up to E-1.
	E int
}

// DefaultParams mirrors the reference implementation's configuration:
// RS-style encoding over GF(257) with 10 data symbols and 3 parity
// symbols (NUM_FIXABLE_ERRORS=2, EXTRA_POINTS=3).
var DefaultParams = Params{Prime: 257, K: 10, E: 3}

// N is the total number of evaluation points per block, K+E.
func (p Params) N() int { return p.K + p.E }

// validate checks the structural constraints a Codec relies on. It does
// not verify that Prime is actually prime (that is the caller's
// responsibility to get right at configuration time, same as the
// original implementation's "has to be a PRIME!!!" comment) but it does
// check everything the core algorithms assume without re-checking.
func (p Params) validate() error {
	const op = "Params.validate"

	if p.K <= 0 {
		return programmerError(op, "K must be positive, got %d", p.K)
	}
	if p.E <= 0 {
		return programmerError(op, "E must be positive, got %d", p.E)
	}
	if p.Prime <= 255 {
		return programmerError(op, "prime %d must exceed 255 so byte values fit as field elements", p.Prime)
	}
	// (P-1)^2 must fit in the word used for intermediate products; Elem
	// arithmetic here widens to uint32, so this bounds Prime well above
	// anything a byte-oriented codec would plausibly use.
	if hi := uint64(p.Prime-1) * uint64(p.Prime-1); hi > 1<<32-1 {
		return programmerError(op, "prime %d is too large: (P-1)^2 overflows 32 bits", p.Prime)
	}
	if n := p.N(); n > 15 {
		return programmerError(op, "K+E = %d exceeds 15: position parity nibble cannot represent the index", n)
	}
	if uint32(p.N()) >= p.Prime {
		return programmerError(op, "K+E = %d must be less than prime %d: abscissae must be distinct field elements", p.N(), p.Prime)
	}
	return nil
}
