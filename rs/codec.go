package rs

// SPDX-FileCopyrightText: The rscodec Authors

import "sort"

// Codec is the build-time-parameterised encoder/decoder pair: a field
// and the K/E/N sizes derived from Params. Safe for concurrent use by
// multiple goroutines once constructed — every method call is
// self-contained and the only shared state, the inverse table, is
// read-only.
type Codec struct {
	params Params
	f      *field
}

// NewCodec validates p and builds the field's inverse table once. This
// is the Go rendering of the source's build-time parameterisation
// (spec §3): construct one Codec per process and reuse it.
func NewCodec(p Params) (*Codec, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Codec{params: p, f: newField(p.Prime)}, nil
}

// Params returns the codec's configuration.
func (c *Codec) Params() Params {
	return c.params
}

// EncodeBlock implements spec §4.5's encode pass: interpolate a
// polynomial through the K data bytes, evaluate it at the E parity
// abscissae, and compute the integrity tag over the full N-point block.
func (c *Codec) EncodeBlock(data []byte) (parity []byte, tag byte, err error) {
	const op = "EncodeBlock"

	k, e, n := c.params.K, c.params.E, c.params.N()
	if len(data) != k {
		return nil, 0, programmerError(op, "data length %d != K=%d", len(data), k)
	}

	x := make([]Elem, k)
	y := make([]Elem, k)
	for i := 0; i < k; i++ {
		x[i] = Elem(i)
		y[i] = Elem(data[i])
	}

	poly, err := c.f.interpolate(x, y, n)
	if err != nil {
		return nil, 0, err
	}

	allX := make([]Elem, n)
	allY := make([]Elem, n)
	for i := 0; i < n; i++ {
		allX[i] = Elem(i)
		allY[i] = c.f.evaluate(poly, Elem(i))
	}

	t, err := tagByte(allX, allY)
	if err != nil {
		return nil, 0, err
	}

	parity = make([]byte, e)
	for i := 0; i < e; i++ {
		parity[i] = byte(uint32(allY[k+i]) % 256)
	}

	return parity, t, nil
}

// DecodeBlock implements spec §4.5's decode pass: the tag-guided
// single-error attempt, the full combinatorial search, and — when P >
// 256 — the byte-truncation recovery branch. parityTrusted is the
// per-call rendering of the source's PARITY_TRUSTED build flag (spec
// §9): when true, the search is constrained to subsets that keep the
// whole parity side, and the tag-guided fast path is enabled.
func (c *Codec) DecodeBlock(data, parity []byte, tag byte, parityTrusted bool) ([]byte, Status, error) {
	const op = "DecodeBlock"

	k, e, n := c.params.K, c.params.E, c.params.N()
	if len(data) != k {
		return nil, Uncorrectable, programmerError(op, "data length %d != K=%d", len(data), k)
	}
	if len(parity) != e {
		return nil, Uncorrectable, programmerError(op, "parity length %d != E=%d", len(parity), e)
	}

	x := make([]Elem, n)
	y := make([]Elem, n)
	for i := 0; i < k; i++ {
		x[i] = Elem(i)
		y[i] = Elem(data[i])
	}
	for i := 0; i < e; i++ {
		x[k+i] = Elem(k + i)
		y[k+i] = Elem(parity[i])
	}

	corrected, status, err := c.decode(x, y, tag, parityTrusted)
	if err != nil {
		return nil, Uncorrectable, err
	}
	if status != Uncorrectable {
		return corrected, status, nil
	}

	if c.params.Prime > 256 {
		if rec, rstatus, ok := c.recoverTruncation(x, y, tag, parityTrusted); ok {
			return rec, rstatus, nil
		}
	}

	return append([]byte(nil), data...), Uncorrectable, nil
}

// decode runs the tag-guided attempt (spec §4.5 step 1) followed, if
// necessary, by the full combinatorial search (step 2). It never
// mutates the caller's data/parity bytes; x and y are the block's own
// working copy built by DecodeBlock.
func (c *Codec) decode(x, y []Elem, tag byte, parityTrusted bool) ([]byte, Status, error) {
	k, e, n := c.params.K, c.params.E, c.params.N()

	if parityTrusted {
		h, err := positionParity(x, y)
		if err != nil {
			return nil, Uncorrectable, err
		}
		h ^= Elem(tag & 0x0F)

		if int(h) < k {
			corrected, status, err := c.search(x, y, parityTrusted, k, e, n, excludeFilter(int(h)), tag)
			if err != nil {
				return nil, Uncorrectable, err
			}
			if status != Uncorrectable {
				return corrected, status, nil
			}

			// The exclude-h and include-h searches together already
			// partition the entire PARITY_TRUSTED-restricted search
			// space (pool=[0,k), fixed=parity indices): one forces h
			// out of every candidate subset, the other forces it into
			// every candidate subset. A further unrestricted pass here
			// would just repeat that same space a third time.
			return c.search(x, y, parityTrusted, k, e, n, includeFilter(int(h)), tag)
		}
	}

	return c.search(x, y, parityTrusted, k, e, n, noFilter(), tag)
}

// recoverTruncation implements spec §4.5 step 5: when P > 256, a parity
// byte of 0 may be a truncated 256. It tries every non-empty combination
// of parity-side positions bumped by 256 (bounded to 2^E attempts at the
// default parameters) and backtracks on failure.
func (c *Codec) recoverTruncation(x, y []Elem, tag byte, parityTrusted bool) ([]byte, Status, bool) {
	k, e := c.params.K, c.params.E
	prime := Elem(c.params.Prime)

	for mask := 1; mask < (1 << uint(e)); mask++ {
		bumped := make([]int, 0, e)
		feasible := true
		for i := 0; i < e; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			pos := k + i
			if y[pos]+256 >= prime {
				feasible = false
				break
			}
			y[pos] += 256
			bumped = append(bumped, pos)
		}

		if feasible {
			corrected, status, err := c.decode(x, y, tag, parityTrusted)
			if err == nil && status != Uncorrectable {
				return corrected, status, true
			}
		}

		for _, pos := range bumped {
			y[pos] -= 256
		}
	}

	return nil, Uncorrectable, false
}

// subsetFilter narrows the combinatorial search to the tag-guided
// single-error attempts of spec §4.5 step 1: exclude a candidate
// position entirely, or force every subset to include it.
type subsetFilter struct {
	kind int // 0 none, 1 exclude, 2 include-only
	h    int
}

func noFilter() subsetFilter           { return subsetFilter{kind: 0} }
func excludeFilter(h int) subsetFilter { return subsetFilter{kind: 1, h: h} }
func includeFilter(h int) subsetFilter { return subsetFilter{kind: 2, h: h} }

// search enumerates candidate K-element index subsets of [0, N) in
// lexicographic order (spec §4.5 step 3) and evaluates each against
// steps 2a-2d. Under parityTrusted the enumeration is restricted to
// subsets that keep all E parity indices, reducing the search from
// C(N,K) to C(K,K-E) as described in step 1.
func (c *Codec) search(x, y []Elem, parityTrusted bool, k, e, n int, filt subsetFilter, tag byte) ([]byte, Status, error) {
	var fixed, pool []int
	if parityTrusted {
		fixed = rangeIndices(k, n)
		pool = rangeIndices(0, k)
	} else {
		pool = rangeIndices(0, n)
	}

	switch filt.kind {
	case 1:
		pool = withoutIndex(pool, filt.h)
	case 2:
		pool = withoutIndex(pool, filt.h)
		fixed = append(append([]int{}, fixed...), filt.h)
	}

	r := k - len(fixed)
	it := newComboIter(pool, r)

	evalY := make([]Elem, n)
	savedY := make([]Elem, n)
	sx := make([]Elem, k)
	sy := make([]Elem, k)
	inSubset := make([]bool, n)

	for it.next() {
		subset := mergeSorted(fixed, it.values())
		if len(subset) != k {
			continue
		}

		for i := range inSubset {
			inSubset[i] = false
		}
		for i, idx := range subset {
			sx[i] = x[idx]
			sy[i] = y[idx]
			inSubset[idx] = true
		}

		poly, err := c.f.interpolate(sx, sy, n)
		if err != nil {
			continue
		}

		for i := 0; i < n; i++ {
			evalY[i] = c.f.evaluate(poly, x[i])
		}

		reject := false
		dataDisagree := 0
		for i := 0; i < n; i++ {
			if inSubset[i] || evalY[i] == y[i] {
				continue
			}
			if i >= k {
				if parityTrusted {
					reject = true
					break
				}
				continue
			}
			dataDisagree++
		}
		if reject {
			continue
		}

		if dataDisagree == 0 {
			return byteSlice(y[:k]), WithoutErrors, nil
		}
		if dataDisagree >= e {
			continue
		}

		copy(savedY, y)
		copy(y, evalY)

		newTag, terr := tagByte(x, y)
		if terr != nil || newTag != tag {
			copy(y, savedY)
			continue
		}

		return byteSlice(y[:k]), Fixed, nil
	}

	return nil, Uncorrectable, nil
}

// byteSlice truncates field elements to bytes. Only ever called on
// data-side ordinates, which are always in [0, 256) by construction.
func byteSlice(elems []Elem) []byte {
	out := make([]byte, len(elems))
	for i, v := range elems {
		out[i] = byte(v)
	}
	return out
}

// rangeIndices returns [a, b) as a slice.
func rangeIndices(a, b int) []int {
	out := make([]int, 0, b-a)
	for i := a; i < b; i++ {
		out = append(out, i)
	}
	return out
}

// withoutIndex returns pool with x removed, preserving order.
func withoutIndex(pool []int, x int) []int {
	out := make([]int, 0, len(pool))
	for _, v := range pool {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

// mergeSorted combines two disjoint index slices (in any order) into one
// ascending, deduplicated-by-construction index set.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Ints(out)
	return out
}

// comboIter is an iterative (non-recursive) lexicographic enumerator of
// r-element subsets of pool, re-architected per spec §9's redesign flag
// against the source's recursive doCombinations. Call next() before
// every values().
type comboIter struct {
	pool    []int
	r       int
	idx     []int
	started bool
	done    bool
}

func newComboIter(pool []int, r int) *comboIter {
	if r < 0 || r > len(pool) {
		return &comboIter{done: true}
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	return &comboIter{pool: pool, r: r, idx: idx}
}

func (c *comboIter) next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}

	n := len(c.pool)
	i := c.r - 1
	for i >= 0 && c.idx[i] == n-c.r+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.idx[i]++
	for j := i + 1; j < c.r; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return true
}

func (c *comboIter) values() []int {
	out := make([]int, c.r)
	for i, p := range c.idx {
		out[i] = c.pool[p]
	}
	return out
}
