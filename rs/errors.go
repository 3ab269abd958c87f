package rs

// SPDX-FileCopyrightText: The rscodec Authors

import "fmt"

// errInverseUndefined is the field's only failure mode (spec §4.1): a
// division by the zero sentinel. Distinct abscissae in a legally-sized
// subset never repeat, so the interpolator should never actually surface
// this, but the codec treats it as a recoverable "reject this subset"
// signal rather than a fatal error (spec §7 propagation policy).
var errInverseUndefined error = &ProgrammerError{Op: "div", Msg: "inverse of zero is undefined"}

// ProgrammerError marks a violation of a build-time invariant: a
// misparameterised Params, a degree overflow that legal inputs can never
// reach, or a request to invert the field's zero sentinel. These indicate
// a bug in the caller or in this package, not a bad input block — the
// core never calls exit() or panic() for these (spec §9); it hands the
// decision back to the caller.
type ProgrammerError struct {
	Op  string
	Msg string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("rs: %s: %s", e.Op, e.Msg)
}

func programmerError(op, format string, args ...any) *ProgrammerError {
	return &ProgrammerError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
