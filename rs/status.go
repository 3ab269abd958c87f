package rs

// SPDX-FileCopyrightText: The rscodec Authors

// Status is the decoder's three-way outcome (spec layer 2, never an
// exception-like fault). Encoding never produces one of these; it either
// succeeds or returns a ProgrammerError.
type Status int

const (
	// WithoutErrors means the received block matched the re-interpolated
	// polynomial everywhere; y was left untouched.
	WithoutErrors Status = iota
	// Fixed means disagreements were found, corrected, and the integrity
	// tag verified the correction before it was committed.
	Fixed
	// Uncorrectable means no candidate subset produced a tag-verified
	// reconstruction.
	Uncorrectable
)

func (s Status) String() string {
	switch s {
	case WithoutErrors:
		return "WithoutErrors"
	case Fixed:
		return "Fixed"
	case Uncorrectable:
		return "Uncorrectable"
	default:
		return "Status(?)"
	}
}
