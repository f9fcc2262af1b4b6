package seq

import "fmt"

// ValueError reports invalid input or an operation that does not apply to
// its receiver: alphabet violations, search patterns longer than the
// searchable sequence, re-linearizing linear DNA, circularizing DNA with
// disconnected termini, concatenations that would create a discontinuity,
// incompatible reaction ends, or an unattainable oligo count.
type ValueError string

func (e ValueError) Error() string { return string(e) }

func valueErrorf(format string, args ...interface{}) ValueError {
	return ValueError(fmt.Sprintf(format, args...))
}

// PrimerLengthError is returned when a primer is shorter than the minimum
// binding length for an annealing search.
type PrimerLengthError string

func (e PrimerLengthError) Error() string { return string(e) }

// PrimerBindError is returned when a primer has no binding site on the
// template.
type PrimerBindError string

func (e PrimerBindError) Error() string { return string(e) }

// PrimingError is returned when both primers bind but their geometry can't
// produce an amplicon: both on the same strand, pointing away from one
// another on a linear template, or overlapping with no implemented
// resolution.
type PrimingError string

func (e PrimingError) Error() string { return string(e) }

// AmbiguousPrimingError is returned when a primer binds the template more
// than once.
type AmbiguousPrimingError string

func (e AmbiguousPrimingError) Error() string { return string(e) }

// AmbiguousGibsonError is returned when fragment termini can fuse in more
// than one way, or when a lone fragment binds itself on the same strand
// during circularization.
type AmbiguousGibsonError string

func (e AmbiguousGibsonError) Error() string { return string(e) }
