package seq

import "fmt"

// GibsonOptions configures a Gibson assembly simulation.
type GibsonOptions struct {
	// Linear requests a linear product instead of a circular one
	Linear bool

	// MinHomology is the minimum bp of terminal homology for a fusion
	MinHomology int

	// MinTm is the minimum melting temperature of a homology region. A
	// match within 4 degrees C below it is accepted with a warning
	MinTm float64

	// Tm predicts melting temperatures; defaults to MeltingTemp
	Tm TmFunc
}

// DefaultGibsonOptions returns the standard assembly thresholds.
func DefaultGibsonOptions() GibsonOptions {
	return GibsonOptions{MinHomology: 10, MinTm: 63.0, Tm: MeltingTemp}
}

func (o GibsonOptions) withDefaults() GibsonOptions {
	def := DefaultGibsonOptions()
	if o.MinHomology == 0 {
		o.MinHomology = def.MinHomology
	}
	if o.MinTm == 0 {
		o.MinTm = def.MinTm
	}
	if o.Tm == nil {
		o.Tm = def.Tm
	}
	return o
}

// tmTolerance is how far below MinTm a homology's Tm may fall and still be
// accepted, with a warning, instead of rejected.
const tmTolerance = 4.0

// Gibson simulates a Gibson (homology-based) assembly of linear fragments,
// returning the product along with any non-fatal diagnostics (near-threshold
// melting temperatures). Duplicate fragments are collapsed before
// processing. Unless a linear product was requested, the lone remaining
// fragment is fused to itself and circularized.
func Gibson(fragments []*DNA, opts GibsonOptions) (*DNA, []string, error) {
	opts = opts.withDefaults()

	working := dedupeFragments(fragments)
	if len(working) == 0 {
		return nil, nil, ValueError("no fragments to assemble")
	}
	for _, f := range working {
		if f.IsCircular() {
			return nil, nil, ValueError("input fragments must be linear")
		}
	}

	var warnings []string
	for len(working) > 1 {
		fused, warns, err := fuseNext(working, opts)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, warns...)
		working = fused
	}

	if opts.Linear {
		return working[0], warnings, nil
	}
	product, warns, err := fuseSelf(working[0], opts)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, warns...)
	return product, warnings, nil
}

// dedupeFragments collapses fragments equal by sequence and strandedness,
// preserving first-seen order.
func dedupeFragments(fragments []*DNA) []*DNA {
	seen := make(map[string]bool, len(fragments))
	var unique []*DNA
	for _, f := range fragments {
		key := f.Top().String() + "\x00" + f.Bottom().String() + "\x00" + fmt.Sprint(f.IsDoubleStranded())
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, f)
	}
	return unique
}

// terminalMatch is a qualifying homology between the worklist pattern's
// terminus and a candidate fragment's terminus.
type terminalMatch struct {
	target int  // index into the candidate list
	length int  // homology length in bp
	crick1 bool // the pattern bound via its Crick terminus
	crick2 bool // orientation of the matched target
}

// fuseNext takes the first fragment in the worklist as the pattern, finds
// its unique fusion partner among the rest, and replaces both with the
// fused fragment.
func fuseNext(working []*DNA, opts GibsonOptions) ([]*DNA, []string, error) {
	pattern := working[0]
	targets := working[1:]

	var warnings []string
	scan := func(crick1, crick2 bool) []terminalMatch {
		var matches []terminalMatch
		for i, target := range targets {
			length, warns := homology(pattern, target, crick1, crick2, false, opts)
			if length > 0 {
				matches = append(matches, terminalMatch{target: i, length: length, crick1: crick1, crick2: crick2})
				warnings = append(warnings, warns...)
			}
		}
		return matches
	}

	// four strand-pair combinations, grouped by the pattern terminus used
	watson := append(scan(false, false), scan(false, true)...)
	crick := append(scan(true, false), scan(true, true)...)

	if len(watson) > 1 || len(crick) > 1 {
		return nil, nil, AmbiguousGibsonError("multiple compatible fragment ends")
	}
	if len(watson) == 0 && len(crick) == 0 {
		return nil, nil, ValueError("failed to find compatible Gibson ends")
	}
	match := watson
	if len(match) == 0 {
		match = crick
	}
	m := match[0]

	left := pattern
	if m.crick1 {
		left = pattern.ReverseComplement()
	}
	target := targets[m.target]
	right := target
	if !m.crick2 {
		right = target.ReverseComplement()
	}

	tail, err := right.Slice(m.length, right.Len())
	if err != nil {
		return nil, nil, err
	}
	fused, err := left.Add(tail)
	if err != nil {
		return nil, nil, err
	}

	next := []*DNA{fused}
	for i, t := range targets {
		if i != m.target {
			next = append(next, t)
		}
	}
	return next, warnings, nil
}

// fuseSelf fuses the final fragment to itself: its two termini must share
// a unique Watson-Crick homology, which is trimmed before circularizing.
// Same-strand (Watson-Watson or Crick-Crick) self-binding is ambiguous.
func fuseSelf(fragment *DNA, opts GibsonOptions) (*DNA, []string, error) {
	ww, _ := homology(fragment, fragment, false, false, true, opts)
	cc, _ := homology(fragment, fragment, true, true, true, opts)
	if ww > 0 || cc > 0 {
		return nil, nil, AmbiguousGibsonError("self-self binding during circularization")
	}

	wc, warnings := homology(fragment, fragment, false, true, true, opts)
	if wc == 0 {
		return nil, nil, ValueError("failed to find compatible ends for circularization")
	}

	trimmed, err := fragment.Slice(0, fragment.Len()-wc)
	if err != nil {
		return nil, nil, err
	}
	product, err := trimmed.Circularize()
	if err != nil {
		return nil, nil, err
	}
	return product, warnings, nil
}

// maxHomology caps the terminal region scanned for exact matches.
const maxHomology = 500

// homology reports the longest exact match between the 3' terminus of one
// strand of a and the terminus of one strand of b, subject to the minimum
// length and melting-temperature thresholds. crick1/crick2 select which
// strand of each fragment is tested. With self set, full-length matches
// are ignored (a fragment trivially matches itself end to end).
func homology(a, b *DNA, crick1, crick2, self bool, opts GibsonOptions) (int, []string) {
	if crick1 {
		a = a.ReverseComplement()
	}
	if !crick2 {
		b = b.ReverseComplement()
	}
	aStr := a.Top().String()
	bStr := b.Top().String()

	longest := min(min(len(aStr), len(bStr)), maxHomology)
	for length := longest; length >= opts.MinHomology && length > 0; length-- {
		if self && length == len(aStr) {
			continue
		}
		suffix := aStr[len(aStr)-length:]
		if suffix != bStr[:length] {
			continue
		}
		tm := opts.Tm(suffix)
		if tm >= opts.MinTm {
			return length, nil
		}
		if tm >= opts.MinTm-tmTolerance {
			warning := fmt.Sprintf("a %dbp overlap has a Tm of %.1f C, below the %.1f C threshold", length, tm, opts.MinTm)
			return length, []string{warning}
		}
	}
	return 0, nil
}
