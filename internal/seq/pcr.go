package seq

import "fmt"

// DefaultMinPrimerLength is the minimum annealing length for a primer
// binding search.
const DefaultMinPrimerLength = 14

// primerSite is one primer's single binding site on the template.
type primerSite struct {
	primer *Primer
	index  int  // match index in the bound strand's own 5' to 3' frame
	onTop  bool // true if the anneal matched the top strand
}

// PCR simulates a polymerase chain reaction of two primers against a
// template, returning the amplicon.
//
// Each primer's anneal sequence must match the template exactly once in
// total across both strands. The primer matching the top strand is the
// forward primer and the one matching the bottom strand is the reverse
// primer; the amplicon spans from the forward primer's 5' start to the
// reverse primer's 5' start projected onto the top strand, with each
// primer's overhang appended as a double-stranded extension. On circular
// templates the primers always point toward one another around the circle,
// so amplicons spanning the origin are built by rotating the template to
// the forward primer's start.
func PCR(template *DNA, a, b *Primer, minLength int) (*DNA, error) {
	if minLength <= 0 {
		minLength = DefaultMinPrimerLength
	}

	siteA, err := bindOnce(template, a, "primer 1", minLength)
	if err != nil {
		return nil, err
	}
	siteB, err := bindOnce(template, b, "primer 2", minLength)
	if err != nil {
		return nil, err
	}

	if siteA.onTop == siteB.onTop {
		return nil, PrimingError("primers bind the same strand and point the same direction")
	}
	fwd, rev := siteA, siteB
	if !fwd.onTop {
		fwd, rev = rev, fwd
	}

	length := template.Len()
	fwdLoc := fwd.index               // 5' start of the forward anneal, top coordinates
	revLoc := length - rev.index      // 5' start of the reverse anneal, projected onto the top strand
	span := revLoc - fwdLoc           // amplicon length before any origin wrap
	longer := max(fwd.primer.Len(), rev.primer.Len())
	if span > 0 && span < longer {
		return nil, PrimingError("primers overlap one another, no resolution is implemented")
	}

	var amplicon *DNA
	switch {
	case !template.circular && span <= 0:
		return nil, PrimingError("primers point away from one another on a linear template")
	case !template.circular:
		if amplicon, err = template.Slice(fwdLoc, revLoc); err != nil {
			return nil, err
		}
	default:
		// rotating to the forward primer's start handles amplicons and
		// anneal regions that straddle the origin uniformly
		ampLen := mod(span, length)
		if ampLen == 0 {
			ampLen = length // primers back to back: the whole plasmid
		}
		rotated, rerr := template.RotateTo(fwdLoc)
		if rerr != nil {
			return nil, rerr
		}
		if amplicon, err = rotated.Slice(0, ampLen); err != nil {
			return nil, err
		}
	}

	if fwd.primer.Overhang().Len() > 0 {
		if amplicon, err = fwd.primer.Overhang().ToDS().Add(amplicon); err != nil {
			return nil, err
		}
	}
	if rev.primer.Overhang().Len() > 0 {
		if amplicon, err = amplicon.Add(rev.primer.Overhang().ToDS().ReverseComplement()); err != nil {
			return nil, err
		}
	}
	return amplicon, nil
}

// bindOnce locates a primer's single binding site on the template, raising
// the priming error taxonomy on zero or multiple matches.
func bindOnce(template *DNA, p *Primer, label string, minLength int) (primerSite, error) {
	if p.Anneal().Len() < minLength {
		return primerSite{}, PrimerLengthError(fmt.Sprintf(
			"%s anneal is %dbp, shorter than the minimum binding length %dbp",
			label, p.Anneal().Len(), minLength))
	}

	tops, bottoms, err := template.Locate(p.Anneal().String())
	if err != nil {
		return primerSite{}, err
	}
	switch total := len(tops) + len(bottoms); {
	case total == 0:
		return primerSite{}, PrimerBindError(fmt.Sprintf("%s does not bind the template", label))
	case total > 1:
		return primerSite{}, AmbiguousPrimingError(fmt.Sprintf(
			"%s binds more than once: top strand %v, bottom strand %v", label, tops, bottoms))
	}

	if len(tops) == 1 {
		return primerSite{primer: p, index: tops[0], onTop: true}, nil
	}
	return primerSite{primer: p, index: bottoms[0], onTop: false}, nil
}
