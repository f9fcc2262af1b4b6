package seq

import "strings"

// DNA is a double-stranded, topologically-aware DNA molecule. The top
// strand is stored 5' to 3'; the bottom strand is stored 5' to 3' in its
// own frame, so top[i] pairs with bottom[len-1-i]. At every position the
// paired bases are complementary unless one of them is a gap (a nick or
// overhang).
//
// DNA values are immutable by convention: every transform copies, mutates
// the copy, and returns it. Callers never observe mutation of an input.
type DNA struct {
	top      Strand
	bottom   Strand
	circular bool
	ds       bool
	features []Feature
	name     string
}

// NewDNA creates linear double-stranded DNA from a top-strand sequence; the
// bottom strand is derived by reverse complementation.
func NewDNA(top string) (*DNA, error) {
	t, err := NewStrand(top, DNAMaterial)
	if err != nil {
		return nil, err
	}
	b, err := t.ReverseComplement()
	if err != nil {
		return nil, err
	}
	return &DNA{top: t, bottom: b, ds: true}, nil
}

// NewSSDNA creates linear single-stranded DNA; the bottom strand is all
// gaps.
func NewSSDNA(top string) (*DNA, error) {
	t, err := NewStrand(top, DNAMaterial)
	if err != nil {
		return nil, err
	}
	return &DNA{
		top:    t,
		bottom: newStrand(strings.Repeat(string(Gap), t.Len()), DNAMaterial),
		ds:     false,
	}, nil
}

// NewDNAWithBottom creates linear double-stranded DNA with an explicit
// bottom strand, allowing gapped (overhanging or nicked) molecules. The
// strands must have equal length and be complementary at every position
// where neither is a gap.
func NewDNAWithBottom(top, bottom string) (*DNA, error) {
	t, err := NewStrand(top, DNAMaterial)
	if err != nil {
		return nil, err
	}
	b, err := NewStrand(bottom, DNAMaterial)
	if err != nil {
		return nil, err
	}
	if t.Len() != b.Len() {
		return nil, ValueError("top and bottom strands are different lengths")
	}
	code := complements[DNAMaterial]
	for i := 0; i < t.Len(); i++ {
		tc, bc := t.At(i), b.At(b.Len()-1-i)
		if tc == Gap || bc == Gap {
			continue
		}
		if code[tc] != bc {
			return nil, valueErrorf("top and bottom strands are not complementary at index %d", i)
		}
	}
	return &DNA{top: t, bottom: b, ds: true}, nil
}

// newDNA assembles a DNA value without re-validating. Internal transforms
// preserve the invariants so re-checking on every copy would only cost time.
func newDNA(top, bottom Strand, circular, ds bool, features []Feature, name string) *DNA {
	return &DNA{
		top:      top,
		bottom:   bottom,
		circular: circular,
		ds:       ds,
		features: features,
		name:     name,
	}
}

// Top returns the top (Watson) strand.
func (d *DNA) Top() Strand { return d.top }

// Bottom returns the bottom (Crick) strand in its own 5' to 3' frame.
func (d *DNA) Bottom() Strand { return d.bottom }

// Len returns the molecule's length in base pairs.
func (d *DNA) Len() int { return d.top.Len() }

// IsCircular reports the molecule's topology.
func (d *DNA) IsCircular() bool { return d.circular }

// IsDoubleStranded reports the molecule's strandedness.
func (d *DNA) IsDoubleStranded() bool { return d.ds }

// Name returns the molecule's optional name.
func (d *DNA) Name() string { return d.name }

// String returns the top-strand sequence.
func (d *DNA) String() string { return d.top.String() }

// Features returns a copy of the molecule's feature list.
func (d *DNA) Features() []Feature { return copyFeatures(d.features) }

// WithName returns a copy carrying the given name.
func (d *DNA) WithName(name string) *DNA {
	c := d.Copy()
	c.name = name
	return c
}

// WithFeatures returns a copy carrying the given features, validating each
// feature's type and coordinates.
func (d *DNA) WithFeatures(features []Feature) (*DNA, error) {
	for _, f := range features {
		if !featureTypes[f.Type] {
			return nil, valueErrorf("feature type %q must be one of %v", f.Type, FeatureTypes())
		}
		if f.Start < 0 || f.Stop > d.Len() {
			return nil, valueErrorf("feature %q [%d, %d) outside sequence of length %d",
				f.Name, f.Start, f.Stop, d.Len())
		}
	}
	c := d.Copy()
	c.features = copyFeatures(features)
	return c, nil
}

// Copy returns a safely-editable copy of the molecule.
func (d *DNA) Copy() *DNA {
	return newDNA(d.top, d.bottom, d.circular, d.ds, copyFeatures(d.features), d.name)
}

// Equal reports whether both strands and the strandedness match. Topology
// is deliberately excluded, matching sequence+strand equality.
func (d *DNA) Equal(other *DNA) bool {
	return d.top.String() == other.top.String() &&
		d.bottom.String() == other.bottom.String() &&
		d.ds == other.ds
}

// Circularize joins the molecule's ends. It fails if a terminus is
// disconnected: a position at either end where both strands are gapped.
func (d *DNA) Circularize() (*DNA, error) {
	if d.Len() > 0 {
		last := d.Len() - 1
		if d.top.At(last) == Gap && d.bottom.At(0) == Gap {
			return nil, ValueError("cannot circularize: termini disconnected")
		}
		if d.bottom.At(d.bottom.Len()-1) == Gap && d.top.At(0) == Gap {
			return nil, ValueError("cannot circularize: termini disconnected")
		}
	}
	c := d.Copy()
	c.circular = true
	return c, nil
}

// Linearize cuts circular DNA at the given index, re-zeroing the sequence
// there. Linearizing already-linear DNA is an error.
func (d *DNA) Linearize(index int) (*DNA, error) {
	if !d.circular {
		return nil, ValueError("cannot relinearize linear DNA")
	}
	c := d.Copy()
	c.circular = false
	if index == 0 {
		return c, nil
	}
	index = mod(index, d.Len())
	left, err := c.Slice(index, d.Len())
	if err != nil {
		return nil, err
	}
	right, err := c.Slice(0, index)
	if err != nil {
		return nil, err
	}
	return left.Add(right)
}

// Rotate reorients circular DNA by n bases (positive n moves the origin
// backwards). Features are re-keyed modulo the length. Rotating linear DNA
// is an error unless n is zero.
func (d *DNA) Rotate(n int) (*DNA, error) {
	length := d.Len()
	if length == 0 || mod(n, length) == 0 {
		return d.Copy(), nil
	}
	if !d.circular {
		return nil, ValueError("cannot rotate linear DNA")
	}
	n = mod(n, length)

	top := d.top.String()
	bottom := d.bottom.String()
	// the bottom strand runs antiparallel, so it rotates the opposite way
	// within its own 5' to 3' frame
	rotated := newDNA(
		newStrand(top[length-n:]+top[:length-n], DNAMaterial),
		newStrand(bottom[n:]+bottom[:n], DNAMaterial),
		true,
		d.ds,
		rotateFeatures(d.features, n, length),
		d.name,
	)
	return rotated, nil
}

// RotateTo reorients circular DNA so that the given index becomes the new
// origin.
func (d *DNA) RotateTo(index int) (*DNA, error) {
	return d.Rotate(-index)
}

// RotateToFeature reorients circular DNA to the start of a feature.
func (d *DNA) RotateToFeature(f Feature) (*DNA, error) {
	return d.RotateTo(f.Start)
}

// ReverseComplement returns the molecule read from the opposite strand.
// Features swap strands and their coordinates invert.
func (d *DNA) ReverseComplement() *DNA {
	top, _ := d.top.ReverseComplement()
	bottom, _ := d.bottom.ReverseComplement()
	return newDNA(top, bottom, d.circular, d.ds, reverseFeatures(d.features, d.Len()), d.name)
}

// Flip swaps the top and bottom strands without touching features.
func (d *DNA) Flip() *DNA {
	return newDNA(d.bottom, d.top, d.circular, d.ds, copyFeatures(d.features), d.name)
}

// Slice returns the linear [start, stop) sub-molecule. Features falling
// even partially outside the slice are dropped; the rest are re-keyed.
// Slicing a circular molecule operates on its current representation
// without wrapping; rotate first to slice across the origin.
func (d *DNA) Slice(start, stop int) (*DNA, error) {
	if start < 0 || stop > d.Len() || start > stop {
		return nil, valueErrorf("slice [%d, %d) out of range for sequence of length %d", start, stop, d.Len())
	}
	length := d.Len()
	top := d.top.Slice(start, stop)
	bottom := d.bottom.Slice(length-stop, length-start)
	return newDNA(top, bottom, false, d.ds, sliceFeatures(d.features, start, stop), d.name), nil
}

// Add concatenates two linear molecules. It fails if either is circular or
// if the junction would be discontinuous: both strands gapped where the
// molecules meet. Features merge, with the other molecule's re-keyed by
// this molecule's length.
func (d *DNA) Add(other *DNA) (*DNA, error) {
	if d.circular || other.circular {
		return nil, ValueError("can only add linear DNA")
	}
	if d.Len() != 0 && other.Len() != 0 {
		// bottom[len-1] pairs the left end of a molecule, bottom[0] the right
		if d.top.At(d.Len()-1) == Gap && other.bottom.At(other.Len()-1) == Gap {
			return nil, ValueError("concatenated DNA would be discontinuous")
		}
		if d.bottom.At(0) == Gap && other.top.At(0) == Gap {
			return nil, ValueError("concatenated DNA would be discontinuous")
		}
	}

	top, err := d.top.Add(other.top)
	if err != nil {
		return nil, err
	}
	bottom, err := other.bottom.Add(d.bottom)
	if err != nil {
		return nil, err
	}

	features := append(copyFeatures(d.features), shiftFeatures(other.features, d.Len())...)
	return newDNA(top, bottom, false, d.ds || other.ds, features, d.name), nil
}

// Locate finds pattern matches on both strands, returning top- and
// bottom-strand match indices (each in that strand's own 5' to 3' frame).
// For circular molecules the search wraps len(pattern)-1 bases past the
// origin and match indices are reduced modulo the length, so matches
// spanning the origin are found and reported relative to the unwrapped
// origin.
func (d *DNA) Locate(pattern string) (topMatches, bottomMatches []int, err error) {
	length := d.Len()
	top, bottom := d.top, d.bottom

	if d.circular {
		if len(pattern) >= 2*length {
			return nil, nil, ValueError("search pattern longer than searchable sequence")
		}
		wrap := len(pattern) - 1
		if wrap > length {
			wrap = length
		}
		top = newStrand(top.String()+top.String()[:wrap], DNAMaterial)
		bottom = newStrand(bottom.String()+bottom.String()[:wrap], DNAMaterial)
	} else if len(pattern) > length {
		return nil, nil, ValueError("search pattern longer than searchable sequence")
	}

	topMatches, err = top.Locate(pattern)
	if err != nil {
		return nil, nil, err
	}
	bottomMatches, err = bottom.Locate(pattern)
	if err != nil {
		return nil, nil, err
	}

	if d.circular {
		for i, m := range topMatches {
			topMatches[i] = mod(m, length)
		}
		for i, m := range bottomMatches {
			bottomMatches[i] = mod(m, length)
		}
	}
	return topMatches, bottomMatches, nil
}

// GC returns the fraction of G and C bases on the top strand.
func (d *DNA) GC() float64 { return d.top.GC() }

// MW returns the molecular weight of both strands in amu.
func (d *DNA) MW() float64 { return d.top.MW() + d.bottom.MW() }

// IsPalindrome reports whether both strands are their own reverse
// complements.
func (d *DNA) IsPalindrome() bool {
	return d.top.IsPalindrome() && d.bottom.IsPalindrome()
}

// IsRotation reports whether the other molecule is a rotation of this one,
// in either orientation.
func (d *DNA) IsRotation(other *DNA) bool {
	if d.Len() != other.Len() {
		return false
	}
	doubled := d.top.String() + d.top.String()
	if strings.Contains(doubled, other.top.String()) {
		return true
	}
	rc := d.ReverseComplement()
	doubled = rc.top.String() + rc.top.String()
	return strings.Contains(doubled, other.top.String())
}

// ToSS converts to single-stranded DNA by blanking the bottom strand. It
// fails if the top strand is gapped: removing the bottom strand there
// would break the molecule in two.
func (d *DNA) ToSS() (*DNA, error) {
	if !d.ds {
		return d.Copy(), nil
	}
	if strings.ContainsRune(d.top.String(), Gap) {
		return nil, ValueError("coercing to single-stranded would introduce a double-stranded break")
	}
	c := d.Copy()
	c.bottom = newStrand(strings.Repeat(string(Gap), d.Len()), DNAMaterial)
	c.ds = false
	return c, nil
}

// ToDS converts to double-stranded DNA, filling whichever strand is all
// gaps with the complement of the other.
func (d *DNA) ToDS() *DNA {
	if d.ds {
		return d.Copy()
	}
	c := d.Copy()
	if c.top.allGaps() {
		c.top, _ = c.bottom.ReverseComplement()
	} else {
		c.bottom, _ = c.top.ReverseComplement()
	}
	c.ds = true
	return c
}

// Excise removes a feature from circular DNA and linearizes at the base
// just after it. Complementary to Extract.
func (d *DNA) Excise(f Feature) (*DNA, error) {
	rotated, err := d.RotateToFeature(f)
	if err != nil {
		return nil, err
	}
	return rotated.Slice(f.Stop-f.Start, rotated.Len())
}

// Extract returns the subsequence covered by a feature, with the feature's
// internal gaps (relative to its start) masked to N.
func (d *DNA) Extract(f Feature) (*DNA, error) {
	extracted, err := d.Slice(f.Start, f.Stop)
	if err != nil {
		return nil, err
	}
	if len(f.Gaps) == 0 {
		return extracted, nil
	}
	top := []byte(extracted.top.String())
	bottom := []byte(extracted.bottom.String())
	length := len(top)
	for _, gap := range f.Gaps {
		for i := gap[0]; i < gap[1] && i < length; i++ {
			top[i] = 'N'
			bottom[length-1-i] = 'N'
		}
	}
	extracted.top = newStrand(string(top), DNAMaterial)
	extracted.bottom = newStrand(string(bottom), DNAMaterial)
	return extracted, nil
}

// SelectFeatures returns the features whose name matches term exactly.
func (d *DNA) SelectFeatures(term string) []Feature {
	var matched []Feature
	for _, f := range d.features {
		if f.Name == term {
			matched = append(matched, f.Copy())
		}
	}
	return matched
}
