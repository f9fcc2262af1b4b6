package seq

// Primer is a single-stranded oligo with a template-binding anneal region,
// an optional non-template 5' overhang, and a melting temperature.
type Primer struct {
	anneal   *DNA
	overhang *DNA
	tm       float64
	name     string
}

// NewPrimer builds a primer from its annealing sequence and melting
// temperature. The anneal sequence is coerced to single-stranded.
func NewPrimer(anneal *DNA, tm float64) (*Primer, error) {
	if anneal == nil || anneal.Len() == 0 {
		return nil, ValueError("primer anneal sequence is empty")
	}
	ss, err := anneal.ToSS()
	if err != nil {
		return nil, err
	}
	empty, _ := NewSSDNA("")
	return &Primer{anneal: ss, overhang: empty, tm: tm}, nil
}

// WithOverhang returns a copy of the primer carrying a non-template 5'
// addition.
func (p *Primer) WithOverhang(overhang *DNA) (*Primer, error) {
	ss, err := overhang.ToSS()
	if err != nil {
		return nil, err
	}
	c := *p
	c.overhang = ss
	return &c, nil
}

// WithName returns a copy of the primer carrying a name.
func (p *Primer) WithName(name string) *Primer {
	c := *p
	c.name = name
	return &c
}

// Anneal returns the template-binding portion.
func (p *Primer) Anneal() *DNA { return p.anneal }

// Overhang returns the non-template 5' addition, possibly empty.
func (p *Primer) Overhang() *DNA { return p.overhang }

// Tm returns the primer's melting temperature.
func (p *Primer) Tm() float64 { return p.tm }

// Name returns the primer's optional name.
func (p *Primer) Name() string { return p.name }

// Sequence returns the full primer: overhang followed by anneal.
func (p *Primer) Sequence() *DNA {
	full, _ := p.overhang.Add(p.anneal)
	return full
}

// Len returns the length of the full primer sequence.
func (p *Primer) Len() int { return p.overhang.Len() + p.anneal.Len() }

// Equal reports whether two primers have the same overhang and annealing
// sequence.
func (p *Primer) Equal(other *Primer) bool {
	return p.anneal.Equal(other.anneal) && p.overhang.Equal(other.overhang)
}
