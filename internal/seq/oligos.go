package seq

// OligoParams configures an overlapping-oligo assembly design.
type OligoParams struct {
	// Tm is the target melting temperature for every overlap
	Tm float64

	// LengthRange bounds each oligo's length; the upper bound is the synthesis
	// ceiling and the lower bound only matters when OligoNumber is set
	LengthRange [2]int

	// RequireEven forces an even oligo count
	RequireEven bool

	// Start5 leaves the first oligo's free terminus on its 5' side
	Start5 bool

	// OligoNumber, when positive, searches decreasing length ceilings for a
	// design with exactly this many oligos
	OligoNumber int

	// OverlapMin is the minimum overlap length
	OverlapMin int

	// MinException lets overlaps shorter than OverlapMin keep growing past
	// the Tm setpoint instead of failing the length condition outright
	MinException bool

	// TmFunc predicts overlap melting temperatures; defaults to MeltingTemp
	TmFunc TmFunc
}

// DefaultOligoParams returns the standard design thresholds.
func DefaultOligoParams() OligoParams {
	return OligoParams{
		Tm:          72.0,
		LengthRange: [2]int{80, 200},
		RequireEven: true,
		Start5:      true,
		OverlapMin:  20,
		TmFunc:      MeltingTemp,
	}
}

func (p OligoParams) withDefaults() OligoParams {
	def := DefaultOligoParams()
	if p.Tm == 0 {
		p.Tm = def.Tm
	}
	if p.LengthRange == [2]int{} {
		p.LengthRange = def.LengthRange
	}
	if p.OverlapMin == 0 {
		p.OverlapMin = def.OverlapMin
	}
	if p.TmFunc == nil {
		p.TmFunc = def.TmFunc
	}
	return p
}

// OligoAssembly is a designed tiling of a target into overlapping
// single-stranded oligos. Joining the oligos at the overlap windows
// reconstructs the target exactly.
type OligoAssembly struct {
	// Oligos alternate strands so that adjacent oligos anneal
	Oligos []*DNA

	// Overlaps are the annealing windows between adjacent oligos, in
	// top-strand orientation
	Overlaps []*DNA

	// OverlapTms are the predicted melting temperatures of the overlaps
	OverlapTms []float64

	// OverlapIndices are the [start, stop) top-strand coordinates of each
	// overlap window
	OverlapIndices [][2]int

	// Warnings collects non-fatal design diagnostics
	Warnings []string
}

// DesignOligos tiles a linear target into overlapping oligos whose overlap
// windows all meet the configured melting-temperature and length thresholds.
// Overlaps are placed equidistantly and the weakest one is grown a base at a
// time; when any oligo hits the length ceiling first, the design restarts
// with more oligos.
func DesignOligos(template *DNA, params OligoParams) (*OligoAssembly, error) {
	params = params.withDefaults()
	if template.IsCircular() {
		return nil, ValueError("oligo assembly designs tile linear targets only")
	}

	// a target shorter than the minimum oligo is just two full-length oligos
	if template.Len() < params.LengthRange[0] {
		top, err := template.ToSS()
		if err != nil {
			return nil, err
		}
		bottom, err := template.ReverseComplement().ToSS()
		if err != nil {
			return nil, err
		}
		return &OligoAssembly{
			Oligos:         []*DNA{top, bottom},
			Overlaps:       []*DNA{template.Copy()},
			OverlapTms:     []float64{params.TmFunc(template.Top().String())},
			OverlapIndices: [][2]int{{0, template.Len()}},
		}, nil
	}

	var design *oligoDesign
	if params.OligoNumber > 0 {
		found, err := searchOligoNumber(template, params)
		if err != nil {
			return nil, err
		}
		design = found
	} else {
		design = growOverlaps(template, params, params.LengthRange[1])
	}

	oligos := make([]*DNA, len(design.starts))
	for i := range design.starts {
		oligo, err := template.Slice(design.starts[i], design.ends[i])
		if err != nil {
			return nil, err
		}
		// alternate strands so adjacent oligos anneal
		if (params.Start5 && i%2 == 1) || (!params.Start5 && i%2 == 0) {
			oligo = oligo.ReverseComplement()
		}
		if oligos[i], err = oligo.ToSS(); err != nil {
			return nil, err
		}
	}

	assembly := &OligoAssembly{
		Oligos:         oligos,
		OverlapTms:     design.overlapTms,
		OverlapIndices: design.overlapIndices(),
	}
	for _, window := range assembly.OverlapIndices {
		overlap, err := template.Slice(window[0], window[1])
		if err != nil {
			return nil, err
		}
		assembly.Overlaps = append(assembly.Overlaps, overlap)
	}

	// growing two overlaps toward each other can make their windows collide
	for i := 0; i+1 < len(assembly.OverlapIndices); i++ {
		if assembly.OverlapIndices[i+1][0] <= assembly.OverlapIndices[i][1] {
			assembly.Warnings = append(assembly.Warnings, "overlap windows overlap one another")
			break
		}
	}
	return assembly, nil
}

// searchOligoNumber retries the design with decreasing length ceilings until
// it lands on exactly the requested oligo count.
func searchOligoNumber(template *DNA, params OligoParams) (*oligoDesign, error) {
	const step = 3

	lengthMax := params.LengthRange[1]
	for lengthMax > params.LengthRange[0] {
		design := growOverlaps(template, params, lengthMax)
		switch n := len(design.starts); {
		case n == params.OligoNumber:
			return design, nil
		case n > params.OligoNumber:
			// shrinking the ceiling only adds oligos from here on
			return nil, valueErrorf("cannot tile a %dbp target with %d oligos", template.Len(), params.OligoNumber)
		}
		lengthMax -= step
	}
	return nil, valueErrorf("cannot tile a %dbp target with %d oligos", template.Len(), params.OligoNumber)
}

// oligoDesign is the raw index layout of a tiling: oligo i spans
// [starts[i], ends[i]) on the target's top strand and overlap i spans
// [starts[i+1], ends[i]).
type oligoDesign struct {
	starts, ends []int
	overlapTms   []float64
}

func (d *oligoDesign) overlapIndices() [][2]int {
	windows := make([][2]int, len(d.starts)-1)
	for i := range windows {
		windows[i] = [2]int{d.starts[i+1], d.ends[i]}
	}
	return windows
}

// growOverlaps places oligo boundaries equidistantly and grows the
// lowest-Tm overlap one base at a time, always into the shorter of its two
// neighboring oligos, until every overlap meets the Tm and length
// thresholds. An oligo reaching the length ceiling restarts the layout with
// more oligos.
func growOverlaps(template *DNA, params OligoParams, lengthMax int) *oligoDesign {
	target := template.Top().String()
	length := len(target)

	oligoN := length/lengthMax + 1
	increment := 1
	if params.RequireEven {
		increment = 2
		if oligoN%2 == 1 {
			oligoN++
		}
	}
	for float64(length)/float64(oligoN) > float64(lengthMax) {
		oligoN += increment
	}

	var design *oligoDesign
	tmMet, lenMet := false, false
	for !tmMet || !lenMet {
		overlapN := oligoN - 1

		// seed one-base overlaps spread equidistantly over the target
		interval := float64(length) / float64(oligoN)
		starts := make([]int, oligoN)
		ends := make([]int, oligoN)
		for i := 0; i < overlapN; i++ {
			starts[i+1] = int(interval * float64(i+1))
			ends[i] = starts[i+1] + 1
		}
		ends[oligoN-1] = length

		design = &oligoDesign{starts: starts, ends: ends, overlapTms: make([]float64, overlapN)}
		for i, window := range design.overlapIndices() {
			design.overlapTms[i] = params.TmFunc(target[window[0]:window[1]])
		}
		weakest := argmin(design.overlapTms)

		maxed := false
		for !(tmMet && lenMet) && !maxed {
			windows := design.overlapIndices()
			design.overlapTms[weakest] = params.TmFunc(target[windows[weakest][0]:windows[weakest][1]])
			weakest = argmin(design.overlapTms)
			design.expand(weakest, lengthMax)

			maxed = design.anyOligoAt(lengthMax)
			tmMet = allAtLeast(design.overlapTms, params.Tm)
			if params.MinException {
				lenMet = true
			} else {
				lenMet = design.allOverlapsAtLeast(params.OverlapMin)
			}
		}

		if params.MinException {
			lenMet = design.allOverlapsAtLeast(params.OverlapMin)
			if !lenMet {
				// Tm is satisfied; grow the globally shortest overlap,
				// ignoring Tm, until the length condition holds
				var shortest int
				for !lenMet && !maxed {
					shortest = design.shortestOverlap()
					design.expand(shortest, lengthMax)
					maxed = design.anyOligoAt(lengthMax)
					lenMet = design.allOverlapsAtLeast(params.OverlapMin)
				}
				windows := design.overlapIndices()
				design.overlapTms[shortest] = params.TmFunc(target[windows[shortest][0]:windows[shortest][1]])
			}
		}

		oligoN += increment
	}
	return design
}

// expand widens overlap i by one base into whichever neighboring oligo is
// shorter, or into the one that still has room when the other is at the
// length ceiling.
func (d *oligoDesign) expand(i, lengthMax int) {
	leftLen := d.ends[i] - d.starts[i]
	rightLen := d.ends[i+1] - d.starts[i+1]

	switch {
	case rightLen == lengthMax:
		d.ends[i]++
	case leftLen == lengthMax:
		d.starts[i+1]--
	case leftLen > rightLen:
		d.starts[i+1]--
	default:
		d.ends[i]++
	}
}

func (d *oligoDesign) anyOligoAt(lengthMax int) bool {
	for i := range d.starts {
		if d.ends[i]-d.starts[i] == lengthMax {
			return true
		}
	}
	return false
}

func (d *oligoDesign) allOverlapsAtLeast(minLength int) bool {
	for _, window := range d.overlapIndices() {
		if window[1]-window[0] < minLength {
			return false
		}
	}
	return true
}

func (d *oligoDesign) shortestOverlap() int {
	windows := d.overlapIndices()
	shortest := 0
	for i, window := range windows {
		if window[1]-window[0] < windows[shortest][1]-windows[shortest][0] {
			shortest = i
		}
	}
	return shortest
}

func argmin(values []float64) int {
	lowest := 0
	for i, v := range values {
		if v < values[lowest] {
			lowest = i
		}
	}
	return lowest
}

func allAtLeast(values []float64, threshold float64) bool {
	for _, v := range values {
		if v < threshold {
			return false
		}
	}
	return true
}
