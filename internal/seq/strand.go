package seq

import "strings"

// Strand is a single validated chain of sequence symbols, always stored
// 5' to 3' and uppercase. Strands are immutable: every transform returns a
// new value.
type Strand struct {
	seq      string
	material Material
}

// NewStrand validates and uppercases s for the given material.
func NewStrand(s string, m Material) (Strand, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if err := checkAlphabet(s, m); err != nil {
		return Strand{}, err
	}
	return Strand{seq: s, material: m}, nil
}

// newStrand skips validation. Internal transforms stay within the alphabet,
// so re-checking on every copy would only cost time.
func newStrand(s string, m Material) Strand {
	return Strand{seq: s, material: m}
}

// Len returns the number of symbols in the strand.
func (s Strand) Len() int { return len(s.seq) }

// String returns the raw sequence.
func (s Strand) String() string { return s.seq }

// Material returns the strand's material kind.
func (s Strand) Material() Material { return s.material }

// At returns the symbol at index i.
func (s Strand) At(i int) byte { return s.seq[i] }

// Slice returns the [start, stop) subsequence.
func (s Strand) Slice(start, stop int) Strand {
	return newStrand(s.seq[start:stop], s.material)
}

// Add concatenates two strands of the same material.
func (s Strand) Add(other Strand) (Strand, error) {
	if s.material != other.material {
		return Strand{}, valueErrorf("cannot add %s to %s", other.material, s.material)
	}
	return newStrand(s.seq + other.seq, s.material), nil
}

// Reverse returns the strand read 3' to 5'.
func (s Strand) Reverse() Strand {
	b := []byte(s.seq)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return newStrand(string(b), s.material)
}

// Complement returns the base-pairing partner of every symbol in place.
func (s Strand) Complement() (Strand, error) {
	code, ok := complements[s.material]
	if !ok {
		return Strand{}, valueErrorf("%s has no complement", s.material)
	}
	b := []byte(s.seq)
	for i := range b {
		b[i] = code[b[i]]
	}
	return newStrand(string(b), s.material), nil
}

// ReverseComplement returns the reverse complement, i.e. the sequence of
// the opposite strand read 5' to 3'.
func (s Strand) ReverseComplement() (Strand, error) {
	c, err := s.Complement()
	if err != nil {
		return Strand{}, err
	}
	return c.Reverse(), nil
}

// IsPalindrome reports whether the strand equals its own reverse
// complement. Odd-length strands can never be palindromic.
func (s Strand) IsPalindrome() bool {
	if s.Len()%2 != 0 {
		return false
	}
	rc, err := s.ReverseComplement()
	if err != nil {
		return false
	}
	return s.seq == rc.seq
}

// Locate finds every index at which pattern matches, including overlapping
// matches. An N in the pattern matches any non-gap symbol.
func (s Strand) Locate(pattern string) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ValueError("empty search pattern")
	}
	if len(pattern) > s.Len() {
		return nil, ValueError("search pattern longer than searchable sequence")
	}
	pattern = strings.ToUpper(pattern)

	var matches []int
	for i := 0; i+len(pattern) <= s.Len(); i++ {
		if s.matchesAt(pattern, i) {
			matches = append(matches, i)
		}
	}
	return matches, nil
}

func (s Strand) matchesAt(pattern string, at int) bool {
	for j := 0; j < len(pattern); j++ {
		c := s.seq[at+j]
		p := pattern[j]
		if p == c {
			continue
		}
		if p == 'N' && c != Gap {
			continue
		}
		return false
	}
	return true
}

// GC returns the fraction of G and C symbols.
func (s Strand) GC() float64 {
	if s.Len() == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s.seq); i++ {
		if s.seq[i] == 'G' || s.seq[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(s.Len())
}

// allGaps reports whether every position is a gap. An empty strand has no
// bases and counts as all gaps.
func (s Strand) allGaps() bool {
	for i := 0; i < len(s.seq); i++ {
		if s.seq[i] != Gap {
			return false
		}
	}
	return true
}

// per-base molecular weights in amu
var baseWeights = map[byte]float64{
	'A': 313.2,
	'T': 304.2,
	'G': 289.2,
	'C': 329.2,
	'U': 306.2,
}

// MW returns the molecular weight of the strand in amu. Gaps and wildcards
// contribute nothing.
func (s Strand) MW() float64 {
	total := 0.0
	for i := 0; i < len(s.seq); i++ {
		total += baseWeights[s.seq[i]]
	}
	return total
}
