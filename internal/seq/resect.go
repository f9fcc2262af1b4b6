package seq

import "strings"

// Resection models exonuclease activity: bases are removed from one end of
// one strand, leaving the other strand protruding as a single-stranded
// overhang. Restriction digestion uses these to turn offset nicks into
// 5' or 3' overhangs.

// FiveResect removes n bases from the 5' end of the top strand.
func FiveResect(d *DNA, n int) *DNA {
	c := d.Copy()
	top := c.top.String()
	if n >= len(top) {
		c.top = newStrand(strings.Repeat(string(Gap), len(top)), DNAMaterial)
	} else {
		c.top = newStrand(strings.Repeat(string(Gap), n)+top[n:], DNAMaterial)
	}
	return trimEndGaps(c)
}

// ThreeResect removes n bases from the 3' end of the top strand.
func ThreeResect(d *DNA, n int) *DNA {
	c := d.Copy()
	top := c.top.String()
	if n >= len(top) {
		c.top = newStrand(strings.Repeat(string(Gap), len(top)), DNAMaterial)
	} else {
		c.top = newStrand(top[:len(top)-n]+strings.Repeat(string(Gap), n), DNAMaterial)
	}
	return trimEndGaps(c)
}

// trimEndGaps slices off positions at either terminus where both strands
// are gapped, so a resected molecule never carries fully-disconnected ends.
func trimEndGaps(d *DNA) *DNA {
	countGaps := func(s string) int {
		n := 0
		for i := 0; i < len(s); i++ {
			if s[i] != Gap {
				break
			}
			n++
		}
		return n
	}
	reverse := func(s string) string {
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	}

	top := d.top.String()
	bottom := d.bottom.String()

	topLeft := countGaps(top)
	topRight := countGaps(reverse(top))
	bottomLeft := countGaps(reverse(bottom)) // bottom's 3' end pairs the molecule's left
	bottomRight := countGaps(bottom)

	left := min(topLeft, bottomLeft)
	right := d.Len() - min(topRight, bottomRight)
	if left >= right {
		trimmed, _ := d.Slice(0, 0)
		return trimmed
	}
	trimmed, _ := d.Slice(left, right)
	return trimmed
}
