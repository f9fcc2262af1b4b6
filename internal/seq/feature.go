package seq

import "sort"

// featureTypes is the closed vocabulary of annotation kinds.
var featureTypes = map[string]bool{
	"coding":     true,
	"misc":       true,
	"origin":     true,
	"primer":     true,
	"promoter":   true,
	"rbs":        true,
	"terminator": true,
	"3'utr":      true,
	"5'utr":      true,
}

// FeatureTypes returns the allowed feature type names, sorted.
func FeatureTypes() []string {
	names := make([]string, 0, len(featureTypes))
	for name := range featureTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Feature is an annotated sub-region of a parent sequence. Start and Stop
// are half-open coordinates on the parent. Strand is 0 for Watson, 1 for
// Crick. Gaps lists internal discontinuities as (stop, start) coordinate
// pairs, e.g. the introns of a discontinuous coding region.
type Feature struct {
	Name       string
	Start      int
	Stop       int
	Type       string
	Strand     int
	Gaps       [][2]int
	Gene       string
	LocusTag   string
	Qualifiers map[string]string
}

// NewFeature builds a feature, validating its type against the closed
// vocabulary.
func NewFeature(name string, start, stop int, featureType string) (Feature, error) {
	if !featureTypes[featureType] {
		return Feature{}, valueErrorf("feature type %q must be one of %v", featureType, FeatureTypes())
	}
	return Feature{
		Name:  name,
		Start: start,
		Stop:  stop,
		Type:  featureType,
	}, nil
}

// Copy returns a deep copy of the feature; gaps and qualifiers are not
// shared with the original.
func (f Feature) Copy() Feature {
	c := f
	if f.Gaps != nil {
		c.Gaps = make([][2]int, len(f.Gaps))
		copy(c.Gaps, f.Gaps)
	}
	if f.Qualifiers != nil {
		c.Qualifiers = make(map[string]string, len(f.Qualifiers))
		for k, v := range f.Qualifiers {
			c.Qualifiers[k] = v
		}
	}
	return c
}

// Move returns the feature shifted by n bases.
func (f Feature) Move(n int) Feature {
	c := f.Copy()
	c.Start += n
	c.Stop += n
	for i := range c.Gaps {
		c.Gaps[i][0] += n
		c.Gaps[i][1] += n
	}
	return c
}

// Equal reports whether two features describe the same annotation.
func (f Feature) Equal(other Feature) bool {
	if f.Name != other.Name || f.Type != other.Type ||
		f.Start != other.Start || f.Stop != other.Stop ||
		f.Strand != other.Strand || len(f.Gaps) != len(other.Gaps) {
		return false
	}
	for i := range f.Gaps {
		if f.Gaps[i] != other.Gaps[i] {
			return false
		}
	}
	return true
}

// The re-key helpers below are the single shared coordinate transform used
// by every structural operation on DNA: slicing, rotation, reverse
// complementation, and concatenation all re-derive their feature lists
// here instead of duplicating the arithmetic.

// copyFeatures deep-copies a feature list.
func copyFeatures(feats []Feature) []Feature {
	if feats == nil {
		return nil
	}
	out := make([]Feature, len(feats))
	for i, f := range feats {
		out[i] = f.Copy()
	}
	return out
}

// sliceFeatures keeps the features lying entirely within [start, stop) and
// re-keys them to the slice's coordinates. A feature extending even
// partially outside the slice is dropped.
func sliceFeatures(feats []Feature, start, stop int) []Feature {
	var kept []Feature
	for _, f := range feats {
		if f.Start < start || f.Stop > stop {
			continue
		}
		kept = append(kept, f.Move(-start))
	}
	return kept
}

// shiftFeatures re-keys a feature list by a fixed offset, used when
// concatenating a sequence onto the end of another.
func shiftFeatures(feats []Feature, offset int) []Feature {
	out := make([]Feature, 0, len(feats))
	for _, f := range feats {
		out = append(out, f.Move(offset))
	}
	return out
}

// rotateFeatures re-keys features after rotating a circular parent by n
// bases, reducing coordinates modulo the parent length.
func rotateFeatures(feats []Feature, n, length int) []Feature {
	out := make([]Feature, 0, len(feats))
	for _, f := range feats {
		moved := f.Move(n)
		moved.Start = mod(moved.Start, length)
		moved.Stop = mod(moved.Stop, length)
		out = append(out, moved)
	}
	return out
}

// reverseFeatures re-keys features after reverse-complementing the parent:
// strands flip and coordinates invert around the parent length.
func reverseFeatures(feats []Feature, length int) []Feature {
	out := make([]Feature, 0, len(feats))
	for _, f := range feats {
		c := f.Copy()
		if c.Strand == 1 {
			c.Strand = 0
		} else {
			c.Strand = 1
		}
		c.Start, c.Stop = length-c.Stop, length-c.Start
		out = append(out, c)
	}
	return out
}

func mod(n, length int) int {
	return ((n % length) + length) % length
}
