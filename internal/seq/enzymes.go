package seq

import (
	"sort"
	"strings"
)

// RestrictionSite is a restriction endonuclease's recognition sequence and
// cut geometry. The cut site holds the 0-indexed nick offsets for the top
// and bottom strands, measured from the start of the recognition sequence;
// offsets outside [0, len(site)] denote an enzyme that cuts outside its
// recognition sequence (a Type IIS cutter like FokI).
type RestrictionSite struct {
	recognition *DNA
	cutSite     [2]int
	name        string
}

// NewRestrictionSite builds a restriction site from a recognition sequence
// and its top/bottom nick offsets.
func NewRestrictionSite(recognition *DNA, topCut, bottomCut int, name string) RestrictionSite {
	return RestrictionSite{
		recognition: recognition,
		cutSite:     [2]int{topCut, bottomCut},
		name:        name,
	}
}

// ParseRestrictionSite reads the caret/underscore cut notation, e.g.
// "G^AATT_C" for EcoRI: '^' marks the top-strand nick and '_' the
// bottom-strand nick. Enzymes cutting outside their recognition sequence
// can't be written this way; build those with NewRestrictionSite.
func ParseRestrictionSite(name, notation string) (RestrictionSite, error) {
	notation = strings.ToUpper(strings.TrimSpace(notation))
	cutIndex := strings.Index(notation, "^")
	hangIndex := strings.Index(notation, "_")
	if cutIndex < 0 || hangIndex < 0 {
		return RestrictionSite{}, valueErrorf("recognition notation %q needs both a ^ (top cut) and a _ (bottom cut)", notation)
	}

	// remove whichever marker comes second from the other's index
	if cutIndex < hangIndex {
		hangIndex--
	} else {
		cutIndex--
	}
	recog := strings.ReplaceAll(notation, "^", "")
	recog = strings.ReplaceAll(recog, "_", "")

	dna, err := NewDNA(recog)
	if err != nil {
		return RestrictionSite{}, err
	}
	return NewRestrictionSite(dna, cutIndex, hangIndex, name), nil
}

// Recognition returns the enzyme's recognition sequence.
func (r RestrictionSite) Recognition() *DNA { return r.recognition }

// CutSite returns the top- and bottom-strand nick offsets.
func (r RestrictionSite) CutSite() (top, bottom int) {
	return r.cutSite[0], r.cutSite[1]
}

// Name returns the enzyme's name.
func (r RestrictionSite) Name() string { return r.name }

// Len returns the recognition sequence length.
func (r RestrictionSite) Len() int { return r.recognition.Len() }

// IsPalindrome reports whether the recognition sequence is palindromic;
// palindromic sites occur at the same absolute position on both strands.
func (r RestrictionSite) IsPalindrome() bool { return r.recognition.IsPalindrome() }

// CutsOutside reports whether the enzyme nicks outside its recognition
// sequence.
func (r RestrictionSite) CutsOutside() bool {
	for _, cut := range r.cutSite {
		if cut < 0 || cut > r.Len() {
			return true
		}
	}
	return false
}

// enzymeDef is a catalog row: recognition sequence plus nick offsets.
type enzymeDef struct {
	recog   string
	topCut  int
	hangCut int
}

// catalog of common enzymes. FokI nicks 9/13 bases past its site.
var enzymeCatalog = map[string]enzymeDef{
	"AclI":    {"AACGTT", 2, 3},
	"AflII":   {"CTTAAG", 1, 5},
	"AgeI":    {"ACCGGT", 1, 5},
	"BamHI":   {"GGATCC", 1, 5},
	"DpnI":    {"GATC", 2, 2},
	"DraI":    {"TTTAAA", 3, 3},
	"EcoRI":   {"GAATTC", 1, 5},
	"EcoRV":   {"GATATC", 3, 3},
	"FokI":    {"GGATG", 14, 18},
	"HindIII": {"AAGCTT", 1, 5},
	"NcoI":    {"CCATGG", 1, 5},
	"NheI":    {"GCTAGC", 1, 5},
	"NruI":    {"TCGCGA", 3, 3},
	"PmeI":    {"GTTTAAAC", 4, 4},
	"PstI":    {"CTGCAG", 5, 1},
	"SnaBI":   {"TACGTA", 3, 3},
	"SpeI":    {"ACTAGT", 1, 5},
	"XbaI":    {"TCTAGA", 1, 5},
	"XhoI":    {"CTCGAG", 1, 5},
	"XmaI":    {"CCCGGG", 1, 5},
}

// Enzyme looks up a built-in restriction enzyme by name.
func Enzyme(name string) (RestrictionSite, error) {
	def, ok := enzymeCatalog[name]
	if !ok {
		return RestrictionSite{}, valueErrorf("unknown enzyme %q; see EnzymeNames for the catalog", name)
	}
	dna, err := NewDNA(def.recog)
	if err != nil {
		return RestrictionSite{}, err
	}
	return NewRestrictionSite(dna, def.topCut, def.hangCut, name), nil
}

// EnzymeNames returns the names of the built-in enzymes, sorted.
func EnzymeNames() []string {
	names := make([]string, 0, len(enzymeCatalog))
	for name := range enzymeCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
