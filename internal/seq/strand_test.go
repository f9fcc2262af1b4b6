package seq

import (
	"reflect"
	"testing"
)

func Test_NewStrand(t *testing.T) {
	type args struct {
		seq      string
		material Material
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"uppercase and keep valid DNA",
			args{"atgcn-", DNAMaterial},
			"ATGCN-",
			false,
		},
		{
			"reject U in DNA",
			args{"AUGC", DNAMaterial},
			"",
			true,
		},
		{
			"accept U in RNA",
			args{"augc", RNAMaterial},
			"AUGC",
			false,
		},
		{
			"reject junk characters",
			args{"ATXGC", DNAMaterial},
			"",
			true,
		},
		{
			"accept a peptide with stop",
			args{"MKLV*", PeptideMaterial},
			"MKLV*",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStrand(tt.args.seq, tt.args.material)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStrand() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("NewStrand() = %v, want %v", got.String(), tt.want)
			}
		})
	}
}

func Test_Strand_ReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"simple", "ATGC", "GCAT"},
		{"gaps complement to gaps", "ATG--C", "G--CAT"},
		{"wildcards stay wildcards", "ANT", "ANT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrand(tt.seq, DNAMaterial)
			if err != nil {
				t.Fatal(err)
			}
			got, err := s.ReverseComplement()
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("ReverseComplement() = %v, want %v", got.String(), tt.want)
			}

			// applying it twice must give back the original
			back, _ := got.ReverseComplement()
			if back.String() != s.String() {
				t.Errorf("ReverseComplement() is not an involution: %v", back.String())
			}
		})
	}
}

func Test_Strand_Locate(t *testing.T) {
	type args struct {
		seq     string
		pattern string
	}
	tests := []struct {
		name    string
		args    args
		want    []int
		wantErr bool
	}{
		{
			"single match",
			args{"TGACCATGGAAA", "CCATGG"},
			[]int{3},
			false,
		},
		{
			"overlapping matches are all reported",
			args{"AAAA", "AA"},
			[]int{0, 1, 2},
			false,
		},
		{
			"N matches any base",
			args{"GACTC", "GNCTC"},
			[]int{0},
			false,
		},
		{
			"N does not match a gap",
			args{"G-CTC", "GNCTC"},
			nil,
			false,
		},
		{
			"no match",
			args{"ATGC", "GG"},
			nil,
			false,
		},
		{
			"pattern longer than sequence",
			args{"ATG", "ATGC"},
			nil,
			true,
		},
		{
			"empty pattern",
			args{"ATG", ""},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrand(tt.args.seq, DNAMaterial)
			if err != nil {
				t.Fatal(err)
			}
			got, err := s.Locate(tt.args.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Locate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Locate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Strand_IsPalindrome(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want bool
	}{
		{"EcoRI site", "GAATTC", true},
		{"odd length never palindromic", "GAATT", false},
		{"non-palindrome", "GGATGG", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := NewStrand(tt.seq, DNAMaterial)
			if got := s.IsPalindrome(); got != tt.want {
				t.Errorf("IsPalindrome() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Strand_GC(t *testing.T) {
	s, _ := NewStrand("GGCCAATT", DNAMaterial)
	if got := s.GC(); got != 0.5 {
		t.Errorf("GC() = %v, want 0.5", got)
	}
}
