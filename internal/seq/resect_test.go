package seq

import "testing"

func Test_FiveResect(t *testing.T) {
	type args struct {
		top string
		n   int
	}
	tests := []struct {
		name       string
		args       args
		wantTop    string
		wantBottom string
	}{
		{
			"chew back four bases",
			args{"CATGGAAA", 4},
			"----GAAA",
			"TTTCCATG",
		},
		{
			"resect the whole top strand",
			args{"CATG", 4},
			"----",
			"CATG",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDNA(tt.args.top)
			if err != nil {
				t.Fatal(err)
			}
			got := FiveResect(d, tt.args.n)
			if got.Top().String() != tt.wantTop || got.Bottom().String() != tt.wantBottom {
				t.Errorf("FiveResect() = %v / %v, want %v / %v",
					got.Top().String(), got.Bottom().String(), tt.wantTop, tt.wantBottom)
			}
		})
	}
}

func Test_ThreeResect(t *testing.T) {
	d, err := NewDNA("TGACCATG")
	if err != nil {
		t.Fatal(err)
	}
	got := ThreeResect(d, 4)
	if got.Top().String() != "TGAC----" || got.Bottom().String() != "CATGGTCA" {
		t.Errorf("ThreeResect() = %v / %v", got.Top().String(), got.Bottom().String())
	}
}

func Test_trimEndGaps(t *testing.T) {
	// both strands gapped at the right end: those columns disappear
	d, err := NewDNAWithBottom("ATGC----", "----GCAT")
	if err != nil {
		t.Fatal(err)
	}
	trimmed := trimEndGaps(d)
	if trimmed.Top().String() != "ATGC" || trimmed.Bottom().String() != "GCAT" {
		t.Errorf("trimEndGaps() = %v / %v", trimmed.Top().String(), trimmed.Bottom().String())
	}

	// a one-sided overhang is kept
	d, err = NewDNAWithBottom("TGAC----", "CATGGTCA")
	if err != nil {
		t.Fatal(err)
	}
	trimmed = trimEndGaps(d)
	if trimmed.Top().String() != "TGAC----" {
		t.Errorf("trimEndGaps() trimmed a real overhang: %v", trimmed.Top().String())
	}
}
