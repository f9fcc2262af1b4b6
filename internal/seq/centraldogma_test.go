package seq

import "testing"

func Test_Transcribe(t *testing.T) {
	d, err := NewDNA("ATGGCTTAA")
	if err != nil {
		t.Fatal(err)
	}
	rna, err := Transcribe(d)
	if err != nil {
		t.Fatal(err)
	}
	if rna.String() != "AUGGCUUAA" || rna.Material() != RNAMaterial {
		t.Errorf("Transcribe() = %v (%v)", rna.String(), rna.Material())
	}

	gapped, err := NewDNAWithBottom("AT--GC", "GC--AT")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Transcribe(gapped); err == nil {
		t.Error("Transcribe() should reject gapped DNA")
	}
}

func Test_ReverseTranscribe(t *testing.T) {
	rna, err := NewStrand("AUGGCUUAA", RNAMaterial)
	if err != nil {
		t.Fatal(err)
	}
	d, err := ReverseTranscribe(rna)
	if err != nil {
		t.Fatal(err)
	}
	if d.Top().String() != "ATGGCTTAA" {
		t.Errorf("ReverseTranscribe() = %v", d.Top().String())
	}
	if !d.IsDoubleStranded() {
		t.Error("ReverseTranscribe() should produce double-stranded DNA")
	}
}

func Test_Translate(t *testing.T) {
	type args struct {
		rna string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"stop codon ends translation",
			args{"AUGGCUUAAGGG"},
			"MA",
			false,
		},
		{
			"no stop codon reads to the end",
			args{"AUGGCUGGA"},
			"MAG",
			false,
		},
		{
			"trailing partial codon is dropped",
			args{"AUGGC"},
			"M",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rna, err := NewStrand(tt.args.rna, RNAMaterial)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Translate(rna)
			if (err != nil) != tt.wantErr {
				t.Errorf("Translate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got.String() != tt.want {
				t.Errorf("Translate() = %v, want %v", got.String(), tt.want)
			}
		})
	}
}

func Test_CodingSequence(t *testing.T) {
	type args struct {
		rna string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"start through stop inclusive",
			args{"GGGAUGGCUUAAGGG"},
			"AUGGCUUAA",
			false,
		},
		{
			"no start codon",
			args{"GGGCCCGGG"},
			"",
			true,
		},
		{
			"no in-frame stop codon",
			args{"AUGGCUGGA"},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rna, err := NewStrand(tt.args.rna, RNAMaterial)
			if err != nil {
				t.Fatal(err)
			}
			got, err := CodingSequence(rna)
			if (err != nil) != tt.wantErr {
				t.Errorf("CodingSequence() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("CodingSequence() = %v, want %v", got.String(), tt.want)
			}
		})
	}
}
