package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_readSequence(t *testing.T) {
	// a raw sequence passes through, minus whitespace
	got, err := readSequence("ATGC atgc\nATGC")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ATGCatgcATGC" {
		t.Errorf("readSequence() = %v", got)
	}

	// a path reads the file instead
	dir := t.TempDir()
	seqFile := filepath.Join(dir, "insert.txt")
	if err := os.WriteFile(seqFile, []byte("ATG CAT\nGGT TCC AA\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = readSequence(seqFile)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ATGCATGGTTCCAA" {
		t.Errorf("readSequence() = %v", got)
	}
}

func Test_readDNA(t *testing.T) {
	circular, err := readDNA("atgcatgg", true)
	if err != nil {
		t.Fatal(err)
	}
	if !circular.IsCircular() || circular.Top().String() != "ATGCATGG" {
		t.Errorf("readDNA() = %v, circular %v", circular.Top().String(), circular.IsCircular())
	}

	if _, err := readDNA("not a sequence", false); err == nil {
		t.Error("readDNA() should reject a non-sequence")
	}
}
