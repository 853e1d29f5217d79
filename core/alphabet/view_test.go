package alphabet

import "testing"

func TestCharViewAgreement(t *testing.T) {
	codes := Bytes{0, 3, 1, 2, 9}
	v := Chars(DNAN, codes)
	if v.Len() != codes.Len() {
		t.Fatalf("view length %d, want %d", v.Len(), codes.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if want := ToChar(DNAN, codes.At(i)); v.At(i) != want {
			t.Fatalf("view[%d]=%q, want %q", i, v.At(i), want)
		}
	}
	// Restartable: repeated access yields the same values.
	for pass := 0; pass < 2; pass++ {
		if v.At(4) != 'N' {
			t.Fatalf("pass %d: view[4]=%q, want N", pass, v.At(4))
		}
	}
}

func TestSymbolViewAgreement(t *testing.T) {
	chars := Bytes("ACGTRX")
	v := Symbols(DNAIUPAC, chars)
	for i := 0; i < v.Len(); i++ {
		if want := FromChar(DNAIUPAC, chars.At(i)); v.At(i) != want {
			t.Fatalf("view[%d]=%d, want %d", i, v.At(i), want)
		}
	}
	if v.At(5) != Invalid {
		t.Fatalf("X is not IUPAC; view must surface Invalid")
	}
}

func TestViewsCompose(t *testing.T) {
	// Symbol view stacked under a char view is an identity pipeline for
	// valid input.
	chars := Bytes("ACGTN")
	rt := Chars(DNAN, Symbols(DNAN, chars))
	for i := 0; i < rt.Len(); i++ {
		if rt.At(i) != chars.At(i) {
			t.Fatalf("round-trip[%d]=%q, want %q", i, rt.At(i), chars.At(i))
		}
	}
	// Lowercase canonicalizes through the pipeline.
	lc := Chars(DNA, Symbols(DNA, Bytes("acgt")))
	for i, want := range []byte("ACGT") {
		if lc.At(i) != want {
			t.Fatalf("canonicalized[%d]=%q, want %q", i, lc.At(i), want)
		}
	}
}
