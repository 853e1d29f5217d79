package alphabet

import "testing"

var all = []Alphabet{DNA, DNAN, DNAIUPAC, Protein}

func TestTraits_Snapshot(t *testing.T) {
	want := map[Alphabet]struct {
		bits uint32
		size int
	}{
		DNA:      {2, 4},
		DNAN:     {4, 5},
		DNAIUPAC: {4, 16},
		Protein:  {8, 24},
	}
	for a, w := range want {
		if a.Bits() != w.bits || a.Size() != w.size {
			t.Fatalf("%v: bits=%d size=%d, want %d/%d", a, a.Bits(), a.Size(), w.bits, w.size)
		}
		if BitsPerSymbol(a) != a.Bits() {
			t.Fatalf("%v: BitsPerSymbol disagrees with Bits", a)
		}
		if w.size > 1<<w.bits {
			t.Fatalf("%v: %d symbols do not fit in %d bits", a, w.size, w.bits)
		}
	}
}

func TestOrdering_Snapshot(t *testing.T) {
	// Code orderings are a contract (complementation relies on them).
	for i, c := range []byte("ACGT") {
		if ToChar(DNA, byte(i)) != c {
			t.Fatalf("DNA code %d = %q, want %q", i, ToChar(DNA, byte(i)), c)
		}
	}
	for i, c := range []byte("ACGTN") {
		if ToChar(DNAN, byte(i)) != c {
			t.Fatalf("DNA_N code %d = %q, want %q", i, ToChar(DNAN, byte(i)), c)
		}
	}
	for i, c := range []byte("=ACMGRSVTWYHKDBN") {
		if ToChar(DNAIUPAC, byte(i)) != c {
			t.Fatalf("IUPAC code %d = %q, want %q", i, ToChar(DNAIUPAC, byte(i)), c)
		}
	}
	for i, c := range []byte("ACDEFGHIKLMNOPQRSTVWYBZX") {
		if ToChar(Protein, byte(i)) != c {
			t.Fatalf("protein code %d = %q, want %q", i, ToChar(Protein, byte(i)), c)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, a := range all {
		for code := 0; code < a.Size(); code++ {
			c := ToChar(a, byte(code))
			if got := FromChar(a, c); got != byte(code) {
				t.Fatalf("%v: FromChar(ToChar(%d)) = %d", a, code, got)
			}
		}
		for code := 0; code < a.Size(); code++ {
			c := ToChar(a, byte(code))
			lc := c
			if c >= 'A' && c <= 'Z' {
				lc = c + 'a' - 'A'
			}
			if got := ToChar(a, FromChar(a, lc)); got != c {
				t.Fatalf("%v: lowercase %q did not canonicalize to %q (got %q)", a, lc, c, got)
			}
		}
	}
}

func TestScalarScenarios(t *testing.T) {
	if FromChar(DNAIUPAC, '=') != 0 || ToChar(DNAIUPAC, 15) != 'N' {
		t.Fatalf("IUPAC boundary codes wrong")
	}
	if FromChar(DNAIUPAC, 'R') != 5 {
		t.Fatalf("IUPAC R = %d, want 5", FromChar(DNAIUPAC, 'R'))
	}
	if FromChar(Protein, 'X') != 23 || ToChar(Protein, 23) != 'X' {
		t.Fatalf("protein X must be the last code (23)")
	}
}

func TestInvalidInputPolicy(t *testing.T) {
	// Out-of-set characters encode to the Invalid sentinel, never a
	// valid code.
	for _, c := range []byte{'N', 'Z', '*', ' ', 0} {
		if got := FromChar(DNA, c); got != Invalid {
			t.Fatalf("DNA FromChar(%q) = %d, want Invalid", c, got)
		}
	}
	if FromChar(DNAN, 'R') != Invalid || FromChar(Protein, '*') != Invalid {
		t.Fatalf("out-of-set characters must encode to Invalid")
	}
	// Out-of-range codes decode to the fixed placeholder, repeatably.
	for code := 5; code <= 15; code++ {
		if ToChar(DNAN, byte(code)) != 'N' {
			t.Fatalf("DNA_N code %d must decode to the N placeholder", code)
		}
	}
	for _, code := range []byte{24, 100, 255} {
		if ToChar(Protein, code) != 'X' {
			t.Fatalf("protein code %d must decode to the X placeholder", code)
		}
	}
	if ToChar(DNAN, 7) != ToChar(DNAN, 7) {
		t.Fatalf("placeholder decode must be deterministic")
	}
}

func TestParse(t *testing.T) {
	for s, want := range map[string]Alphabet{
		"dna": DNA, "dna-n": DNAN, "dnan": DNAN,
		"iupac": DNAIUPAC, "dna-iupac": DNAIUPAC, "protein": Protein,
	} {
		got, err := Parse(s)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := Parse("rna"); err == nil {
		t.Fatalf("expected error for unknown alphabet")
	}
}
