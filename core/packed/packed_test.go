package packed

import (
	"bytes"
	"testing"

	"seqcodec-core/alphabet"
)

func TestPackRoundTrip(t *testing.T) {
	inputs := map[alphabet.Alphabet]string{
		alphabet.DNA:      "ACGTTGCAACG",
		alphabet.DNAN:     "ACGTNNACGTN",
		alphabet.DNAIUPAC: "=ACMGRSVTWYHKDBN",
		alphabet.Protein:  "ACDEFGHIKLMNOPQRSTVWYBZX",
	}
	for a, s := range inputs {
		codes := make([]byte, len(s))
		alphabet.FromChars(a, []byte(s), codes)
		p := Pack(a, codes)
		if p.Len() != len(codes) {
			t.Fatalf("%v: Len=%d, want %d", a, p.Len(), len(codes))
		}
		if want := PayloadLen(a, len(codes)); len(p.Data) != want {
			t.Fatalf("%v: payload %d bytes, want %d", a, len(p.Data), want)
		}
		out := make([]byte, p.Len())
		p.Unpack(out)
		if !bytes.Equal(out, codes) {
			t.Fatalf("%v: unpack = %v, want %v", a, out, codes)
		}
		for i := range codes {
			if p.At(i) != codes[i] {
				t.Fatalf("%v: At(%d)=%d, want %d", a, i, p.At(i), codes[i])
			}
		}
	}
}

func TestPackedDensity(t *testing.T) {
	// 8 DNA symbols fit in 2 bytes, 8 DNA_N symbols in 4.
	codes := []byte{0, 1, 2, 3, 3, 2, 1, 0}
	if n := len(Pack(alphabet.DNA, codes).Data); n != 2 {
		t.Fatalf("DNA payload = %d bytes, want 2", n)
	}
	if n := len(Pack(alphabet.DNAN, codes).Data); n != 4 {
		t.Fatalf("DNA_N payload = %d bytes, want 4", n)
	}
	if n := len(Pack(alphabet.Protein, codes).Data); n != 8 {
		t.Fatalf("protein payload = %d bytes, want 8", n)
	}
}

func TestPackMasksWideCodes(t *testing.T) {
	// An Invalid (0xFF) code is masked into the alphabet's width so
	// packed storage never aliases adjacent symbols.
	p := Pack(alphabet.DNA, []byte{alphabet.Invalid, 0, 0, 0})
	if p.At(0) != 3 || p.At(1) != 0 {
		t.Fatalf("masking broke: At(0)=%d At(1)=%d", p.At(0), p.At(1))
	}
}

func TestPackedAsSeqView(t *testing.T) {
	codes := make([]byte, 4)
	alphabet.FromChars(alphabet.DNA, []byte("ACGT"), codes)
	v := alphabet.Chars(alphabet.DNA, Pack(alphabet.DNA, codes))
	for i, want := range []byte("ACGT") {
		if v.At(i) != want {
			t.Fatalf("view over packed: [%d]=%q, want %q", i, v.At(i), want)
		}
	}
}
