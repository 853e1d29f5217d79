// core/alphabet/complement.go
package alphabet

/* ----------------------------- complementation -------------------------- */

var charComplement [256]byte

func init() {
	set := func(a, b byte) { charComplement[a], charComplement[b] = b, a }
	set('A', 'T')
	set('C', 'G')
	set('R', 'Y')
	set('K', 'M')
	set('B', 'V')
	set('D', 'H')
	charComplement['S'] = 'S'
	charComplement['W'] = 'W'
	charComplement['N'] = 'N'
	charComplement['='] = '='
}

// ComplementCode complements a coded base. DNA's A,C,G,T code order
// makes the complement 3-code; DNA_N keeps N (code 4) fixed; the IUPAC
// code of a symbol is its 4-bit base mask (bit0=A bit1=C bit2=G bit3=T),
// so complementing is reversing the nibble. Protein codes and invalid
// codes pass through unchanged.
func ComplementCode(a Alphabet, code byte) byte {
	switch a {
	case DNA:
		if code < 4 {
			return 3 - code
		}
	case DNAN:
		if code < 4 {
			return 3 - code
		}
	case DNAIUPAC:
		if code < 16 {
			return code>>3&1 | code>>1&2 | code<<1&4 | code<<3&8
		}
	}
	return code
}

// RevCompCodes writes the reverse complement of the coded sequence src
// into out. src and out must not alias unless they are the same slice,
// in which case the reversal is done in place.
func RevCompCodes(a Alphabet, src, out []byte) {
	n := len(src)
	for i, j := 0, n-1; i <= j; i, j = i+1, j-1 {
		ci, cj := src[i], src[j]
		out[i], out[j] = ComplementCode(a, cj), ComplementCode(a, ci)
	}
}

// RevComp returns the reverse complement of an ASCII nucleotide
// sequence, IUPAC-aware. Unrecognized characters become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		c := charComplement[b]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
