// core/alphabet/tables.go
package alphabet

/* ------------------------- symbol lookup tables ------------------------- */

// Decode tables: one canonical uppercase character per code, listed in
// code order. The orderings are load-bearing: DNA's A,C,G,T order makes
// coded complementation arithmetic (see complement.go), and the IUPAC
// order doubles as a 4-bit base mask (bit0=A bit1=C bit2=G bit3=T).
const (
	dnaChars      = "ACGT"
	dnaNChars     = "ACGTN"
	dnaIUPACChars = "=ACMGRSVTWYHKDBN"
	proteinChars  = "ACDEFGHIKLMNOPQRSTVWYBZX"
)

// Invalid is the code FromChar returns for a character outside the
// alphabet's set. It is distinct from every valid code of every alphabet.
const Invalid = 0xFF

var (
	dnaCode      [256]byte
	dnaNCode     [256]byte
	dnaIUPACCode [256]byte
	proteinCode  [256]byte
)

func init() {
	fill := func(tab *[256]byte, chars string) {
		for i := range tab {
			tab[i] = Invalid
		}
		for code := 0; code < len(chars); code++ {
			c := chars[code]
			tab[c] = byte(code)
			if c >= 'A' && c <= 'Z' {
				tab[c+'a'-'A'] = byte(code) // lowercase accepted on input
			}
		}
	}
	fill(&dnaCode, dnaChars)
	fill(&dnaNCode, dnaNChars)
	fill(&dnaIUPACCode, dnaIUPACChars)
	fill(&proteinCode, proteinChars)
}

func (a Alphabet) chars() string {
	switch a {
	case DNA:
		return dnaChars
	case DNAN:
		return dnaNChars
	case DNAIUPAC:
		return dnaIUPACChars
	case Protein:
		return proteinChars
	}
	return ""
}

func (a Alphabet) codes() *[256]byte {
	switch a {
	case DNA:
		return &dnaCode
	case DNAN:
		return &dnaNCode
	case DNAIUPAC:
		return &dnaIUPACCode
	}
	return &proteinCode
}

// unknownChar is what ToChar yields for a code outside [0, Size):
// 'N' for the DNA alphabets, 'X' for protein. For DNA itself every
// 2-bit code is valid, so the placeholder only surfaces for oversized
// byte inputs.
func (a Alphabet) unknownChar() byte {
	if a == Protein {
		return 'X'
	}
	return 'N'
}
