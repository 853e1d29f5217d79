// core/alphabet/alphabet.go
package alphabet

import "fmt"

// Alphabet selects one of the fixed sequence alphabets.
type Alphabet byte

const (
	DNA      Alphabet = iota // 4-letter DNA alphabet        { A,C,G,T }
	DNAN                     // 5-letter DNA + N alphabet    { A,C,G,T,N }
	DNAIUPAC                 // 16-letter DNA IUPAC alphabet { =,A,C,M,G,R,S,V,T,W,Y,H,K,D,B,N }
	Protein                  // 24-letter protein alphabet   { A,C,D,E,F,G,H,I,K,L,M,N,O,P,Q,R,S,T,V,W,Y,B,Z,X }
)

// Bits returns the number of bits needed to store one symbol code.
func (a Alphabet) Bits() uint32 {
	switch a {
	case DNA:
		return 2
	case DNAN, DNAIUPAC:
		return 4
	}
	return 8
}

// Size returns the number of symbols the alphabet defines. Codes are
// dense: every valid code lies in [0, Size).
func (a Alphabet) Size() int { return len(a.chars()) }

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case DNAN:
		return "dna-n"
	case DNAIUPAC:
		return "iupac"
	case Protein:
		return "protein"
	}
	return fmt.Sprintf("alphabet(%d)", byte(a))
}

// BitsPerSymbol is the run-time counterpart of Bits for alphabet values
// not known statically. Unknown values fall back to the widest width.
func BitsPerSymbol(a Alphabet) uint32 { return a.Bits() }

// Parse maps a user spelling to an Alphabet.
func Parse(s string) (Alphabet, error) {
	switch s {
	case "dna":
		return DNA, nil
	case "dna-n", "dnan":
		return DNAN, nil
	case "iupac", "dna-iupac":
		return DNAIUPAC, nil
	case "protein":
		return Protein, nil
	}
	return DNA, fmt.Errorf("unknown alphabet %q (dna | dna-n | iupac | protein)", s)
}
