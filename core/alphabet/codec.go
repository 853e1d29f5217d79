// core/alphabet/codec.go
package alphabet

/* ----------------------------- scalar codec ----------------------------- */

// ToChar converts one symbol code to its canonical uppercase ASCII
// character. Codes outside [0, Size) decode to the alphabet's unknown
// placeholder, deterministically.
func ToChar(a Alphabet, code byte) byte {
	chars := a.chars()
	if int(code) >= len(chars) {
		return a.unknownChar()
	}
	return chars[code]
}

// FromChar converts one ASCII character to its symbol code. Characters
// outside the alphabet's set (either case) map to Invalid; they never
// alias a valid code.
func FromChar(a Alphabet, c byte) byte { return a.codes()[c] }

/* ---------------------------- bulk conversion ---------------------------- */

// ToCharsN writes the characters for the first n codes of symbols into
// out, position for position. out must hold at least n bytes; no
// terminator is appended.
func ToCharsN(a Alphabet, symbols []byte, n int, out []byte) {
	chars := a.chars()
	unk := a.unknownChar()
	for i := 0; i < n; i++ {
		c := symbols[i]
		if int(c) >= len(chars) {
			out[i] = unk
			continue
		}
		out[i] = chars[c]
	}
}

// ToChars converts all of symbols; equivalent to ToCharsN with
// n = len(symbols).
func ToChars(a Alphabet, symbols, out []byte) { ToCharsN(a, symbols, len(symbols), out) }

// FromChars writes the symbol code for every character of chars into
// out, position for position. out must hold at least len(chars) bytes.
// Invalid characters encode as Invalid.
func FromChars(a Alphabet, chars, out []byte) {
	tab := a.codes()
	for i := 0; i < len(chars); i++ {
		out[i] = tab[chars[i]]
	}
}

// FromCString converts a NUL-terminated character sequence, stopping at
// the first 0 byte (or the end of chars). It returns the number of
// symbols written and matches FromChars on the same logical content.
func FromCString(a Alphabet, chars, out []byte) int {
	tab := a.codes()
	n := 0
	for ; n < len(chars) && chars[n] != 0; n++ {
		out[n] = tab[chars[n]]
	}
	return n
}
