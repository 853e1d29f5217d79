// core/packed/packed.go
package packed

import (
	"seqcodec-core/alphabet"
)

// Packed is a symbol-code sequence stored at the alphabet's fixed bit
// width (2, 4 or 8 bits per code), first symbol in the high bits of
// each byte. It implements alphabet.Seq, so it composes with the lazy
// conversion views.
type Packed struct {
	Alpha alphabet.Alphabet
	N     int    // symbol count
	Data  []byte // ceil(N*bits/8) bytes
}

// PayloadLen returns the byte length of a packed payload holding n
// symbols of alphabet a.
func PayloadLen(a alphabet.Alphabet, n int) int {
	bits := int(a.Bits())
	return (n*bits + 7) / 8
}

// Pack stores the given symbol codes at a's bit width. Codes wider than
// the alphabet's width are masked down, so every stored code is
// representable (not necessarily valid; the codec's placeholder policy
// covers the gap codes on decode).
func Pack(a alphabet.Alphabet, codes []byte) Packed {
	bits := uint(a.Bits())
	mask := byte(1<<bits - 1)
	data := make([]byte, PayloadLen(a, len(codes)))
	for i, c := range codes {
		off := uint(i) * bits
		shift := 8 - bits - off%8
		data[off/8] |= (c & mask) << shift
	}
	return Packed{Alpha: a, N: len(codes), Data: data}
}

func (p Packed) Len() int { return p.N }

// At returns the i-th symbol code.
func (p Packed) At(i int) byte {
	bits := uint(p.Alpha.Bits())
	off := uint(i) * bits
	shift := 8 - bits - off%8
	return p.Data[off/8] >> shift & byte(1<<bits-1)
}

// Unpack writes all symbol codes into out, which must hold at least
// Len() bytes.
func (p Packed) Unpack(out []byte) {
	for i := 0; i < p.N; i++ {
		out[i] = p.At(i)
	}
}
