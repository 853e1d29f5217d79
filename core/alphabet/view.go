// core/alphabet/view.go
package alphabet

/* ----------------------------- lazy views ------------------------------- */

// Seq is any positionally accessible byte sequence. Views wrap a Seq
// without owning it: the view is valid only while the underlying
// sequence is.
type Seq interface {
	Len() int
	At(i int) byte
}

// Bytes adapts a plain byte slice to Seq.
type Bytes []byte

func (b Bytes) Len() int      { return len(b) }
func (b Bytes) At(i int) byte { return b[i] }

// CharView presents a symbol-code sequence as its ASCII characters,
// converting on each access. Nothing is cached: At is a pure lookup, so
// a view can be traversed repeatedly and shared across goroutines as
// freely as its underlying sequence.
type CharView struct {
	a   Alphabet
	src Seq
}

// Chars wraps src's symbol codes in a lazily decoding character view.
func Chars(a Alphabet, src Seq) CharView { return CharView{a: a, src: src} }

func (v CharView) Len() int      { return v.src.Len() }
func (v CharView) At(i int) byte { return ToChar(v.a, v.src.At(i)) }

// SymbolView presents an ASCII character sequence as its symbol codes,
// converting on each access. Same purity and sharing rules as CharView.
type SymbolView struct {
	a   Alphabet
	src Seq
}

// Symbols wraps src's characters in a lazily encoding symbol view.
// Views implement Seq, so Chars(a, Symbols(a, s)) is a valid round-trip
// pipeline; whether two stacked alphabets make sense is the caller's
// call.
func Symbols(a Alphabet, src Seq) SymbolView { return SymbolView{a: a, src: src} }

func (v SymbolView) Len() int      { return v.src.Len() }
func (v SymbolView) At(i int) byte { return FromChar(v.a, v.src.At(i)) }
