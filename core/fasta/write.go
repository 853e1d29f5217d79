// core/fasta/write.go
package fasta

import (
	"fmt"
	"io"
)

// WriteRecord writes one FASTA record, wrapping the sequence at width
// characters per line (width <= 0 means a single line).
func WriteRecord(w io.Writer, id string, seq []byte, width int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", id); err != nil {
		return err
	}
	if width <= 0 {
		width = len(seq)
	}
	for off := 0; off < len(seq); off += width {
		end := off + width
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := w.Write(seq[off:end]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if len(seq) == 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
