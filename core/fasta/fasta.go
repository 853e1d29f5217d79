// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// Walk parses FASTA from r and calls emit once per record, in file
// order. It is cancelable: ctx is checked between lines, so very large
// inputs stop promptly. Returning a non-nil error from emit stops the
// walk and propagates the error.
func Walk(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" || len(seq) > 0 {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// WalkPath opens path (stdin/gzip aware) and walks its records.
func WalkPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := OpenPath(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Walk(ctx, rc, emit)
}

// ReadAll collects every record of r. Convenience for small inputs and
// tests; streaming callers should use Walk.
func ReadAll(r io.Reader) ([]Record, error) {
	var recs []Record
	err := Walk(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	return recs, err
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
