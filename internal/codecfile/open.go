// internal/codecfile/open.go
package codecfile

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Create opens the destination for a container: "-" means stdout, and a
// .gz suffix turns on gzip compression.
func Create(path string) (io.WriteCloser, error) {
	var (
		w   io.WriteCloser
		err error
	)
	if path == "-" {
		w = nopWriteCloser{os.Stdout}
	} else if w, err = os.Create(path); err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		return &gzWriteCloser{gz: gzip.NewWriter(w), under: w}, nil
	}
	return w, nil
}

// Open opens a container for reading: "-" means stdin, gzip detected by
// magic number or .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzReadCloser{gr: gr, under: fh}, nil
	}
	return fh, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type gzWriteCloser struct {
	gz    *gzip.Writer
	under io.WriteCloser
}

func (g *gzWriteCloser) Write(p []byte) (int, error) { return g.gz.Write(p) }

func (g *gzWriteCloser) Close() error {
	err := g.gz.Close()
	if cerr := g.under.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

type gzReadCloser struct {
	gr    *gzip.Reader
	under io.Closer
}

func (g *gzReadCloser) Read(p []byte) (int, error) { return g.gr.Read(p) }

func (g *gzReadCloser) Close() error {
	err := g.gr.Close()
	if cerr := g.under.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
