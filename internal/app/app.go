// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqcodec-core/alphabet"
	"seqcodec-core/fasta"
	"seqcodec-core/packed"
	"seqcodec/internal/cli"
	"seqcodec/internal/codecfile"
	"seqcodec/internal/version"
)

// Exit codes: 0 ok, 1 invalid data, 2 usage, 3 I/O.
const (
	exitOK    = 0
	exitData  = 1
	exitUsage = 2
	exitIO    = 3
)

var errInvalidInput = errors.New("invalid input")

// RunContext parses argv and runs the encode or decode pipeline,
// writing results to stdout and diagnostics to stderr.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqcodec")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return exitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqcodec version %s\n", version.Version)
		return exitOK
	}

	if opts.Decode {
		err = decode(ctx, opts, outw, stderr)
	} else {
		err = encode(ctx, opts, outw, stderr)
	}
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	switch {
	case err == nil:
		return exitOK
	case IsBrokenPipe(err):
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitOK // appshell normalizes cancellation
	case errors.Is(err, errInvalidInput):
		_, _ = fmt.Fprintln(stderr, err)
		return exitData
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return exitIO
	}
}

// Run is the background-context convenience wrapper used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func encode(ctx context.Context, opts cli.Options, stdout io.Writer, stderr io.Writer) error {
	a := opts.Alphabet
	// Code that absorbs out-of-alphabet characters when not in strict
	// mode. DNA has no such symbol, so for DNA bad characters always
	// error.
	fill := alphabet.FromChar(a, alphabet.ToChar(a, alphabet.Invalid))

	var recs []codecfile.Record
	for _, path := range opts.Inputs {
		err := fasta.WalkPath(ctx, path, func(rec fasta.Record) error {
			codes := make([]byte, len(rec.Seq))
			alphabet.FromChars(a, rec.Seq, codes)
			bad := 0
			for i, c := range codes {
				if c != alphabet.Invalid {
					continue
				}
				bad++
				codes[i] = fill
			}
			if bad > 0 {
				if opts.Strict || fill == alphabet.Invalid {
					return fmt.Errorf("%w: %s: %d characters outside the %v alphabet", errInvalidInput, rec.ID, bad, a)
				}
				if !opts.Quiet {
					_, _ = fmt.Fprintf(stderr, "warning: %s: %d invalid characters recoded as %q\n",
						rec.ID, bad, alphabet.ToChar(a, fill))
				}
			}
			recs = append(recs, codecfile.Record{ID: rec.ID, Packed: packed.Pack(a, codes)})
			return nil
		})
		if err != nil {
			return err
		}
	}

	w, err := openOutput(opts.Output, stdout)
	if err != nil {
		return err
	}
	if err := codecfile.Write(w, a, recs); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func decode(ctx context.Context, opts cli.Options, stdout io.Writer, stderr io.Writer) error {
	w, err := openOutput(opts.Output, stdout)
	if err != nil {
		return err
	}
	for _, path := range opts.Inputs {
		rc, err := codecfile.Open(path)
		if err != nil {
			_ = w.Close()
			return err
		}
		a, recs, err := codecfile.Read(rc)
		_ = rc.Close()
		if err != nil {
			_ = w.Close()
			return fmt.Errorf("%w: %v", errInvalidInput, err)
		}
		if a != opts.Alphabet {
			if !opts.Quiet {
				_, _ = fmt.Fprintf(stderr, "warning: %s is %v, not %v; decoding as %v\n", path, a, opts.Alphabet, a)
			}
		}
		for _, rec := range recs {
			select {
			case <-ctx.Done():
				_ = w.Close()
				return ctx.Err()
			default:
			}
			codes := make([]byte, rec.Packed.Len())
			rec.Packed.Unpack(codes)
			txt := make([]byte, len(codes))
			alphabet.ToChars(a, codes, txt)
			if err := fasta.WriteRecord(w, rec.ID, txt, opts.LineWidth); err != nil {
				_ = w.Close()
				return err
			}
		}
	}
	return w.Close()
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// openOutput routes "-" to the injected stdout writer so Run stays
// testable; real paths go through the gzip-aware creator.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return codecfile.Create(path)
}
