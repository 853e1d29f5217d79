// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"seqcodec-core/alphabet"
	"seqcodec/internal/cliutil"
	"seqcodec/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Alphabet alphabet.Alphabet
	Decode   bool

	Inputs []string // FASTA or container files; "-" = stdin
	Output string   // "-" = stdout; .gz enables compression on encode

	LineWidth int  // FASTA wrap width on decode
	Strict    bool // fail on invalid characters instead of recoding

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pack biological sequences into fixed-width symbol codes

Version: %s

Usage:
  %s --alphabet dna [flags] <input.fasta ...>        encode
  %s --alphabet dna --decode [flags] <input.sqc ...>  decode

Flags:
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var alpha string
	var help bool

	fs.StringVar(&alpha, "alphabet", "", "alphabet: dna | dna-n | iupac | protein [*]")
	fs.StringVar(&alpha, "a", "", "alias of --alphabet")
	fs.BoolVar(&opt.Decode, "decode", false, "decode a packed container back to FASTA [false]")
	fs.BoolVar(&opt.Decode, "d", false, "alias of --decode")

	fs.StringVar(&opt.Output, "output", "-", "output path ('-' = stdout; .gz compresses) [-]")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	fs.IntVar(&opt.LineWidth, "line-width", 60, "FASTA line width on decode (0 = no wrap) [60]")
	fs.BoolVar(&opt.Strict, "strict", false, "error on characters outside the alphabet [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = append(opt.Inputs, exp...)

	// Validation
	if alpha == "" {
		return opt, errors.New("--alphabet is required")
	}
	if opt.Alphabet, err = alphabet.Parse(alpha); err != nil {
		return opt, err
	}
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one input file is required ('-' for stdin)")
	}
	if opt.LineWidth < 0 {
		return opt, errors.New("--line-width must be >= 0")
	}
	return opt, nil
}
