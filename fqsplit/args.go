package fqsplit

import (
	"io"
	"strconv"
)

// minArgs is the minimum number of tokens after the program name.
const minArgs = 3

// Usage is printed for --help and for malformed command lines.
const Usage = `
fqsplit usage:
fqsplit [OPTIONS] OUTPUT_BASENAME INPUT_FASTQ
-----------------------------------------------

arguments:
-n, --n-splits          Number of files to split INPUT_FASTQ into (default 5)
-b, --buffer-recs       Number of records to write before rotating between output files (default 100)
-s, --smk-format        Name output files in the snakemake scatter style (i.e. 1-of-n.)
-o, --outdir            Existing directory in which to place output files (default .)
-h, --help              Print this message and exit
OUTPUT_BASENAME         File prefix for output fastqs (should not contain the .fastq suffix)
INPUT_FASTQ             Fastq file to split among the outputs. (-) reads from stdin
`

// WriteUsage prints Usage to w.
func WriteUsage(w io.Writer) {
	io.WriteString(w, Usage)
}

// ParseArgs builds Opts from a raw command line. args[0] is the program
// name. The last two tokens are always OUTPUT_BASENAME and INPUT_FASTQ;
// options may appear anywhere before them, and only the first occurrence
// of an option counts. A value option with nothing after it in the
// option region keeps its default.
//
// ParseArgs returns ErrHelp if -h or --help appears anywhere, and a
// *UsageError for too few tokens or bad values.
func ParseArgs(args []string) (Opts, error) {
	if hasSwitch("-h", "--help", args) {
		return Opts{}, ErrHelp
	}
	if len(args) < minArgs+1 {
		return Opts{}, usageErrorf("not enough arguments passed to fqsplit")
	}
	var (
		n        = len(args)
		optArgs  = args[:n-2]
		opts     = DefaultOpts
		err      error
		nSplits  = flagValue("-n", "--n-splits", "", optArgs)
		nRecords = flagValue("-b", "--buffer-recs", "", optArgs)
	)
	if nSplits != "" {
		if opts.NSplits, err = parsePositive("--n-splits", nSplits); err != nil {
			return Opts{}, err
		}
	}
	if nRecords != "" {
		if opts.BufferRecords, err = parsePositive("--buffer-recs", nRecords); err != nil {
			return Opts{}, err
		}
	}
	opts.SMKFormat = hasSwitch("-s", "--smk-format", optArgs)
	opts.OutputDir = flagValue("-o", "--outdir", DefaultOpts.OutputDir, optArgs)
	opts.OutputBase = args[n-2]
	opts.Input = args[n-1]
	if err := opts.Validate(); err != nil {
		return Opts{}, err
	}
	return opts, nil
}

// flagValue returns the token following the first occurrence of short or
// long in args, or def if there is none.
func flagValue(short, long, def string, args []string) string {
	for i, arg := range args {
		if (arg == short || arg == long) && i < len(args)-1 {
			return args[i+1]
		}
	}
	return def
}

func hasSwitch(short, long string, args []string) bool {
	for _, arg := range args {
		if arg == short || arg == long {
			return true
		}
	}
	return false
}

func parsePositive(name, val string) (int, error) {
	v, err := strconv.Atoi(val)
	if err != nil || v < 1 {
		return 0, usageErrorf("%s expects a positive integer, got %q", name, val)
	}
	return v, nil
}
