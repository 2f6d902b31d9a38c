package fqsplit

import (
	"fmt"
	"io"
	"strings"
)

const (
	// StdinPath as the input path makes Split read the standard input.
	StdinPath = "-"
	// OutputSuffix ends every output path.
	OutputSuffix = ".fastq"
)

// Opts configures a split. It is filled once by ParseArgs and is not
// modified afterwards.
type Opts struct {
	// NSplits is the number of output shards.
	NSplits int
	// BufferRecords is the number of complete records written to a shard
	// before moving on to the next one.
	BufferRecords int
	// SMKFormat requests snakemake scatter-style output names. See
	// OutputPath.
	SMKFormat bool
	// OutputDir is the directory that receives the shards. It must exist.
	OutputDir string
	// OutputBase is the token placed in every output filename.
	OutputBase string
	// Input is the FASTQ to split, or StdinPath.
	Input string
}

// DefaultOpts holds the values used for options missing from the command
// line.
var DefaultOpts = Opts{
	NSplits:       5,   // -n, --n-splits
	BufferRecords: 100, // -b, --buffer-recs
	SMKFormat:     false,
	OutputDir:     ".", // -o, --outdir
}

// Validate checks the invariants ParseArgs guarantees. It is useful for
// Opts built by hand.
func (o Opts) Validate() error {
	if o.NSplits < 1 {
		return usageErrorf("--n-splits must be a positive integer, got %d", o.NSplits)
	}
	if o.BufferRecords < 1 {
		return usageErrorf("--buffer-recs must be a positive integer, got %d", o.BufferRecords)
	}
	if o.OutputDir == "" {
		return usageErrorf("--outdir must not be empty")
	}
	if o.OutputBase == "" {
		return usageErrorf("OUTPUT_BASENAME must not be empty")
	}
	if strings.ContainsRune(o.OutputBase, '/') {
		return usageErrorf("OUTPUT_BASENAME %q must not contain a path separator", o.OutputBase)
	}
	if strings.HasSuffix(o.OutputBase, OutputSuffix) {
		return usageErrorf("OUTPUT_BASENAME %q must not end in %s", o.OutputBase, OutputSuffix)
	}
	if o.Input == "" {
		return usageErrorf("INPUT_FASTQ must not be empty")
	}
	return nil
}

func writeBanner(w io.Writer, o Opts) {
	fmt.Fprintf(w, `
  Welcome to fqsplit, the commandline utility for
  splitting FASTQ files for parallel processing.
---------------------------------------------------
User arguments:

 . Number Splits: %d
 . Number of Recs in round-robin file buffer: %d
 . Use Snakemake Scatter Format?: %t
 . Output Directory for Scattered Files: %s
 . Output File Basename for Scattered Files: %s
 . Input FASTQ File ( - for stdin): %s

`, o.NSplits, o.BufferRecords, o.SMKFormat, o.OutputDir, o.OutputBase, o.Input)
}
