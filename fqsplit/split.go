package fqsplit

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/zwebbs/fqsplit/encoding/fastq"
)

// Split distributes the records of opts.Input over opts.NSplits files in
// opts.OutputDir. stdin is read when opts.Input is StdinPath.
//
// The input is opened first, then the split count is checked against
// MaxSplits, then every output is opened. Whatever has been opened is
// closed again before Split returns, whether it succeeds or not. The
// returned error can be passed to ExitCode.
func Split(ctx context.Context, opts Opts, stdin io.Reader) (err error) {
	if err = opts.Validate(); err != nil {
		return err
	}
	in, err := OpenInput(ctx, opts.Input, stdin)
	if err != nil {
		return err
	}
	log.Printf("Opened Input File %s", in.Path)
	var e errors.Once
	defer func() {
		e.Set(err)
		e.Set(in.Close(ctx))
		err = e.Err()
	}()

	if err = checkSplits(opts.NSplits); err != nil {
		return err
	}
	out, err := OpenOutputs(ctx, OutputPaths(opts))
	if err != nil {
		return err
	}
	defer func() {
		e.Set(err)
		e.Set(out.Close(ctx))
		err = e.Err()
	}()

	d := NewDistributor(out.Writers(), opts.BufferRecords)
	s := fastq.NewLineScanner(in.Reader())
	err = d.Drain(s)
	log.Printf("Copied %d of %d lines from %s", d.Lines(), s.Lines(), in.Path)
	return err
}

// Main runs the fqsplit command line. args includes the program name.
// The banner, usage text and fatal diagnostics are printed to stdout;
// progress goes to the log. Main returns the process exit status.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	start := time.Now()
	opts, err := ParseArgs(args)
	if err != nil {
		if err != ErrHelp {
			fmt.Fprintf(stdout, "\nERROR: %v\n", err)
		}
		WriteUsage(stdout)
		return ExitCode(err)
	}
	writeBanner(stdout, opts)
	if err := Split(ctx, opts, stdin); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return ExitCode(err)
	}
	log.Printf("Elapsed Time: %v", time.Since(start))
	return ExitSuccess
}
