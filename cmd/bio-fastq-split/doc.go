/*Command bio-fastq-split splits a FASTQ file into N files for parallel
  processing. Records (groups of four lines) are dealt to the outputs in
  round-robin order, --buffer-recs records at a time. Records are not
  parsed or validated.

  Usage: bio-fastq-split [-n N] [-b RECS] [-s] [-o DIR] OUTPUT_BASENAME INPUT_FASTQ

  The outputs are named DIR/1-of-N.OUTPUT_BASENAME.fastq through
  DIR/N-of-N.OUTPUT_BASENAME.fastq. DIR must exist. INPUT_FASTQ "-"
  reads from stdin:

    zcat sample.fastq.gz | bio-fastq-split -n 8 -o shards sample -

  Exit status is 0 on success, 1 for a bad command line or --help, 2 if
  a file cannot be opened, 3 if N exceeds the open file limit, and 4 for
  an I/O error while copying.
*/
package main
