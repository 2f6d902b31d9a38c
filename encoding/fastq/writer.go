package fastq

import (
	"hash"
	"io"

	"blainsmith.com/go/seahash"
)

var newline = []byte{'\n'}

// A Read is a FASTQ read, comprising an ID, sequence, line 3
// ("unknown"), and a quality string.
type Read struct {
	ID, Seq, Unk, Qual string
}

// Stats summarizes what a Writer has written.
type Stats struct {
	// Lines is the number of complete lines written.
	Lines int64
	// Records is the number of complete records, Lines/LinesPerRecord.
	Records int64
	// Bytes is the number of bytes written.
	Bytes int64
	// Checksum is the seahash of the bytes written.
	Checksum uint64
}

// Writer is a FASTQ file writer. It copies lines to the underlying
// writer and keeps running statistics and a checksum of the content.
// Once a write fails, every later write returns the same error.
type Writer struct {
	w     io.Writer
	h     hash.Hash64
	lines int64
	bytes int64
	err   error
}

// NewWriter constructs a new FASTQ writer
// that writes to the underlying writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, h: seahash.New()}
}

// WriteLine writes line verbatim. The line should carry its own
// terminator; WriteLine counts one line per call regardless.
func (w *Writer) WriteLine(line []byte) error {
	if w.err != nil {
		return w.err
	}
	n, err := w.w.Write(line)
	w.h.Write(line[:n])
	w.bytes += int64(n)
	if err != nil {
		w.err = err
		return err
	}
	w.lines++
	return nil
}

// Write writes the read r in FASTQ format.
// An error is returned if the write failed.
func (w *Writer) Write(r *Read) error {
	w.writeln(r.ID)
	w.writeln(r.Seq)
	w.writeln(r.Unk)
	w.writeln(r.Qual)
	return w.err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	b := make([]byte, 0, len(line)+1)
	b = append(b, line...)
	b = append(b, newline...)
	w.WriteLine(b)
}

// Stats returns the statistics of the content written so far.
func (w *Writer) Stats() Stats {
	return Stats{
		Lines:    w.lines,
		Records:  w.lines / LinesPerRecord,
		Bytes:    w.bytes,
		Checksum: w.h.Sum64(),
	}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}
