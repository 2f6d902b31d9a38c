package fqsplit

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/sync/multierror"
	"github.com/zwebbs/fqsplit/encoding/fastq"
)

// Mode is the direction a Session was opened in.
type Mode string

const (
	// ModeRead is used for the input.
	ModeRead Mode = "read"
	// ModeWrite is used for the shards.
	ModeWrite Mode = "write"
)

const outputBufferSize = 64 << 10

// createOutput opens path for writing, truncating any existing file. The
// directory must already exist. Tests replace it.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
}

// Session is an open input or output stream together with the path and
// mode it was opened with. A Session must be closed exactly once; later
// Close calls are no-ops.
type Session struct {
	Path string
	Mode Mode

	r      io.Reader
	buf    *bufio.Writer
	w      *fastq.Writer
	close  func(ctx context.Context) error
	closed bool
}

// Reader returns the input stream of a ModeRead session.
func (s *Session) Reader() io.Reader { return s.r }

// Writer returns the FASTQ writer of a ModeWrite session.
func (s *Session) Writer() *fastq.Writer { return s.w }

// Close flushes any buffered output and releases the stream. The first of
// the session's write, flush and close errors is returned. Sessions bound
// to the standard input leave the process descriptor open.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err errors.Once
	if s.w != nil {
		err.Set(s.w.Err())
	}
	if s.buf != nil {
		err.Set(s.buf.Flush())
	}
	if s.close != nil {
		err.Set(s.close(ctx))
	}
	if e := err.Err(); e != nil {
		return errors.E(e, "close", s.Path)
	}
	return nil
}

// OpenInput opens the FASTQ to split. StdinPath binds the session to
// stdin without touching the filesystem. Any other failure is reported as
// an *OpenError.
func OpenInput(ctx context.Context, path string, stdin io.Reader) (*Session, error) {
	if path == StdinPath {
		return &Session{Path: path, Mode: ModeRead, r: stdin}, nil
	}
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, &OpenError{Path: path, Mode: ModeRead, Err: err}
	}
	return &Session{Path: path, Mode: ModeRead, r: f.Reader(ctx), close: f.Close}, nil
}

func openOutput(path string) (*Session, error) {
	f, err := createOutput(path)
	if err != nil {
		return nil, &OpenError{Path: path, Mode: ModeWrite, Err: err}
	}
	buf := bufio.NewWriterSize(f, outputBufferSize)
	return &Session{
		Path:  path,
		Mode:  ModeWrite,
		buf:   buf,
		w:     fastq.NewWriter(buf),
		close: func(context.Context) error { return f.Close() },
	}, nil
}

// Outputs is the fixed, ordered set of shard sessions. Index i holds the
// shard written to paths[i].
type Outputs struct {
	sessions []*Session
}

// OpenOutputs opens every path for writing, in order. If an open fails,
// the sessions opened so far are closed in reverse order and the
// *OpenError is returned. Files already created are left on disk.
func OpenOutputs(ctx context.Context, paths []string) (_ *Outputs, err error) {
	sessions := make([]*Session, len(paths))
	for i, path := range paths {
		log.Printf("Opening File: %s for writing", path)
		s, e := openOutput(path)
		if e != nil {
			log.Printf("Error. could not open file %s", path)
			return nil, e
		}
		sessions[i] = s
		defer func() {
			if err == nil {
				return
			}
			log.Printf("Closing Output File: %s", s.Path)
			if e := s.Close(ctx); e != nil {
				log.Error.Printf("%v", e)
			}
		}()
	}
	return &Outputs{sessions: sessions}, nil
}

// Len returns the number of shards.
func (o *Outputs) Len() int { return len(o.sessions) }

// Writers returns the shard writers in shard order.
func (o *Outputs) Writers() []LineWriter {
	w := make([]LineWriter, len(o.sessions))
	for i, s := range o.sessions {
		w[i] = s.Writer()
	}
	return w
}

// Close closes every shard in order and logs what was written to each.
// It returns all close errors combined.
func (o *Outputs) Close(ctx context.Context) error {
	errs := multierror.NewMultiError(len(o.sessions))
	for i, s := range o.sessions {
		log.Printf("Closing Output File: %s", s.Path)
		st := s.Writer().Stats()
		log.Printf("shard %d: %d lines, %d records, %d bytes, seahash %016x",
			i+1, st.Lines, st.Records, st.Bytes, st.Checksum)
		errs.Add(s.Close(ctx))
	}
	return errs.Err()
}
