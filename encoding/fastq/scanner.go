package fastq

import (
	"bufio"
	"errors"
	"io"
)

// LinesPerRecord is the number of lines in a FASTQ record: ID, sequence,
// line 3 ("unknown"), and quality.
const LinesPerRecord = 4

const scannerBufferSize = 64 << 10

var errEOF = errors.New("eof")

// LineScanner reads raw FASTQ data one line at a time. Each line is
// returned verbatim, including its terminator, so that it can be copied
// to another stream byte for byte. There is no limit on line length:
// lines longer than the internal buffer are assembled from successive
// reads. The last line of the stream need not end in a newline.
//
// LineScanner performs no validation; records are opaque groups of
// LinesPerRecord lines. LineScanners are not threadsafe.
type LineScanner struct {
	r     *bufio.Reader
	line  []byte
	lines int64
	err   error
}

// NewLineScanner constructs a new LineScanner that reads from r.
func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{r: bufio.NewReaderSize(r, scannerBufferSize)}
}

// Scan reads the next line, which is then available through Bytes. Scan
// returns a boolean indicating whether a line was read. Once Scan returns
// false, it never returns true again. Upon completion, the user should
// check the Err method to determine whether scanning stopped because of
// an error or because the end of the stream was reached.
func (s *LineScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.line = s.line[:0]
	for {
		frag, err := s.r.ReadSlice('\n')
		s.line = append(s.line, frag...)
		if err == nil {
			break
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF {
			s.err = errEOF
			if len(s.line) > 0 {
				// Unterminated last line.
				break
			}
			return false
		}
		s.err = err
		return false
	}
	s.lines++
	return true
}

// Bytes returns the line read by the last call to Scan, including its
// terminator. The slice is only valid until the next call to Scan.
func (s *LineScanner) Bytes() []byte {
	return s.line
}

// Lines returns the number of lines read so far.
func (s *LineScanner) Lines() int64 {
	return s.lines
}

// Err returns the scanning error, if any.
func (s *LineScanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}
