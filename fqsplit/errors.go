package fqsplit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Process exit statuses.
const (
	ExitSuccess = 0
	// ExitParseError is returned for bad command lines and for --help.
	ExitParseError = 1
	// ExitOpenError is returned when the input or an output cannot be opened.
	ExitOpenError = 2
	// ExitTooManySplits is returned when --n-splits exceeds MaxSplits.
	ExitTooManySplits = 3
	// ExitIOError is returned when reading, writing or closing fails
	// after all files have been opened.
	ExitIOError = 4
)

// ErrHelp is returned by ParseArgs when -h or --help is given.
var ErrHelp = errors.New("help requested")

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// OpenError reports a file that could not be opened.
type OpenError struct {
	Path string
	Mode Mode
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open file connection to %s for %s: %v", e.Path, e.Mode, e.Err)
}

// TooManySplitsError reports a split count above the descriptor budget.
type TooManySplitsError struct {
	Requested int
	Max       int
}

func (e *TooManySplitsError) Error() string {
	return fmt.Sprintf("too many files requested. --n-splits should be less than or equal to %d. "+
		"Number of splits requested by the user: %d", e.Max, e.Requested)
}

// ExitCode maps an error returned by ParseArgs or Split to the process
// exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cause := errors.Cause(err)
	if cause == ErrHelp {
		return ExitParseError
	}
	switch cause.(type) {
	case *UsageError:
		return ExitParseError
	case *OpenError:
		return ExitOpenError
	case *TooManySplitsError:
		return ExitTooManySplits
	}
	return ExitIOError
}
