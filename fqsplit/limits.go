package fqsplit

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// reservedDescriptors counts the descriptors a split needs besides its
// outputs: stdin, stdout, stderr and the input.
const reservedDescriptors = 4

// openFileLimit returns the soft limit on open descriptors. Tests replace
// it.
var openFileLimit = func() (uint64, error) {
	var l unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &l); err != nil {
		return 0, err
	}
	return l.Cur, nil
}

// MaxSplits returns the largest NSplits this process can hold open at
// once.
func MaxSplits() (int, error) {
	limit, err := openFileLimit()
	if err != nil {
		return 0, errors.Wrap(err, "getrlimit RLIMIT_NOFILE")
	}
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	return int(limit) - reservedDescriptors, nil
}

func checkSplits(nSplits int) error {
	max, err := MaxSplits()
	if err != nil {
		return err
	}
	if nSplits > max {
		return &TooManySplitsError{Requested: nSplits, Max: max}
	}
	return nil
}
