package fqsplit

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/zwebbs/fqsplit/encoding/fastq"
)

// LineWriter is the destination of one shard. *fastq.Writer implements it.
type LineWriter interface {
	WriteLine(line []byte) error
}

// Distributor copies lines to a fixed set of shards in round-robin order.
// Every line goes to the current shard; once bufferRecords complete
// records (fastq.LinesPerRecord lines each) have gone to it, the next
// shard becomes current, wrapping around after the last one. Lines are
// never inspected, so a trailing partial record simply stays with the
// current shard.
type Distributor struct {
	shards        []LineWriter
	bufferRecords int

	lineIndex   int64 // lines written in total
	recordIndex int   // records written to the current shard since the last rotation
	current     int   // index of the current shard
}

// NewDistributor creates a Distributor that starts at shards[0].
//
// REQUIRES: len(shards) > 0, bufferRecords > 0.
func NewDistributor(shards []LineWriter, bufferRecords int) *Distributor {
	if len(shards) == 0 {
		log.Panicf("fqsplit: no shards")
	}
	if bufferRecords < 1 {
		log.Panicf("fqsplit: bufferRecords must be positive, got %d", bufferRecords)
	}
	return &Distributor{shards: shards, bufferRecords: bufferRecords}
}

// WriteLine writes line to the current shard and advances the rotation
// state. A write error is returned annotated with the 1-based shard
// number; the state is left unchanged in that case.
func (d *Distributor) WriteLine(line []byte) error {
	if err := d.shards[d.current].WriteLine(line); err != nil {
		return errors.Wrapf(err, "write shard %d", d.current+1)
	}
	d.lineIndex++
	if d.lineIndex%fastq.LinesPerRecord == 0 {
		d.recordIndex++
	}
	if d.recordIndex == d.bufferRecords {
		d.current = (d.current + 1) % len(d.shards)
		d.recordIndex = 0
	}
	return nil
}

// Drain copies every remaining line of s. It stops at the end of the
// stream, or at the first read or write error.
func (d *Distributor) Drain(s *fastq.LineScanner) error {
	for s.Scan() {
		if err := d.WriteLine(s.Bytes()); err != nil {
			return err
		}
	}
	return errors.Wrap(s.Err(), "read input")
}

// Lines returns the number of lines written so far.
func (d *Distributor) Lines() int64 { return d.lineIndex }
