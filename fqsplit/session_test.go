package fqsplit

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
)

// fault makes writes to or closes of a tracked output fail.
type fault struct {
	writeErr, closeErr error
}

type trackedFile struct {
	io.WriteCloser
	fault
	path   string
	closed *[]string
}

func (f *trackedFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.WriteCloser.Write(p)
}

func (f *trackedFile) Close() error {
	*f.closed = append(*f.closed, f.path)
	err := f.WriteCloser.Close()
	if f.closeErr != nil {
		return f.closeErr
	}
	return err
}

// trackOutputs records the path of every output file as it is closed,
// until the returned function is called.
func trackOutputs(closed *[]string) func() {
	return faultOutputs(closed, nil)
}

// faultOutputs is trackOutputs, with the faults for each path applied to
// its file.
func faultOutputs(closed *[]string, faults map[string]fault) func() {
	saved := createOutput
	createOutput = func(path string) (io.WriteCloser, error) {
		f, err := saved(path)
		if err != nil {
			return nil, err
		}
		return &trackedFile{WriteCloser: f, fault: faults[path], path: path, closed: closed}, nil
	}
	return func() { createOutput = saved }
}

func TestOpenInputStdin(t *testing.T) {
	ctx := context.Background()
	s, err := OpenInput(ctx, StdinPath, strings.NewReader("@r\nA\n+\nI\n"))
	assert.NoError(t, err)
	expect.EQ(t, s.Path, "-")
	expect.EQ(t, s.Mode, ModeRead)
	data, err := ioutil.ReadAll(s.Reader())
	assert.NoError(t, err)
	expect.EQ(t, string(data), "@r\nA\n+\nI\n")
	assert.NoError(t, s.Close(ctx))
	assert.NoError(t, s.Close(ctx))
}

func TestOpenInputFile(t *testing.T) {
	ctx := context.Background()
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(dir, "in.fastq")
	assert.NoError(t, ioutil.WriteFile(path, []byte("@r\nA\n+\nI\n"), 0600))
	s, err := OpenInput(ctx, path, nil)
	assert.NoError(t, err)
	data, err := ioutil.ReadAll(s.Reader())
	assert.NoError(t, err)
	expect.EQ(t, string(data), "@r\nA\n+\nI\n")
	assert.NoError(t, s.Close(ctx))
	assert.NoError(t, s.Close(ctx))

	missing := filepath.Join(dir, "missing.fastq")
	_, err = OpenInput(ctx, missing, nil)
	oe, ok := errors.Cause(err).(*OpenError)
	assert.True(t, ok)
	expect.EQ(t, oe.Path, missing)
	expect.EQ(t, oe.Mode, ModeRead)
	expect.EQ(t, ExitCode(err), ExitOpenError)
	assert.HasSubstr(t, err.Error(), "could not open file connection to "+missing)
}

func TestOpenOutputs(t *testing.T) {
	ctx := context.Background()
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	var closed []string
	defer trackOutputs(&closed)()

	paths := OutputPaths(Opts{NSplits: 2, OutputDir: dir, OutputBase: "s"})
	out, err := OpenOutputs(ctx, paths)
	assert.NoError(t, err)
	expect.EQ(t, out.Len(), 2)
	w := out.Writers()
	assert.NoError(t, w[0].WriteLine([]byte("a\n")))
	assert.NoError(t, w[1].WriteLine([]byte("b\n")))
	assert.NoError(t, w[1].WriteLine([]byte("c\n")))
	expect.EQ(t, out.sessions[1].Mode, ModeWrite)
	expect.EQ(t, out.sessions[1].Writer().Stats().Lines, int64(2))

	assert.NoError(t, out.Close(ctx))
	expect.EQ(t, closed, paths)
	// Closing again must not close the files twice.
	assert.NoError(t, out.Close(ctx))
	expect.EQ(t, closed, paths)

	for i, want := range []string{"a\n", "b\nc\n"} {
		data, err := ioutil.ReadFile(paths[i])
		assert.NoError(t, err)
		expect.EQ(t, string(data), want)
	}
}

func TestOpenOutputsUnwind(t *testing.T) {
	ctx := context.Background()
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	var closed []string
	defer trackOutputs(&closed)()

	paths := OutputPaths(Opts{NSplits: 5, OutputDir: dir, OutputBase: "s"})
	// A directory in place of the third shard makes its open fail.
	assert.NoError(t, os.Mkdir(paths[2], 0700))

	out, err := OpenOutputs(ctx, paths)
	expect.True(t, out == nil)
	oe, ok := errors.Cause(err).(*OpenError)
	assert.True(t, ok)
	expect.EQ(t, oe.Path, paths[2])
	expect.EQ(t, oe.Mode, ModeWrite)
	expect.EQ(t, ExitCode(err), ExitOpenError)

	// Opened shards are closed in reverse order and left on disk.
	expect.EQ(t, closed, []string{paths[1], paths[0]})
	for _, path := range paths[:2] {
		_, err := os.Stat(path)
		expect.NoError(t, err)
	}
	for _, path := range paths[3:] {
		_, err := os.Stat(path)
		expect.True(t, os.IsNotExist(err))
	}
}

func TestSessionCloseError(t *testing.T) {
	ctx := context.Background()
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	paths := OutputPaths(Opts{NSplits: 3, OutputDir: dir, OutputBase: "s"})
	errDiskFull := errors.New("disk full")
	errCloseFailed := errors.New("close failed")
	var closed []string
	defer faultOutputs(&closed, map[string]fault{
		paths[0]: {writeErr: errDiskFull, closeErr: errCloseFailed},
		paths[2]: {closeErr: errCloseFailed},
	})()

	out, err := OpenOutputs(ctx, paths)
	assert.NoError(t, err)
	for _, w := range out.Writers() {
		// Buffered, so nothing fails yet.
		assert.NoError(t, w.WriteLine([]byte("@r\n")))
	}

	// The flush error of the first shard wins over its close error.
	err = out.sessions[0].Close(ctx)
	assert.HasSubstr(t, err.Error(), "disk full")
	assert.HasSubstr(t, err.Error(), paths[0])
	expect.False(t, strings.Contains(err.Error(), "close failed"))

	err = out.Close(ctx)
	assert.HasSubstr(t, err.Error(), "close failed")
	assert.HasSubstr(t, err.Error(), paths[2])
	expect.EQ(t, ExitCode(err), ExitIOError)
	expect.EQ(t, closed, paths)

	data, err := ioutil.ReadFile(paths[1])
	assert.NoError(t, err)
	expect.EQ(t, string(data), "@r\n")
}
