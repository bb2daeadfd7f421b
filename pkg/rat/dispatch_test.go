package rat_test

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-rat/pkg/pipeline/measure"
	"github.com/askiada/go-rat/pkg/pipeline/model"
	"github.com/askiada/go-rat/pkg/rat"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newDispatcher(t *testing.T, opts rat.OptionSet, stdin io.Reader, stdout io.Writer) *rat.Dispatcher {
	t.Helper()

	dsp, err := rat.NewDispatcher("rat", rat.DispatcherOptions{
		Options: opts,
		Stdin:   stdin,
		Stdout:  stdout,
	})
	require.NoError(t, err)

	return dsp
}

func TestRunFilesInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "a\tb\n")
	second := writeFile(t, dir, "second.txt", "c")

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.OptionSet{}, nil, &out)

	require.NoError(t, dsp.Run(context.Background(), []string{first, second, first}))
	require.NoError(t, dsp.Close())
	assert.Equal(t, "a\tb\nca\tb\n", out.String())
}

func TestRunNumbersEachInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "a\n\nb\n")
	second := writeFile(t, dir, "second.txt", "c\n")

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.Resolve(rat.Flags{NumberNonBlank: true, VE: true}), nil, &out)

	require.NoError(t, dsp.Run(context.Background(), []string{first, second}))
	assert.Equal(t, "     1\ta$\n$\n     3\tb$\n     1\tc$\n", out.String())
}

func TestRunNoInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.OptionSet{Number: true}, strings.NewReader("ignored\n"), &out)

	require.NoError(t, dsp.Run(context.Background(), nil))
	assert.Empty(t, out.String())
}

func TestRunStdinIsDiscarded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "file.txt", "x\n")
	stdin := strings.NewReader("from stdin\n")

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.OptionSet{Number: true}, stdin, &out)

	require.NoError(t, dsp.Run(context.Background(), []string{rat.StdinRef, file}))
	assert.Equal(t, "     1\tx\n", out.String())
	assert.Zero(t, stdin.Len())
}

func TestRunStdinDefault(t *testing.T) {
	t.Parallel()

	dsp, err := rat.NewDispatcher("rat", rat.DispatcherOptions{})
	require.NoError(t, err)
	assert.NoError(t, dsp.Run(context.Background(), []string{rat.StdinRef}))
}

func TestRunStopsAtFirstError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "ok\n")
	missing := filepath.Join(dir, "missing.txt")
	subDir := filepath.Join(dir, "somedir")
	require.NoError(t, os.Mkdir(subDir, 0o700))
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(good, link))
	invalid := writeFile(t, dir, "invalid.txt", "ok\xff\n")

	tcs := map[string]struct {
		path    string
		kind    rat.Kind
		message string
	}{
		"missing path": {
			path:    missing,
			kind:    rat.PathNotAccessible,
			message: syscall.ENOENT.Error(),
		},
		"directory": {
			path:    subDir,
			kind:    rat.IsADirectory,
			message: "Is a directory",
		},
		"symlink to a regular file": {
			path:    link,
			kind:    rat.IsASymlink,
			message: "Is a symlink",
		},
		"invalid text": {
			path:    invalid,
			kind:    rat.DecodeFailure,
			message: "stream did not contain valid UTF-8",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			dsp := newDispatcher(t, rat.OptionSet{}, nil, &out)

			err := dsp.Run(context.Background(), []string{good, tc.path, good})

			var inErr *rat.InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tc.kind, inErr.Kind)
			assert.Equal(t, tc.path, inErr.Path)
			assert.Equal(t, "ok\nrat: "+tc.path+": "+tc.message+"\n", out.String())
		})
	}
}

func TestRunMissingPath(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.OptionSet{}, nil, &out)

	err := dsp.Run(context.Background(), []string{"missing.txt"})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "rat: missing.txt: no such file or directory\n", out.String())
}

func TestRunInvalidStdin(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.OptionSet{}, strings.NewReader("\xc3"), &out)

	err := dsp.Run(context.Background(), []string{rat.StdinRef})
	assert.ErrorIs(t, err, rat.ErrInvalidText)
	assert.Equal(t, "rat: -: stream did not contain valid UTF-8\n", out.String())
}

// deniedFS lets Lstat through but refuses to open anything.
type deniedFS struct {
	rat.OSFilesystem
}

func (deniedFS) Open(name string) (io.ReadCloser, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: syscall.EACCES}
}

func TestRunOpenError(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "file.txt", "x\n")

	var out bytes.Buffer
	dsp, err := rat.NewDispatcher("rat", rat.DispatcherOptions{FS: deniedFS{}, Stdout: &out})
	require.NoError(t, err)

	err = dsp.Run(context.Background(), []string{file})

	var inErr *rat.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, rat.PathNotAccessible, inErr.Kind)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "rat: "+file+": permission denied\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestRunWriteError(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "file.txt", "x\n")
	dsp := newDispatcher(t, rat.OptionSet{ShowEnds: true}, nil, failingWriter{})

	err := dsp.Run(context.Background(), []string{file})

	var inErr *rat.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, rat.WriteFailure, inErr.Kind)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "file.txt", "x\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	dsp := newDispatcher(t, rat.OptionSet{}, nil, &out)

	err := dsp.Run(ctx, []string{file})
	assert.ErrorIs(t, err, context.Canceled)

	var inErr *rat.InputError
	assert.False(t, errors.As(err, &inErr))
	assert.Empty(t, out.String())
}

func TestRunMeasure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "a\tb\n")
	second := writeFile(t, dir, "second.txt", "c\n")

	msr := measure.NewDefaultMeasure()
	var out bytes.Buffer
	dsp, err := rat.NewDispatcher("rat", rat.DispatcherOptions{
		Options:         rat.OptionSet{ShowTabs: true, Number: true},
		Stdout:          &out,
		PipelineOptions: []model.PipelineOption{measure.PipelineMeasure(msr)},
	})
	require.NoError(t, err)

	require.NoError(t, dsp.Run(context.Background(), []string{first, rat.StdinRef, second}))
	require.NoError(t, dsp.Close())

	assert.Equal(t, "     1\ta^Ib\n     1\tc\n", out.String())
	assert.Equal(t, []string{"start", "end", rat.StageTabs, rat.StageNumber, "output"}, msr.Names())
	for _, name := range []string{rat.StageTabs, rat.StageNumber, "output"} {
		assert.Equal(t, int64(2), msr.GetMetric(name).GetTotal(), name)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "is a directory", rat.IsADirectory.String())
	assert.Equal(t, "kind(0)", rat.Kind(0).String())
}
