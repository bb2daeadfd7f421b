package rat

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/askiada/go-rat/pkg/pipeline"
	"github.com/askiada/go-rat/pkg/pipeline/model"
)

// StdinRef is the input reference naming the standard input.
const StdinRef = "-"

// DispatcherOptions are the collaborators of a Dispatcher. Nil fields get the defaults
// of a process reading the real filesystem: OSFilesystem, an empty standard input,
// io.Discard as output and a no-op logger.
type DispatcherOptions struct {
	Options         OptionSet
	FS              Filesystem
	Stdin           io.Reader
	Stdout          io.Writer
	Logger          *zap.Logger
	PipelineOptions []model.PipelineOption
}

// Dispatcher displays a list of inputs, one after the other.
type Dispatcher struct {
	program string
	fs      Filesystem
	stdin   io.Reader
	stdout  io.Writer
	logger  *zap.Logger
	pipe    *pipeline.Pipeline[string]
}

// NewDispatcher creates a dispatcher whose diagnostics are prefixed with program.
func NewDispatcher(program string, opts DispatcherOptions) (*Dispatcher, error) {
	d := &Dispatcher{
		program: program,
		fs:      opts.FS,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		logger:  opts.Logger,
	}
	if d.fs == nil {
		d.fs = OSFilesystem{}
	}
	if d.stdin == nil {
		d.stdin = eofReader{}
	}
	if d.stdout == nil {
		d.stdout = io.Discard
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}

	pipe, err := newTextPipeline(opts.Options, d.write, opts.PipelineOptions...)
	if err != nil {
		return nil, err
	}
	d.pipe = pipe

	return d, nil
}

// Run displays every reference in order. It stops at the first input that cannot be
// displayed: the diagnostic "<program>: <path>: <message>" is written to the output and
// the *InputError is returned. Inputs after it are not looked at.
func (d *Dispatcher) Run(ctx context.Context, refs []string) error {
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "run interrupted")
		}

		err := d.display(ctx, ref)
		if err == nil {
			continue
		}

		var inErr *InputError
		if !errors.As(err, &inErr) {
			return err
		}

		d.logger.Warn("stopping at input", zap.String("path", ref), zap.Stringer("kind", inErr.Kind), zap.Error(inErr.Err))
		_, _ = fmt.Fprintf(d.stdout, "%s: %s\n", d.program, inErr)

		return inErr
	}

	return nil
}

// Close finishes the pipeline options once every run is over.
func (d *Dispatcher) Close() error {
	return d.pipe.Finish()
}

func (d *Dispatcher) display(ctx context.Context, ref string) error {
	if ref == StdinRef {
		return d.drainStdin()
	}

	info, err := d.fs.Lstat(ref)
	if err != nil {
		return &InputError{Path: ref, Kind: PathNotAccessible, Err: osMessage(err)}
	}

	switch mode := info.Mode(); {
	case mode.IsDir():
		return &InputError{Path: ref, Kind: IsADirectory, Err: ErrIsDirectory}
	case mode&fs.ModeSymlink != 0:
		return &InputError{Path: ref, Kind: IsASymlink, Err: ErrIsSymlink}
	}

	text, err := d.readFile(ref)
	if err != nil {
		return err
	}
	d.logger.Debug("displaying input", zap.String("path", ref), zap.Int("bytes", len(text)))

	_, err = d.pipe.Run(ctx, text)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "run interrupted")
		}

		return &InputError{Path: ref, Kind: WriteFailure, Err: errors.Cause(err)}
	}

	return nil
}

// drainStdin reads the standard input to the end and drops what it read.
func (d *Dispatcher) drainStdin() error {
	text, err := readText(d.stdin)
	if err != nil {
		return classifyRead(StdinRef, err)
	}
	d.logger.Debug("discarding standard input", zap.Int("bytes", len(text)))

	return nil
}

func (d *Dispatcher) readFile(path string) (string, error) {
	file, err := d.fs.Open(path)
	if err != nil {
		return "", &InputError{Path: path, Kind: PathNotAccessible, Err: osMessage(err)}
	}
	defer func() {
		err := file.Close()
		if err != nil {
			d.logger.Warn("unable to close input", zap.String("path", path), zap.Error(err))
		}
	}()

	text, err := readText(file)
	if err != nil {
		return "", classifyRead(path, err)
	}

	return text, nil
}

func (d *Dispatcher) write(_ context.Context, text string) error {
	_, err := io.WriteString(d.stdout, text)

	return errors.WithStack(err)
}

// readText reads r to the end and fails on the first byte that is not valid UTF-8.
func readText(r io.Reader) (string, error) {
	content, err := io.ReadAll(transform.NewReader(r, encoding.UTF8Validator))
	if err != nil {
		return "", err
	}

	return string(content), nil
}

func classifyRead(path string, err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return &InputError{Path: path, Kind: DecodeFailure, Err: ErrInvalidText}
	}

	return &InputError{Path: path, Kind: ReadFailure, Err: osMessage(err)}
}

// osMessage keeps the system message of a path error, without the operation and path
// Go puts in front of it.
func osMessage(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
