package rat

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIsDirectory = errors.New("Is a directory") //nolint:stylecheck // displayed as is
	ErrIsSymlink   = errors.New("Is a symlink")   //nolint:stylecheck // displayed as is
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
)

// Kind classifies why an input could not be displayed.
type Kind int

const (
	PathNotAccessible Kind = iota + 1
	IsADirectory
	IsASymlink
	DecodeFailure
	ReadFailure
	WriteFailure
)

func (k Kind) String() string {
	switch k {
	case PathNotAccessible:
		return "path not accessible"
	case IsADirectory:
		return "is a directory"
	case IsASymlink:
		return "is a symlink"
	case DecodeFailure:
		return "decode failure"
	case ReadFailure:
		return "read failure"
	case WriteFailure:
		return "write failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// InputError is the error that stopped a run, reported as "<path>: <message>".
type InputError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *InputError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause see through an InputError.
func (e *InputError) Cause() error {
	return e.Err
}
