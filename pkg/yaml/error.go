package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// ErrorWrapper attaches the same options to every [*Error] it wraps, so a
// loader can set the source once.
type ErrorWrapper struct {
	Opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{
		Opts: opts,
	}
}

// Wrap applies the wrapper's options to err if it is an [*Error].
// Other errors are returned unmodified.
func (ew *ErrorWrapper) Wrap(err error) error {
	if err == nil {
		return nil
	}

	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		for _, opt := range ew.Opts {
			opt(yamlErr)
		}

		return yamlErr
	}

	return err
}

// Error is a YAML decode or validation error. Either Path or Token locates
// the problem; with Source set, Error() includes the annotated source.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
}

type ErrorOpt func(e *Error)

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e Error) Error() string {
	if e.Err == nil {
		return ""
	}

	switch {
	case e.Token != nil:
		var pp printer.Printer

		return fmt.Sprintf("[%d:%d] %v\n%s",
			e.Token.Position.Line, e.Token.Position.Column, e.Err,
			pp.PrintErrorToken(e.Token, false),
		)

	case e.Path != nil:
		msg := fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
		if len(e.Source) == 0 {
			return msg
		}

		annotated, err := e.Path.AnnotateSource(e.Source, false)
		if err != nil {
			return msg
		}

		return fmt.Sprintf("%s\n%s", msg, annotated)
	}

	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}
