// Package yaml wraps [github.com/goccy/go-yaml] for reading and writing
// mkprefix configuration, and reports errors annotated with the offending
// source lines.
package yaml

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

type Decoder struct {
	d *yaml.Decoder
}

// NewDecoder returns a [Decoder] that rejects fields unknown to the target
// struct.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		d: yaml.NewDecoder(r, yaml.DisallowUnknownField()),
	}
}

// Decode decodes the next document into v. Parse errors are returned as
// [*Error] carrying the token where decoding failed.
func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}
