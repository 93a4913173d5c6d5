package codec

import (
	"errors"
	"fmt"
)

// ErrNotObject is wrapped by errors for values that must be JSON objects but are not.
var ErrNotObject = errors.New("codec: value is not a JSON object")

// SyntaxError reports input that is not well-formed JSON.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("codec: malformed JSON: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// SchemaError reports well-formed JSON whose shape does not match the target type.
// Path is the dotted member path, empty for the value itself.
type SchemaError struct {
	Path   string
	Detail string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "codec: " + e.Detail
	}
	return fmt.Sprintf("codec: %s: %s", e.Path, e.Detail)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// UnknownObjectError reports an object-tagged value whose discriminator names
// no variant of the sum.
type UnknownObjectError struct {
	Sum    string
	Object string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("codec: unknown object %q for %s", e.Object, e.Sum)
}

// IsSchemaError reports whether err is, or wraps, a *SchemaError or *UnknownObjectError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	var ue *UnknownObjectError
	return errors.As(err, &se) || errors.As(err, &ue)
}
