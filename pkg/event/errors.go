package event

import (
	"errors"
	"fmt"

	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
)

// ErrorKind classifies a DecodeError.
type ErrorKind int

const (
	// KindMalformed is input that is not well-formed JSON.
	KindMalformed ErrorKind = iota + 1
	// KindInvalidEnvelope is JSON missing the type or data.object members.
	KindInvalidEnvelope
	// KindSchemaMismatch is a payload that does not fit its known type.
	KindSchemaMismatch
	// KindUnknownType is a type this build does not know. Only strict decoding reports it.
	KindUnknownType
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindInvalidEnvelope:
		return "invalid_envelope"
	case KindSchemaMismatch:
		return "schema_mismatch"
	case KindUnknownType:
		return "unknown_type"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DecodeError is returned by Parse and ParseStrict.
type DecodeError struct {
	Kind    ErrorKind
	EventID string
	Type    Type
	Err     error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Type != "":
		return fmt.Sprintf("event: %s: %s: %v", e.Kind, e.Type, e.Err)
	default:
		return fmt.Sprintf("event: %s: %v", e.Kind, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownTypeError is returned by Dispatch for a type with no compiled-in variant.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("event: unknown type %q", e.Type)
}

// SchemaMismatchError is returned by Dispatch when the payload of a known
// type does not decode into its variant.
type SchemaMismatchError struct {
	Type   Type
	Path   string
	Detail string
	Err    error
}

func (e *SchemaMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("event: %s: %s", e.Type, e.Detail)
	}
	return fmt.Sprintf("event: %s: %s: %s", e.Type, e.Path, e.Detail)
}

func (e *SchemaMismatchError) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or 0 when err is nil or not produced by this package.
func KindOf(err error) ErrorKind {
	var (
		de *DecodeError
		ut *UnknownTypeError
		sm *SchemaMismatchError
	)
	switch {
	case errors.As(err, &de):
		return de.Kind
	case errors.As(err, &ut):
		return KindUnknownType
	case errors.As(err, &sm):
		return KindSchemaMismatch
	default:
		return 0
	}
}

func mismatch(t Type, err error) *SchemaMismatchError {
	var (
		se  *codec.SchemaError
		ue  *codec.UnknownObjectError
		syn *codec.SyntaxError
	)
	switch {
	case errors.As(err, &ue):
		return &SchemaMismatchError{Type: t, Path: codec.ObjectKey, Detail: fmt.Sprintf("unknown object %q", ue.Object), Err: err}
	case errors.As(err, &se):
		return &SchemaMismatchError{Type: t, Path: se.Path, Detail: se.Detail, Err: err}
	case errors.As(err, &syn):
		return &SchemaMismatchError{Type: t, Detail: "malformed JSON", Err: err}
	default:
		return &SchemaMismatchError{Type: t, Detail: err.Error(), Err: err}
	}
}
