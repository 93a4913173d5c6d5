package codec

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Validator is implemented by models that check required members after decoding.
type Validator interface {
	Validate() error
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// NopLogger returns a logger that drops every record.
func NopLogger() *slog.Logger { return discard }

// Decode parses raw into a new T and runs its Validate method when it has one.
// Errors are *SyntaxError or *SchemaError.
func Decode[T any](raw []byte) (v *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = &SchemaError{Detail: fmt.Sprintf("decoding %T: %v", v, r)}
		}
	}()

	if !json.Valid(raw) {
		return nil, &SyntaxError{Err: errors.New("invalid JSON value")}
	}
	if res := gjson.ParseBytes(raw); !res.IsObject() {
		return nil, &SchemaError{Detail: "expected object, got " + kindOf(res), Err: ErrNotObject}
	}

	v = new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, convert(err)
	}
	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return nil, convert(err)
		}
	}
	return v, nil
}

// FromValue is the lenient form of Decode: any failure yields (nil, false).
func FromValue[T any](raw []byte) (*T, bool) {
	v, err := Decode[T](raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// CheckObject validates the members shared by every model: the object
// discriminator, when present, must equal want, and id must be set when required.
func CheckObject(want, got, id string, idRequired bool) error {
	if got != "" && got != want {
		return &SchemaError{Path: "object", Detail: fmt.Sprintf("expected %q, got %q", want, got)}
	}
	if idRequired && id == "" {
		return &SchemaError{Path: "id", Detail: "missing required member"}
	}
	return nil
}

func convert(err error) error {
	var (
		se  *SchemaError
		ue  *UnknownObjectError
		syn *json.SyntaxError
		ute *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &se), errors.As(err, &ue):
		return err
	case errors.As(err, &syn):
		return &SyntaxError{Offset: syn.Offset, Err: err}
	case errors.As(err, &ute):
		return &SchemaError{
			Path:   ute.Field,
			Detail: fmt.Sprintf("cannot use %s as %s", ute.Value, ute.Type),
			Err:    err,
		}
	default:
		return &SchemaError{Detail: err.Error(), Err: err}
	}
}

func kindOf(res gjson.Result) string {
	switch res.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if res.IsArray() {
			return "array"
		}
		return "object"
	}
}
