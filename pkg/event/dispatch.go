package event

import (
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
)

// Option configures lenient decoding.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives decode warnings. The default drops them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: codec.NopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Dispatch decodes data as the payload of type t. It returns
// *UnknownTypeError when t has no compiled-in variant and
// *SchemaMismatchError when data does not fit the variant.
func Dispatch(t Type, data []byte) (Object, error) {
	e, ok := table[t]
	if !ok {
		return nil, &UnknownTypeError{Type: t}
	}
	obj, err := e.strict(data)
	if err != nil {
		return nil, mismatch(t, err)
	}
	return obj, nil
}

// DispatchLazy decodes an already-scanned payload. An unknown t yields
// *Unknown holding the raw payload. A payload that does not fit a known t
// yields (nil, false).
func DispatchLazy(t Type, data gjson.Result, opts ...Option) (Object, bool) {
	e, ok := table[t]
	if !ok {
		return &Unknown{Type: t, Raw: json.RawMessage(data.Raw)}, true
	}
	o := buildOptions(opts)
	return e.lenient([]byte(data.Raw), o.logger)
}
