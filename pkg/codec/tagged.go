package codec

import (
	"log/slog"
	"sort"

	"github.com/tidwall/gjson"
)

// ObjectKey is the member that discriminates object-tagged sums.
const ObjectKey = "object"

// VariantFunc decodes one variant of a sum S from a raw JSON object.
type VariantFunc[S any] func(raw []byte) (S, error)

// Variant adapts a model type T to a VariantFunc. wrap lifts the decoded *T into S.
func Variant[T, S any](wrap func(*T) S) VariantFunc[S] {
	return func(raw []byte) (S, error) {
		v, err := Decode[T](raw)
		if err != nil {
			var zero S
			return zero, err
		}
		return wrap(v), nil
	}
}

// Tagged is a closed sum of payload types selected by the "object" member.
// A Tagged is immutable once built and safe for concurrent use.
type Tagged[S any] struct {
	name     string
	variants map[string]VariantFunc[S]
}

// NewTagged builds a sum named name over variants, keyed by object discriminator.
func NewTagged[S any](name string, variants map[string]VariantFunc[S]) *Tagged[S] {
	return &Tagged[S]{name: name, variants: variants}
}

// Name returns the name reported in warnings and errors.
func (t *Tagged[S]) Name() string { return t.name }

// Named returns a copy of t that reports itself as name.
func (t *Tagged[S]) Named(name string) *Tagged[S] {
	c := *t
	c.name = name
	return &c
}

// Keys returns the known discriminators in sorted order.
func (t *Tagged[S]) Keys() []string {
	keys := make([]string, 0, len(t.variants))
	for k := range t.variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether tag names a variant of t.
func (t *Tagged[S]) Has(tag string) bool {
	_, ok := t.variants[tag]
	return ok
}

// Strict decodes raw and fails on a missing or unknown discriminator.
func (t *Tagged[S]) Strict(raw []byte) (S, error) {
	var zero S

	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return zero, &SchemaError{Detail: "expected object, got " + kindOf(res), Err: ErrNotObject}
	}
	tag, ok := discriminator(res)
	if !ok {
		return zero, &SchemaError{Path: ObjectKey, Detail: "missing string discriminator"}
	}
	decode, ok := t.variants[tag]
	if !ok {
		return zero, &UnknownObjectError{Sum: t.name, Object: tag}
	}
	return decode(raw)
}

// Lenient decodes raw like Strict but never fails. An unknown discriminator is
// logged once at warn level and yields (zero, false), as does any other failure.
func (t *Tagged[S]) Lenient(raw []byte, logger *slog.Logger) (S, bool) {
	var zero S

	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return zero, false
	}
	tag, ok := discriminator(res)
	if !ok {
		return zero, false
	}
	decode, ok := t.variants[tag]
	if !ok {
		if logger == nil {
			logger = discard
		}
		logger.Warn("unrecognized object discriminator", "sum", t.name, "object", tag)
		return zero, false
	}
	v, err := decode(raw)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Discriminator returns the string value of the "object" member of raw.
// When the member repeats, the last occurrence wins.
func Discriminator(raw []byte) (string, bool) {
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return "", false
	}
	return discriminator(res)
}

func discriminator(obj gjson.Result) (tag string, ok bool) {
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == ObjectKey {
			tag, ok = v.Str, v.Type == gjson.String
		}
		return true
	})
	return tag, ok
}
