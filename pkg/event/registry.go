package event

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
)

// Family groups variants that are compiled in or out together.
type Family string

const (
	FamilyCore     Family = "core"
	FamilyBilling  Family = "billing"
	FamilyFraud    Family = "fraud"
	FamilyMisc     Family = "misc"
	FamilyPayment  Family = "payment"
	FamilyTerminal Family = "terminal"
	FamilyTreasury Family = "treasury"
)

// AllFamilies lists every family, compiled in or not.
var AllFamilies = []Family{
	FamilyCore,
	FamilyBilling,
	FamilyFraud,
	FamilyMisc,
	FamilyPayment,
	FamilyTerminal,
	FamilyTreasury,
}

// Descriptor describes a compiled-in event type.
type Descriptor struct {
	Type   Type     `json:"type"`
	Family Family   `json:"family"`
	Go     string   `json:"go_type"`
	Object []string `json:"object"`
}

type entry struct {
	desc    Descriptor
	strict  func(data []byte) (Object, error)
	lenient func(data []byte, logger *slog.Logger) (Object, bool)
}

// Filled by init functions in the generated files and read-only afterwards.
var (
	table  = make(map[Type]*entry, 256)
	active = make(map[Family]int, len(AllFamilies))
)

func register(f Family, entries ...*entry) {
	for _, e := range entries {
		if _, dup := table[e.desc.Type]; dup {
			panic(fmt.Sprintf("event: type %q registered twice", e.desc.Type))
		}
		e.desc.Family = f
		table[e.desc.Type] = e
	}
	active[f] += len(entries)
}

// variant builds the entry of a type whose payload is the model P.
func variant[P any](t Type, object string, wrap func(*P) Object) *entry {
	return &entry{
		desc: Descriptor{Type: t, Go: goName(wrap(new(P))), Object: []string{object}},
		strict: func(data []byte) (Object, error) {
			p, err := codec.Decode[P](data)
			if err != nil {
				return nil, err
			}
			return wrap(p), nil
		},
		lenient: func(data []byte, _ *slog.Logger) (Object, bool) {
			p, ok := codec.FromValue[P](data)
			if !ok {
				return nil, false
			}
			return wrap(p), true
		},
	}
}

// tagged builds the entry of a type whose payload is an object-tagged sum.
// Lenient decoding of an unrecognized kind still yields the variant, with a
// nil inner value. A recognized kind that fails to decode is a mismatch.
func tagged[S any](t Type, name string, sum *codec.Tagged[S], wrap func(S) Object) *entry {
	named := sum.Named(name)
	return &entry{
		desc: Descriptor{Type: t, Go: name, Object: named.Keys()},
		strict: func(data []byte) (Object, error) {
			s, err := named.Strict(data)
			if err != nil {
				return nil, err
			}
			return wrap(s), nil
		},
		lenient: func(data []byte, logger *slog.Logger) (Object, bool) {
			tag, ok := codec.Discriminator(data)
			if !ok {
				return nil, false
			}
			s, ok := named.Lenient(data, logger)
			if !ok && named.Has(tag) {
				return nil, false
			}
			return wrap(s), true
		},
	}
}

func goName(o Object) string {
	return reflect.TypeOf(o).Elem().Name()
}

// Known reports whether t has a compiled-in variant.
func Known(t Type) bool {
	_, ok := table[t]
	return ok
}

// Describe returns the descriptor of a compiled-in type.
func Describe(t Type) (Descriptor, bool) {
	e, ok := table[t]
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

// KnownTypes returns the compiled-in types in sorted order.
func KnownTypes() []Type {
	types := make([]Type, 0, len(table))
	for t := range table {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Families returns the compiled-in families in AllFamilies order.
func Families() []Family {
	out := make([]Family, 0, len(active))
	for _, f := range AllFamilies {
		if active[f] > 0 {
			out = append(out, f)
		}
	}
	return out
}

// FamilyOf returns the family of a compiled-in type.
func FamilyOf(t Type) (Family, bool) {
	e, ok := table[t]
	if !ok {
		return "", false
	}
	return e.desc.Family, true
}

// IsFamily reports whether name is one of AllFamilies.
func IsFamily(name string) bool {
	for _, f := range AllFamilies {
		if string(f) == name {
			return true
		}
	}
	return false
}
