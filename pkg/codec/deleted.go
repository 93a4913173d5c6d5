package codec

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// MaybeDeleted holds either a live resource L or the tombstone D the API
// returns once that resource is deleted. Exactly one field is set after a
// successful decode.
type MaybeDeleted[L, D any] struct {
	Live    *L
	Deleted *D
}

// IsDeleted reports whether m holds a tombstone.
func (m MaybeDeleted[L, D]) IsDeleted() bool { return m.Deleted != nil }

// UnmarshalJSON picks the tombstone when the "deleted" member is literally
// true and the live resource otherwise.
func (m *MaybeDeleted[L, D]) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		return nil
	}
	if !res.IsObject() {
		return &SchemaError{Detail: "expected object, got " + kindOf(res), Err: ErrNotObject}
	}

	if deletedFlag(res) {
		d, err := Decode[D](data)
		if err != nil {
			return err
		}
		m.Live, m.Deleted = nil, d
		return nil
	}

	l, err := Decode[L](data)
	if err != nil {
		return err
	}
	m.Live, m.Deleted = l, nil
	return nil
}

// deletedFlag reports whether the last "deleted" member of obj is true, matching
// how the decoder resolves duplicate keys.
func deletedFlag(obj gjson.Result) (deleted bool) {
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == "deleted" {
			deleted = v.Type == gjson.True
		}
		return true
	})
	return deleted
}

// MarshalJSON encodes whichever side is set, or null when neither is.
func (m MaybeDeleted[L, D]) MarshalJSON() ([]byte, error) {
	switch {
	case m.Deleted != nil:
		return json.Marshal(m.Deleted)
	case m.Live != nil:
		return json.Marshal(m.Live)
	default:
		return []byte("null"), nil
	}
}
