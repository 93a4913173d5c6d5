package codec

import (
	"reflect"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var memberCache sync.Map // reflect.Type -> map[string]struct{}

// UnmarshalObject decodes data into dst, a pointer to a struct, and returns the
// members of data that no json tag on the struct claims, plus claimed members
// that are explicitly null. Models keep the result so re-encoding preserves
// members added by newer API versions and nulls the struct would omit.
func UnmarshalObject(data []byte, dst any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}

	known := memberNames(reflect.TypeOf(dst).Elem())
	var extra map[string]json.RawMessage
	gjson.ParseBytes(data).ForEach(func(k, v gjson.Result) bool {
		if _, ok := known[k.Str]; ok && v.Type != gjson.Null {
			return true
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k.Str] = json.RawMessage(v.Raw)
		return true
	})
	return extra, nil
}

// MarshalObject encodes v and merges extra into the resulting object. Members
// produced by v win over extra members with the same key.
func MarshalObject(v any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, ok := members[k]; !ok {
			members[k] = raw
		}
	}
	return json.Marshal(members)
}

func memberNames(t reflect.Type) map[string]struct{} {
	if cached, ok := memberCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names[name] = struct{}{}
	}
	memberCache.Store(t, names)
	return names
}
