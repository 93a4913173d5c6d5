package codec_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
)

type tombstone struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (r *tombstone) Validate() error { return codec.CheckObject("widget", "", r.ID, true) }

type widgetOrDeleted = codec.MaybeDeleted[widget, tombstone]

func TestMaybeDeleted(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		deleted bool
	}{
		{name: "tombstone", in: `{"id":"w_1","deleted":true}`, deleted: true},
		{name: "explicit false", in: `{"id":"w_1","deleted":false}`},
		{name: "no flag", in: `{"id":"w_1","size":1}`},
		{name: "string flag", in: `{"id":"w_1","deleted":"true"}`},
		{name: "duplicate flag last false", in: `{"id":"w_1","deleted":true,"deleted":false}`},
		{name: "duplicate flag last true", in: `{"id":"w_1","deleted":false,"deleted":true}`, deleted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m widgetOrDeleted
			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			assert.Equal(t, tt.deleted, m.IsDeleted())
			if tt.deleted {
				require.NotNil(t, m.Deleted)
				assert.Nil(t, m.Live)
				assert.Equal(t, "w_1", m.Deleted.ID)
			} else {
				require.NotNil(t, m.Live)
				assert.Nil(t, m.Deleted)
				assert.Equal(t, "w_1", m.Live.ID)
			}
		})
	}
}

func TestMaybeDeleted_RoundTrip(t *testing.T) {
	for _, in := range []string{`{"id":"w_1","deleted":true}`, `{"id":"w_1","size":4}`} {
		var m widgetOrDeleted
		require.NoError(t, json.Unmarshal([]byte(in), &m))
		out, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	}
}

func TestMaybeDeleted_Errors(t *testing.T) {
	var m widgetOrDeleted
	assert.Error(t, json.Unmarshal([]byte(`{"deleted":true}`), &m))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &m))

	out, err := json.Marshal(widgetOrDeleted{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
