package codec_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
)

type widget struct {
	ID     string  `json:"id"`
	Object string  `json:"object,omitempty"`
	Size   *int64  `json:"size,omitempty"`
	Label  *string `json:"label,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (r *widget) UnmarshalJSON(data []byte) error {
	type shadow widget
	extra, err := codec.UnmarshalObject(data, (*shadow)(r))
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

func (r widget) MarshalJSON() ([]byte, error) {
	type shadow widget
	return codec.MarshalObject(shadow(r), r.Extra)
}

func (r *widget) Validate() error {
	return codec.CheckObject("widget", r.Object, r.ID, true)
}

type gadget struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
}

func (r *gadget) Validate() error {
	return codec.CheckObject("gadget", r.Object, r.ID, true)
}

func TestDecode_Valid(t *testing.T) {
	w, err := codec.Decode[widget]([]byte(`{"id":"w_1","object":"widget","size":3}`))
	require.NoError(t, err)
	assert.Equal(t, "w_1", w.ID)
	require.NotNil(t, w.Size)
	assert.Equal(t, int64(3), *w.Size)
	assert.Nil(t, w.Label)
	assert.Empty(t, w.Extra)
}

func TestDecode_KeepsUnknownMembers(t *testing.T) {
	in := `{"id":"w_1","object":"widget","size":3,"colour":"red","dims":{"h":1,"w":2}}`

	w, err := codec.Decode[widget]([]byte(in))
	require.NoError(t, err)
	require.Len(t, w.Extra, 2)
	assert.JSONEq(t, `"red"`, string(w.Extra["colour"]))

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestDecode_KeepsNullMembers(t *testing.T) {
	in := `{"id":"w_1","object":"widget","size":null,"label":"x","colour":null}`

	w, err := codec.Decode[widget]([]byte(in))
	require.NoError(t, err)
	assert.Nil(t, w.Size)
	assert.Equal(t, json.RawMessage(`null`), w.Extra["size"])
	assert.NotContains(t, w.Extra, "label")

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	w.Size = new(int64)
	out, err = json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"w_1","object":"widget","size":0,"label":"x","colour":null}`, string(out))
}

func TestDecode_MissingID(t *testing.T) {
	_, err := codec.Decode[widget]([]byte(`{"object":"widget"}`))
	require.Error(t, err)

	var se *codec.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "id", se.Path)
}

func TestDecode_WrongObject(t *testing.T) {
	_, err := codec.Decode[widget]([]byte(`{"id":"w_1","object":"gadget"}`))

	var se *codec.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "object", se.Path)
}

func TestDecode_WrongMemberType(t *testing.T) {
	_, err := codec.Decode[widget]([]byte(`{"id":"w_1","size":"big"}`))
	require.Error(t, err)
	assert.True(t, codec.IsSchemaError(err))
}

func TestDecode_NotObject(t *testing.T) {
	for _, in := range []string{`null`, `42`, `"w_1"`, `[1,2]`, `true`} {
		_, err := codec.Decode[widget]([]byte(in))
		assert.ErrorIs(t, err, codec.ErrNotObject, in)
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := codec.Decode[widget]([]byte(`{"id":`))

	var syn *codec.SyntaxError
	assert.ErrorAs(t, err, &syn)
	assert.False(t, codec.IsSchemaError(err))
}

func TestFromValue(t *testing.T) {
	w, ok := codec.FromValue[widget]([]byte(`{"id":"w_1"}`))
	assert.True(t, ok)
	assert.Equal(t, "w_1", w.ID)

	w, ok = codec.FromValue[widget]([]byte(`{"size":1}`))
	assert.False(t, ok)
	assert.Nil(t, w)
}

func TestMarshalObject_StructMembersWin(t *testing.T) {
	w := widget{
		ID:    "w_1",
		Extra: map[string]json.RawMessage{"id": json.RawMessage(`"stale"`), "note": json.RawMessage(`1`)},
	}
	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"w_1","note":1}`, string(out))
}
