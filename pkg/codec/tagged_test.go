package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/testutil"
	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
)

type thing interface{ isThing() }

func (*widget) isThing() {}
func (*gadget) isThing() {}

var things = codec.NewTagged[thing]("Thing", map[string]codec.VariantFunc[thing]{
	"widget": codec.Variant(func(v *widget) thing { return v }),
	"gadget": codec.Variant(func(v *gadget) thing { return v }),
})

func TestTagged_Keys(t *testing.T) {
	assert.Equal(t, []string{"gadget", "widget"}, things.Keys())
	assert.Equal(t, "Thing", things.Name())
	assert.Equal(t, "Other", things.Named("Other").Name())
	assert.Equal(t, "Thing", things.Name())
}

func TestTagged_StrictSelectsVariant(t *testing.T) {
	v, err := things.Strict([]byte(`{"id":"g_1","object":"gadget"}`))
	require.NoError(t, err)
	g, ok := v.(*gadget)
	require.True(t, ok)
	assert.Equal(t, "g_1", g.ID)
}

func TestTagged_MemberOrderDoesNotMatter(t *testing.T) {
	a, err := things.Strict([]byte(`{"object":"widget","id":"w_1","size":2}`))
	require.NoError(t, err)
	b, err := things.Strict([]byte(`{"size":2,"id":"w_1","object":"widget"}`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTagged_LastDuplicateDiscriminatorWins(t *testing.T) {
	v, err := things.Strict([]byte(`{"id":"x_1","object":"widget","object":"gadget"}`))
	require.NoError(t, err)
	assert.IsType(t, &gadget{}, v)

	tag, ok := codec.Discriminator([]byte(`{"object":"a","object":"b"}`))
	assert.True(t, ok)
	assert.Equal(t, "b", tag)
}

func TestTagged_StrictErrors(t *testing.T) {
	_, err := things.Strict([]byte(`{"id":"x_1","object":"sprocket"}`))
	var ue *codec.UnknownObjectError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "sprocket", ue.Object)
	assert.Equal(t, "Thing", ue.Sum)

	_, err = things.Strict([]byte(`{"id":"x_1"}`))
	var se *codec.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "object", se.Path)

	_, err = things.Strict([]byte(`{"id":"x_1","object":7}`))
	require.ErrorAs(t, err, &se)

	_, err = things.Strict([]byte(`[]`))
	assert.ErrorIs(t, err, codec.ErrNotObject)
}

func TestTagged_LenientUnknownWarnsOnce(t *testing.T) {
	logger, rec := testutil.NewLogger()

	v, ok := things.Named("ThingCreated").Lenient([]byte(`{"id":"x_1","object":"sprocket"}`), logger)
	assert.False(t, ok)
	assert.Nil(t, v)

	warnings := rec.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "ThingCreated", warnings[0].Attrs["sum"])
	assert.Equal(t, "sprocket", warnings[0].Attrs["object"])
}

func TestTagged_LenientKnown(t *testing.T) {
	logger, rec := testutil.NewLogger()

	v, ok := things.Lenient([]byte(`{"id":"w_1","object":"widget"}`), logger)
	require.True(t, ok)
	assert.IsType(t, &widget{}, v)
	assert.Empty(t, rec.Records())
}

func TestTagged_LenientBadInputIsQuiet(t *testing.T) {
	logger, rec := testutil.NewLogger()

	for _, in := range []string{`{"id":"w_1"}`, `"x"`, `{"object":"widget"}`, `{"object":null}`} {
		_, ok := things.Lenient([]byte(in), logger)
		assert.False(t, ok, in)
	}
	assert.Empty(t, rec.Warnings())

	_, ok := things.Lenient([]byte(`{"object":"sprocket"}`), nil)
	assert.False(t, ok)
}
