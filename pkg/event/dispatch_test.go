package event_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/gyaneshwarpardhi/payhook/internal/testutil"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

func minimalPayload(t *testing.T, typ event.Type) string {
	t.Helper()
	d, ok := event.Describe(typ)
	require.True(t, ok)
	require.NotEmpty(t, d.Object)
	return `{"id":"obj_1","object":"` + d.Object[0] + `","x_unlisted":{"n":1}}`
}

func TestDispatch_RoundTripsEveryKnownType(t *testing.T) {
	types := event.KnownTypes()
	require.NotEmpty(t, types)

	for _, typ := range types {
		t.Run(string(typ), func(t *testing.T) {
			in := minimalPayload(t, typ)

			obj, err := event.Dispatch(typ, []byte(in))
			require.NoError(t, err)
			assert.Equal(t, typ, obj.EventType())

			d, _ := event.Describe(typ)
			assert.Equal(t, d.Go, strings.TrimPrefix(typeName(obj), "*event."))

			out, err := json.Marshal(obj.Resource())
			require.NoError(t, err)
			assert.JSONEq(t, in, string(out))

			lazy, ok := event.DispatchLazy(typ, gjson.Parse(in))
			require.True(t, ok)
			assert.Equal(t, obj, lazy)
		})
	}
}

func TestDispatch_UnknownType(t *testing.T) {
	for _, v := range []string{`{"a":1}`, `[1,2]`, `"s"`, `3.5`, `null`, `true`} {
		obj, ok := event.DispatchLazy("brand.new.event", gjson.Parse(v))
		require.True(t, ok)
		u, isUnknown := obj.(*event.Unknown)
		require.True(t, isUnknown)
		assert.Equal(t, v, string(u.Raw))

		_, err := event.Dispatch("brand.new.event", []byte(v))
		var ut *event.UnknownTypeError
		require.ErrorAs(t, err, &ut)
		assert.Equal(t, event.KindUnknownType, event.KindOf(err))
	}
}

func TestDispatch_ExactMatchOnly(t *testing.T) {
	payload := []byte(`{"id":"in_1","object":"invoice"}`)
	for _, typ := range []event.Type{"Invoice.Paid", " invoice.paid", "invoice.paid ", "invoice", "invoice.paid.extra"} {
		_, err := event.Dispatch(typ, payload)
		var ut *event.UnknownTypeError
		assert.ErrorAs(t, err, &ut, string(typ))
	}
}

func TestDispatch_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		typ  event.Type
		in   string
		path string
	}{
		{name: "not an object", typ: event.TypeChargeSucceeded, in: `"ch_1"`},
		{name: "missing id", typ: event.TypeChargeSucceeded, in: `{"object":"charge","amount":1}`, path: "id"},
		{name: "wrong object", typ: event.TypeChargeSucceeded, in: `{"id":"ch_1","object":"refund"}`, path: "object"},
		{name: "wrong kind", typ: event.TypeChargeSucceeded, in: `{"id":"ch_1","amount":"lots"}`},
		{name: "unknown source kind", typ: event.TypeCustomerSourceCreated, in: `{"id":"x_1","object":"bitcoin_receiver"}`, path: "object"},
		{name: "source without discriminator", typ: event.TypeCustomerSourceCreated, in: `{"id":"x_1"}`, path: "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := event.Dispatch(tt.typ, []byte(tt.in))
			var sm *event.SchemaMismatchError
			require.ErrorAs(t, err, &sm)
			assert.Equal(t, tt.typ, sm.Type)
			assert.NotEmpty(t, sm.Detail)
			if tt.path != "" {
				assert.Equal(t, tt.path, sm.Path)
			}

			obj, ok := event.DispatchLazy(tt.typ, gjson.Parse(tt.in))
			if tt.name == "unknown source kind" {
				assert.True(t, ok)
				return
			}
			assert.False(t, ok)
			assert.Nil(t, obj)
		})
	}
}

func TestDispatch_SharedPayloadDistinctVariants(t *testing.T) {
	payload := []byte(`{"id":"cus_1","object":"customer"}`)

	created, err := event.Dispatch(event.TypeCustomerCreated, payload)
	require.NoError(t, err)
	updated, err := event.Dispatch(event.TypeCustomerUpdated, payload)
	require.NoError(t, err)

	assert.IsType(t, &event.CustomerCreated{}, created)
	assert.IsType(t, &event.CustomerUpdated{}, updated)
	assert.Equal(t, created.Resource(), updated.Resource())
}

func TestDispatch_PreservesNullMembers(t *testing.T) {
	in := `{"id":"ch_1","object":"charge","amount":null}`

	obj, err := event.Dispatch(event.TypeChargeSucceeded, []byte(in))
	require.NoError(t, err)
	require.IsType(t, &event.ChargeSucceeded{}, obj)
	assert.Nil(t, obj.(*event.ChargeSucceeded).Object.Amount)

	out, err := json.Marshal(obj.Resource())
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestParse_MismatchLeavesPayloadNil(t *testing.T) {
	logger, rec := testutil.NewLogger()
	in := `{"id":"evt_9","type":"charge.succeeded","data":{"object":{"object":"charge"}}}`

	ev, err := event.Parse([]byte(in), event.WithLogger(logger))
	require.NoError(t, err)
	assert.Nil(t, ev.Payload)
	require.Len(t, rec.Warnings(), 1)
	assert.Equal(t, "evt_9", rec.Warnings()[0].Attrs["event_id"])

	_, err = event.ParseStrict([]byte(in))
	assert.Equal(t, event.KindSchemaMismatch, event.KindOf(err))
}

func TestParse_EnvelopeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind event.ErrorKind
	}{
		{name: "truncated", in: `{"id":"evt_1","type":`, kind: event.KindMalformed},
		{name: "not json", in: `hello`, kind: event.KindMalformed},
		{name: "array", in: `[]`, kind: event.KindInvalidEnvelope},
		{name: "missing type", in: `{"id":"evt_1","data":{"object":{}}}`, kind: event.KindInvalidEnvelope},
		{name: "missing data", in: `{"id":"evt_1","type":"charge.succeeded"}`, kind: event.KindInvalidEnvelope},
		{name: "null object", in: `{"id":"evt_1","type":"charge.succeeded","data":{"object":null}}`, kind: event.KindInvalidEnvelope},
		{name: "bad created", in: `{"id":"evt_1","type":"charge.succeeded","created":"yesterday","data":{"object":{}}}`, kind: event.KindInvalidEnvelope},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := event.Parse([]byte(tt.in))
			var de *event.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.kind, de.Kind)

			_, err = event.ParseStrict([]byte(tt.in))
			assert.Equal(t, tt.kind, event.KindOf(err))
		})
	}
}

func TestParse_EnvelopeMembers(t *testing.T) {
	in := `{"id":"evt_1","object":"event","account":"acct_1","api_version":"2024-06-20","created":1700000000,"livemode":true,"pending_webhooks":2,
		"request":{"id":"req_1","idempotency_key":"k"},"type":"customer.updated",
		"data":{"object":{"id":"cus_1","object":"customer","email":"b@example.com"},"previous_attributes":{"email":"a@example.com"}}}`

	ev, err := event.ParseStrict([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, "acct_1", *ev.Account)
	assert.Equal(t, int64(1700000000), ev.Created)
	assert.True(t, ev.Livemode)
	assert.Equal(t, "req_1", *ev.Request.ID)
	assert.JSONEq(t, `"a@example.com"`, string(ev.Data.PreviousAttributes["email"]))
	assert.IsType(t, &event.CustomerUpdated{}, ev.Payload)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "malformed", event.KindMalformed.String())
	assert.Equal(t, "unknown_type", event.KindUnknownType.String())
	assert.Equal(t, "ErrorKind(0)", event.ErrorKind(0).String())
}
