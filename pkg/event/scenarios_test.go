package event_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/testutil"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
	"github.com/gyaneshwarpardhi/payhook/pkg/resource"
)

func TestParse_PaymentIntentSucceeded(t *testing.T) {
	in := `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","amount":2000}}}`

	ev, err := event.Parse([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)

	p, ok := ev.Payload.(*event.PaymentIntentSucceeded)
	require.True(t, ok, "payload is %T", ev.Payload)
	assert.Equal(t, event.TypePaymentIntentSucceeded, p.EventType())
	assert.Equal(t, "pi_1", p.Object.ID)
	require.NotNil(t, p.Object.Amount)
	assert.Equal(t, int64(2000), *p.Object.Amount)
}

func TestParse_CustomerSourceCard(t *testing.T) {
	in := `{"id":"evt_2","type":"customer.source.created","data":{"object":{"object":"card","id":"card_1","brand":"visa"}}}`

	ev, err := event.Parse([]byte(in))
	require.NoError(t, err)

	p, ok := ev.Payload.(*event.CustomerSourceCreated)
	require.True(t, ok, "payload is %T", ev.Payload)
	card, ok := p.Object.(*resource.Card)
	require.True(t, ok, "inner is %T", p.Object)
	assert.Equal(t, "card_1", card.ID)
	assert.Equal(t, "visa", *card.Brand)
}

func TestParse_CustomerSourceUnknownKind(t *testing.T) {
	logger, rec := testutil.NewLogger()
	in := `{"id":"evt_3","type":"customer.source.created","data":{"object":{"object":"bitcoin_receiver","id":"btcrcv_1"}}}`

	ev, err := event.Parse([]byte(in), event.WithLogger(logger))
	require.NoError(t, err)

	p, ok := ev.Payload.(*event.CustomerSourceCreated)
	require.True(t, ok, "payload is %T", ev.Payload)
	assert.Nil(t, p.Object)
	assert.Nil(t, p.Resource())

	warnings := rec.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "CustomerSourceCreated", warnings[0].Attrs["sum"])
	assert.Equal(t, "bitcoin_receiver", warnings[0].Attrs["object"])
}

func TestParse_ExternalAccountUnknownKind(t *testing.T) {
	inputs := map[string]string{
		"object first": `{"object":"source","id":"src_1"}`,
		"object last":  `{"id":"src_1","livemode":false,"object":"source"}`,
	}
	for name, obj := range inputs {
		t.Run(name, func(t *testing.T) {
			logger, rec := testutil.NewLogger()
			in := `{"data":{"object":` + obj + `},"type":"account.external_account.created","id":"evt_ea"}`

			ev, err := event.Parse([]byte(in), event.WithLogger(logger))
			require.NoError(t, err)

			p, ok := ev.Payload.(*event.AccountExternalAccountCreated)
			require.True(t, ok, "payload is %T", ev.Payload)
			assert.Nil(t, p.Object)

			warnings := rec.Warnings()
			require.Len(t, warnings, 1)
			assert.Equal(t, "AccountExternalAccountCreated", warnings[0].Attrs["sum"])
			assert.Equal(t, "source", warnings[0].Attrs["object"])
		})
	}
}

func TestParse_ExternalAccountBankAccount(t *testing.T) {
	in := `{"id":"evt_eb","type":"account.external_account.created","data":{"object":{"id":"ba_1","object":"bank_account"}}}`

	ev, err := event.Parse([]byte(in))
	require.NoError(t, err)

	p, ok := ev.Payload.(*event.AccountExternalAccountCreated)
	require.True(t, ok, "payload is %T", ev.Payload)
	ba, ok := p.Object.(*resource.BankAccount)
	require.True(t, ok, "inner is %T", p.Object)
	assert.Equal(t, "ba_1", ba.ID)
}

func TestParse_UnknownType(t *testing.T) {
	in := `{"id":"evt_4","type":"brand.new.event","data":{"object":{"whatever":1}}}`

	ev, err := event.Parse([]byte(in))
	require.NoError(t, err)
	u, ok := ev.Payload.(*event.Unknown)
	require.True(t, ok, "payload is %T", ev.Payload)
	assert.Equal(t, event.Type("brand.new.event"), u.Type)
	assert.JSONEq(t, `{"whatever":1}`, string(u.Raw))

	_, err = event.ParseStrict([]byte(in))
	var de *event.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, event.KindUnknownType, de.Kind)
	var ut *event.UnknownTypeError
	require.ErrorAs(t, err, &ut)
	assert.Equal(t, event.Type("brand.new.event"), ut.Type)
}

func TestCustomerOrDeleted_Discriminates(t *testing.T) {
	var m resource.CustomerOrDeleted
	require.NoError(t, json.Unmarshal([]byte(`{"id":"cus_1","deleted":true}`), &m))
	require.NotNil(t, m.Deleted)
	assert.Equal(t, "cus_1", m.Deleted.ID)
	assert.Nil(t, m.Live)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"cus_1","deleted":false}`), &m))
	require.NotNil(t, m.Live)
	assert.Equal(t, "cus_1", m.Live.ID)
	assert.Nil(t, m.Deleted)
}

func TestParse_KeyOrderIndependent(t *testing.T) {
	a := `{"id":"evt_6","type":"customer.source.updated","data":{"object":{"object":"bank_account","id":"ba_1","last4":"6789","bank_name":"STRIPE TEST BANK"}}}`
	b := `{"data":{"object":{"bank_name":"STRIPE TEST BANK","last4":"6789","id":"ba_1","object":"bank_account"}},"type":"customer.source.updated","id":"evt_6"}`

	evA, err := event.Parse([]byte(a))
	require.NoError(t, err)
	evB, err := event.Parse([]byte(b))
	require.NoError(t, err)

	assert.Equal(t, evA.ID, evB.ID)
	assert.Equal(t, evA.Type, evB.Type)
	assert.Equal(t, evA.Payload, evB.Payload)
	assert.IsType(t, &resource.BankAccount{}, evA.Payload.Resource())
}
