package resource_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/pkg/codec"
	"github.com/gyaneshwarpardhi/payhook/pkg/resource"
)

func TestCustomerSources(t *testing.T) {
	v, err := resource.CustomerSources.Strict([]byte(`{"id":"card_1","object":"card","last4":"4242","exp_year":2030}`))
	require.NoError(t, err)

	card, ok := v.(*resource.Card)
	require.True(t, ok)
	assert.Equal(t, "card_1", card.ID)
	require.NotNil(t, card.Last4)
	assert.Equal(t, "4242", *card.Last4)
	assert.Equal(t, []string{"bank_account", "card", "source"}, resource.CustomerSources.Keys())
}

func TestExternalAccounts_RejectsSource(t *testing.T) {
	_, err := resource.ExternalAccounts.Strict([]byte(`{"id":"src_1","object":"source"}`))

	var ue *codec.UnknownObjectError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "ExternalAccount", ue.Sum)
}

func TestCustomerOrDeleted(t *testing.T) {
	var m resource.CustomerOrDeleted
	require.NoError(t, json.Unmarshal([]byte(`{"id":"cus_1","object":"customer","deleted":true}`), &m))
	require.True(t, m.IsDeleted())
	assert.Equal(t, "cus_1", m.Deleted.ID)
	assert.True(t, m.Deleted.Deleted)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"cus_1","object":"customer","email":"a@example.com"}`), &m))
	require.False(t, m.IsDeleted())
	require.NotNil(t, m.Live.Email)
	assert.Equal(t, "a@example.com", *m.Live.Email)
}

func TestModel_RoundTripWithUnknownMembers(t *testing.T) {
	in := `{"id":"pi_1","object":"payment_intent","amount":2000,"currency":"usd","metadata":{"order":"42"},"next_action":{"type":"redirect"}}`

	pi, err := codec.Decode[resource.PaymentIntent]([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, int64(2000), *pi.Amount)
	assert.Equal(t, "42", pi.Metadata["order"])
	assert.Contains(t, pi.Extra, "next_action")

	out, err := json.Marshal(pi)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestModel_IDOptional(t *testing.T) {
	b, err := codec.Decode[resource.Balance]([]byte(`{"object":"balance","livemode":false}`))
	require.NoError(t, err)
	require.NotNil(t, b.Livemode)
	assert.False(t, *b.Livemode)

	_, err = codec.Decode[resource.Charge]([]byte(`{"object":"charge"}`))
	assert.True(t, codec.IsSchemaError(err))
}
