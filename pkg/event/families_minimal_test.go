//go:build payhook_minimal && !payhook_treasury

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

func TestFamilies_DisabledFamilyActsUnknown(t *testing.T) {
	assert.Contains(t, event.Families(), event.FamilyCore)
	assert.NotContains(t, event.Families(), event.FamilyTreasury)

	const typ = event.Type("treasury.received_credit.created")
	payload := `{"id":"rc_1","object":"treasury.received_credit"}`

	assert.False(t, event.Known(typ))
	_, err := event.Dispatch(typ, []byte(payload))
	var ut *event.UnknownTypeError
	require.ErrorAs(t, err, &ut)

	obj, ok := event.DispatchLazy(typ, gjson.Parse(payload))
	require.True(t, ok)
	assert.IsType(t, &event.Unknown{}, obj)

	ev, err := event.Parse([]byte(`{"id":"evt_1","type":"treasury.received_credit.created","data":{"object":` + payload + `}}`))
	require.NoError(t, err)
	assert.IsType(t, &event.Unknown{}, ev.Payload)
}

func TestFamilies_CoreAlwaysPresent(t *testing.T) {
	obj, err := event.Dispatch(event.TypeChargeSucceeded, []byte(`{"id":"ch_1","object":"charge"}`))
	require.NoError(t, err)
	assert.IsType(t, &event.ChargeSucceeded{}, obj)
}
