package builtin_test

import (
	"context"
	"log/slog"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/action/builtin"
	"github.com/gyaneshwarpardhi/payhook/internal/deadletter"
	"github.com/gyaneshwarpardhi/payhook/internal/metrics"
	"github.com/gyaneshwarpardhi/payhook/internal/testutil"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

func input(t *testing.T, body string) *action.Input {
	t.Helper()
	ev, err := event.Parse([]byte(body))
	require.NoError(t, err)
	return &action.Input{DeliveryID: "dlv_1", RouteID: "route_1", Event: ev, Body: []byte(body)}
}

const (
	chargeBody  = `{"id":"evt_1","type":"charge.succeeded","data":{"object":{"id":"ch_1","object":"charge"}}}`
	unknownBody = `{"id":"evt_2","type":"brand.new.event","data":{"object":{"id":"x_1"}}}`
	badBody     = `{"id":"evt_3","type":"charge.succeeded","data":{"object":{"id":"re_1","object":"refund"}}}`
)

func TestLogAction(t *testing.T) {
	logger, rec := testutil.NewLogger()
	a := builtin.NewLog(logger)

	params := map[string]interface{}{"level": "warn", "message": "big charge"}
	require.NoError(t, a.Validate(params))

	res, err := a.Execute(context.Background(), "act_log", params, input(t, chargeBody))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "route_1", res.RouteID)

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelWarn, records[0].Level)
	assert.Equal(t, "big charge", records[0].Message)
	assert.Equal(t, "ChargeSucceeded", records[0].Attrs["payload"])
	assert.Equal(t, "evt_1", records[0].Attrs["event_id"])
}

func TestLogAction_Validate(t *testing.T) {
	a := builtin.NewLog(nil)
	assert.NoError(t, a.Validate(nil))
	assert.Error(t, a.Validate(map[string]interface{}{"level": "loud"}))
	assert.Error(t, a.Validate(map[string]interface{}{"message": 42}))
}

func TestCountAction(t *testing.T) {
	c := builtin.NewCount()
	counter := metrics.RoutedEvents.WithLabelValues("route_1", "act_count", "core")
	before := promtest.ToFloat64(counter)

	res, err := c.Execute(context.Background(), "act_count", nil, input(t, chargeBody))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, before+1, promtest.ToFloat64(counter))

	unknown := metrics.RoutedEvents.WithLabelValues("route_1", "act_count", "unknown")
	before = promtest.ToFloat64(unknown)
	_, err = c.Execute(context.Background(), "act_count", nil, input(t, unknownBody))
	require.NoError(t, err)
	assert.Equal(t, before+1, promtest.ToFloat64(unknown))
}

func TestDeadLetterAction(t *testing.T) {
	tests := []struct {
		name   string
		only   string
		body   string
		parked bool
	}{
		{"all parks decoded", "all", chargeBody, true},
		{"unknown skips decoded", "unknown", chargeBody, false},
		{"unknown parks unknown", "unknown", unknownBody, true},
		{"undecoded skips decoded", "undecoded", chargeBody, false},
		{"undecoded parks mismatch", "undecoded", badBody, true},
		{"undecoded parks unknown", "undecoded", unknownBody, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := deadletter.NewMemorySink(10)
			a := builtin.NewDeadLetter(sink)
			params := map[string]interface{}{"only": tt.only}
			require.NoError(t, a.Validate(params))

			res, err := a.Execute(context.Background(), "act_dl", params, input(t, tt.body))
			require.NoError(t, err)
			assert.True(t, res.Success)

			if !tt.parked {
				assert.Equal(t, 0, sink.Len())
				return
			}
			entries, err := sink.List(context.Background(), 10)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, deadletter.ReasonRouted, entries[0].Reason)
			assert.Equal(t, "dlv_1", entries[0].DeliveryID)
			assert.Equal(t, tt.body, entries[0].Body)
		})
	}
}

func TestDeadLetterAction_Validate(t *testing.T) {
	a := builtin.NewDeadLetter(deadletter.NewMemorySink(1))
	assert.NoError(t, a.Validate(map[string]interface{}{"reason": "audit"}))
	assert.Error(t, a.Validate(map[string]interface{}{"only": "sometimes"}))
}
