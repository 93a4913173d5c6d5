package builtin

import (
	"context"
	"fmt"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/metrics"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// CountAction handles "count" actions by incrementing
// payhook_routed_events_total for the route, action and family.
type CountAction struct{}

func NewCount() *CountAction { return &CountAction{} }

func (c *CountAction) Type() string { return "count" }

func (c *CountAction) Validate(map[string]interface{}) error { return nil }

func (c *CountAction) Execute(_ context.Context, actionID string, _ map[string]interface{}, in *action.Input) (*action.Result, error) {
	family, ok := event.FamilyOf(in.Event.Type)
	if !ok {
		family = "unknown"
	}
	metrics.RoutedEvents.WithLabelValues(in.RouteID, actionID, string(family)).Inc()
	return &action.Result{
		ActionID: actionID,
		RouteID:  in.RouteID,
		Type:     c.Type(),
		Success:  true,
		Message:  fmt.Sprintf("counted %s", in.Event.Type),
	}, nil
}
