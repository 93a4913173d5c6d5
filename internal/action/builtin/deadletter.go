package builtin

import (
	"context"
	"fmt"
	"time"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/deadletter"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// DeadLetterAction handles "dead_letter" actions by parking the raw delivery.
//
// Params:
//   - only: all | unknown | undecoded (default all). "unknown" parks only
//     types this build does not know; "undecoded" also parks known types
//     whose payload did not decode.
//   - reason: stored on the entry (default "routed")
type DeadLetterAction struct {
	sink deadletter.Sink
	now  func() time.Time
}

func NewDeadLetter(sink deadletter.Sink) *DeadLetterAction {
	return &DeadLetterAction{sink: sink, now: time.Now}
}

func (d *DeadLetterAction) Type() string { return "dead_letter" }

func (d *DeadLetterAction) Validate(params map[string]interface{}) error {
	switch only, _ := params["only"].(string); only {
	case "", "all", "unknown", "undecoded":
	default:
		return fmt.Errorf("dead_letter: only must be all, unknown or undecoded, got %q", only)
	}
	return nil
}

func (d *DeadLetterAction) Execute(ctx context.Context, actionID string, params map[string]interface{}, in *action.Input) (*action.Result, error) {
	res := &action.Result{ActionID: actionID, RouteID: in.RouteID, Type: d.Type()}

	ev := in.Event
	_, unknown := ev.Payload.(*event.Unknown)
	only, _ := params["only"].(string)
	switch {
	case only == "unknown" && !unknown,
		only == "undecoded" && !unknown && ev.Payload != nil:
		res.Success = true
		res.Message = "skipped: event decoded"
		return res, nil
	}

	reason, _ := params["reason"].(string)
	if reason == "" {
		reason = deadletter.ReasonRouted
	}
	err := d.sink.Put(ctx, deadletter.Entry{
		DeliveryID: in.DeliveryID,
		EventID:    ev.ID,
		EventType:  string(ev.Type),
		Reason:     reason,
		Detail:     "route " + in.RouteID,
		Body:       string(in.Body),
		ReceivedAt: d.now().UTC(),
	})
	if err != nil {
		res.Message = err.Error()
		return res, err
	}
	res.Success = true
	res.Message = "parked " + string(ev.Type)
	return res, nil
}
