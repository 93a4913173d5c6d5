package action

import (
	"context"

	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// Result holds the outcome of executing a single action.
type Result struct {
	ActionID string `json:"action_id"`
	RouteID  string `json:"route_id"`
	Type     string `json:"type"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

// Input is what an action sees of a delivery.
type Input struct {
	DeliveryID string
	RouteID    string
	Event      *event.Event
	// Body is the raw delivery as received.
	Body []byte
}

// Executor is the interface all action implementations must satisfy.
type Executor interface {
	// Type returns the string key this executor is registered under.
	Type() string
	// Execute runs the action and returns a result.
	Execute(ctx context.Context, actionID string, params map[string]interface{}, in *Input) (*Result, error)
	// Validate checks params when routes are built.
	Validate(params map[string]interface{}) error
}
