// Package builtin provides the action executors the receiver registers by default.
package builtin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// LogAction handles "log" actions: it writes one record per matched event.
//
// Params:
//   - level: debug | info | warn | error (default info)
//   - message: record message (default "webhook event routed")
type LogAction struct {
	logger *slog.Logger
}

// NewLog returns a LogAction writing to logger, or to slog.Default when nil.
func NewLog(logger *slog.Logger) *LogAction {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogAction{logger: logger}
}

func (a *LogAction) Type() string { return "log" }

func (a *LogAction) Validate(params map[string]interface{}) error {
	if raw, ok := params["level"]; ok {
		s, _ := raw.(string)
		if _, err := parseLevel(s); err != nil {
			return fmt.Errorf("log: %w", err)
		}
	}
	if raw, ok := params["message"]; ok {
		if _, isString := raw.(string); !isString {
			return fmt.Errorf("log: message must be a string, got %T", raw)
		}
	}
	return nil
}

func (a *LogAction) Execute(ctx context.Context, actionID string, params map[string]interface{}, in *action.Input) (*action.Result, error) {
	s, _ := params["level"].(string)
	level, _ := parseLevel(s)
	msg, _ := params["message"].(string)
	if msg == "" {
		msg = "webhook event routed"
	}

	ev := in.Event
	a.logger.Log(ctx, level, msg,
		"delivery_id", in.DeliveryID,
		"route_id", in.RouteID,
		"action_id", actionID,
		"event_id", ev.ID,
		"type", ev.Type,
		"payload", event.PayloadName(ev.Payload),
	)
	return &action.Result{
		ActionID: actionID,
		RouteID:  in.RouteID,
		Type:     a.Type(),
		Success:  true,
		Message:  fmt.Sprintf("logged %s at %s", ev.Type, level),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
