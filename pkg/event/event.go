package event

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Event is a webhook event envelope.
type Event struct {
	ID              string   `json:"id"`
	Object          string   `json:"object,omitempty"`
	Account         *string  `json:"account,omitempty"`
	APIVersion      *string  `json:"api_version,omitempty"`
	Created         int64    `json:"created"`
	Livemode        bool     `json:"livemode"`
	PendingWebhooks int64    `json:"pending_webhooks"`
	Request         *Request `json:"request,omitempty"`
	Type            Type     `json:"type"`
	Data            Data     `json:"data"`

	// Payload is the dispatched data.object. Parse leaves it nil when the
	// payload does not fit a known type.
	Payload Object `json:"-"`
}

// Data carries the object the event is about.
type Data struct {
	Object json.RawMessage `json:"object"`
	// PreviousAttributes holds the prior values of changed members on *.updated events.
	PreviousAttributes map[string]json.RawMessage `json:"previous_attributes,omitempty"`
}

// Request identifies the API request that caused the event, if any.
type Request struct {
	ID             *string `json:"id,omitempty"`
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
}

// Parse decodes an envelope and dispatches its payload leniently. Unknown
// types yield an *Unknown payload. A payload that does not fit its type
// leaves Payload nil and logs a warning. Errors are *DecodeError of kind
// KindMalformed or KindInvalidEnvelope.
func Parse(data []byte, opts ...Option) (*Event, error) {
	ev, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	obj, ok := DispatchLazy(ev.Type, gjson.ParseBytes(ev.Data.Object), opts...)
	if !ok {
		o.logger.Warn("event payload does not match its type", "event_id", ev.ID, "type", ev.Type)
	}
	ev.Payload = obj
	return ev, nil
}

// ParseStrict decodes an envelope and dispatches its payload strictly.
// Unknown types and mismatched payloads are reported as *DecodeError.
func ParseStrict(data []byte) (*Event, error) {
	ev, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}

	obj, err := Dispatch(ev.Type, ev.Data.Object)
	if err != nil {
		kind := KindSchemaMismatch
		var ut *UnknownTypeError
		if errors.As(err, &ut) {
			kind = KindUnknownType
		}
		return nil, &DecodeError{Kind: kind, EventID: ev.ID, Type: ev.Type, Err: err}
	}
	ev.Payload = obj
	return ev, nil
}

func parseEnvelope(data []byte) (*Event, error) {
	if !json.Valid(data) {
		return nil, &DecodeError{Kind: KindMalformed, Err: errors.New("input is not valid JSON")}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, &DecodeError{Kind: KindInvalidEnvelope, Err: errors.New("envelope is not an object")}
	}

	ev := &Event{}
	if err := json.Unmarshal(data, ev); err != nil {
		return nil, &DecodeError{Kind: KindInvalidEnvelope, Err: fmt.Errorf("decoding envelope: %w", err)}
	}
	if ev.Type == "" {
		return nil, &DecodeError{Kind: KindInvalidEnvelope, EventID: ev.ID, Err: errors.New("missing type")}
	}
	if len(ev.Data.Object) == 0 || string(ev.Data.Object) == "null" {
		return nil, &DecodeError{Kind: KindInvalidEnvelope, EventID: ev.ID, Type: ev.Type, Err: errors.New("missing data.object")}
	}
	return ev, nil
}
