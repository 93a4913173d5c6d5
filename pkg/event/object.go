package event

import "github.com/goccy/go-json"

// Type is the event type discriminator, e.g. "invoice.paid".
type Type string

// Object is a decoded event payload. Implementations are the generated
// variant structs and *Unknown; code switching on an Object should keep a
// default branch for types added later.
type Object interface {
	// EventType returns the type the payload was decoded for.
	EventType() Type
	// Resource returns the decoded payload model, the raw JSON for *Unknown,
	// or nil when an object-tagged payload carried an unrecognized kind.
	Resource() any

	isObject()
}

// Unknown is the payload of an event type this build does not know.
type Unknown struct {
	Type Type
	Raw  json.RawMessage
}

func (u *Unknown) EventType() Type { return u.Type }
func (u *Unknown) Resource() any   { return u.Raw }
func (*Unknown) isObject()         {}

// PayloadName names a payload for logs and API responses: the variant's Go
// type name, "unknown" for *Unknown, or "none" for a nil payload.
func PayloadName(o Object) string {
	switch o.(type) {
	case nil:
		return "none"
	case *Unknown:
		return "unknown"
	}
	if d, ok := Describe(o.EventType()); ok {
		return d.Go
	}
	return "unknown"
}
