package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gyaneshwarpardhi/payhook/internal/condition"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// predicate is a compiled where clause.
type predicate struct {
	path  string
	op    condition.Operator
	value interface{}
	re    *regexp.Regexp
}

func compilePredicate(path, op string, value interface{}) (*predicate, error) {
	p := &predicate{path: path, op: condition.Operator(op), value: value}
	switch {
	case !condition.Valid(p.op):
		return nil, fmt.Errorf("unknown operator: %s", op)
	case condition.Numeric(p.op):
		if _, ok := condition.ToFloat64(value); !ok {
			return nil, fmt.Errorf("operator %s requires a numeric value, got %T", op, value)
		}
	case p.op == condition.OpMatches:
		pattern, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("matches: value must be a string pattern, got %T", value)
		}
		re, err := condition.CompilePattern(pattern)
		if err != nil {
			return nil, err
		}
		p.re = re
	}
	return p, nil
}

// eval applies the predicate to the member at p.path of obj. An absent
// member only satisfies "exists" negatively.
func (p *predicate) eval(obj gjson.Result) (bool, error) {
	res := obj.Get(p.path)
	if p.op == condition.OpExists {
		return res.Exists(), nil
	}
	if !res.Exists() {
		return false, nil
	}
	if p.re != nil {
		if res.Type != gjson.String {
			return false, fmt.Errorf("matches: %s must be a string, got %s", p.path, res.Type)
		}
		return p.re.MatchString(res.Str), nil
	}
	return condition.Compare(p.op, res.Value(), p.value)
}

// scope resolves "when" expression paths against one event. Paths under
// "event." address envelope members; anything else, with or without an
// "object." prefix, addresses data.object.
type scope struct {
	ev  *event.Event
	obj gjson.Result
}

func (s scope) Lookup(path string) (interface{}, bool) {
	if member, ok := strings.CutPrefix(path, "event."); ok {
		return s.envelope(member)
	}
	res := s.obj.Get(strings.TrimPrefix(path, "object."))
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}

func (s scope) envelope(member string) (interface{}, bool) {
	ev := s.ev
	switch member {
	case "id":
		return ev.ID, true
	case "type":
		return string(ev.Type), true
	case "livemode":
		return ev.Livemode, true
	case "created":
		return float64(ev.Created), true
	case "pending_webhooks":
		return float64(ev.PendingWebhooks), true
	case "account":
		if ev.Account == nil {
			return nil, false
		}
		return *ev.Account, true
	case "api_version":
		if ev.APIVersion == nil {
			return nil, false
		}
		return *ev.APIVersion, true
	case "family":
		f, ok := event.FamilyOf(ev.Type)
		if !ok {
			return nil, false
		}
		return string(f), true
	case "payload":
		return event.PayloadName(ev.Payload), true
	}
	return nil, false
}
