package router

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/condition"
	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// Match records an action selected for an event.
type Match struct {
	RouteID string
	Action  config.ActionDef
}

// Route is a compiled config.Route.
type Route struct {
	id       string
	exact    map[event.Type]struct{}
	prefixes []string
	all      bool
	families map[event.Family]struct{}
	where    []*predicate
	when     condition.Expr
	actions  []config.ActionDef
	source   config.Route
}

// ID returns the route ID.
func (r *Route) ID() string { return r.id }

// Config returns the route as configured.
func (r *Route) Config() config.Route { return r.source }

// Router holds the enabled routes in config order. It is immutable once built.
type Router struct {
	routes []*Route
}

// Build compiles the enabled routes of cfg. Every action type must be
// registered in reg and accept its params.
func Build(cfg *config.Config, reg *action.Registry) (*Router, error) {
	r := &Router{}
	for _, rc := range cfg.Routes {
		if !rc.Enabled {
			continue
		}
		rt, err := compile(rc, reg)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", rc.ID, err)
		}
		r.routes = append(r.routes, rt)
	}
	return r, nil
}

func compile(rc config.Route, reg *action.Registry) (*Route, error) {
	rt := &Route{
		id:      rc.ID,
		exact:   make(map[event.Type]struct{}),
		actions: rc.Actions,
		source:  rc,
	}
	for _, p := range rc.EventTypes {
		switch {
		case p == "*":
			rt.all = true
		case strings.HasSuffix(p, ".*"):
			rt.prefixes = append(rt.prefixes, strings.TrimSuffix(p, "*"))
		default:
			rt.exact[event.Type(p)] = struct{}{}
		}
	}
	if len(rc.EventTypes) == 0 {
		rt.all = true
	}
	if len(rc.Families) > 0 {
		rt.families = make(map[event.Family]struct{}, len(rc.Families))
		for _, f := range rc.Families {
			rt.families[event.Family(f)] = struct{}{}
		}
	}
	for i, w := range rc.Where {
		p, err := compilePredicate(w.Path, w.Op, w.Value)
		if err != nil {
			return nil, fmt.Errorf("where[%d]: %w", i, err)
		}
		rt.where = append(rt.where, p)
	}
	if rc.When != "" {
		expr, err := condition.Parse(rc.When)
		if err != nil {
			return nil, fmt.Errorf("when: %w", err)
		}
		rt.when = expr
	}
	for _, a := range rc.Actions {
		if _, err := reg.Bind(a.Type, a.Params); err != nil {
			return nil, fmt.Errorf("action %s: %w", a.ID, err)
		}
	}
	return rt, nil
}

// Routes returns the compiled routes in config order.
func (r *Router) Routes() []*Route { return r.routes }

// Match evaluates every route against ev and returns the selected actions
// and the IDs of the routes that matched. A route whose predicates fail to
// evaluate is skipped; the first such error is returned alongside the matches.
func (r *Router) Match(ev *event.Event) ([]Match, []string, error) {
	obj := gjson.ParseBytes(ev.Data.Object)

	var (
		matches []Match
		matched []string
		errs    []error
	)
	for _, rt := range r.routes {
		ok, err := rt.matches(ev, obj)
		if err != nil {
			errs = append(errs, fmt.Errorf("route %s: %w", rt.id, err))
			continue
		}
		if !ok {
			continue
		}
		matched = append(matched, rt.id)
		for _, a := range rt.actions {
			matches = append(matches, Match{RouteID: rt.id, Action: a})
		}
	}

	var firstErr error
	if len(errs) > 0 {
		firstErr = errs[0]
	}
	return matches, matched, firstErr
}

func (rt *Route) matches(ev *event.Event, obj gjson.Result) (bool, error) {
	if !rt.matchesType(ev.Type) {
		return false, nil
	}
	if rt.families != nil {
		f, ok := event.FamilyOf(ev.Type)
		if !ok {
			return false, nil
		}
		if _, ok := rt.families[f]; !ok {
			return false, nil
		}
	}
	for _, p := range rt.where {
		ok, err := p.eval(obj)
		if err != nil || !ok {
			return false, err
		}
	}
	if rt.when != nil {
		return condition.Evaluate(rt.when, scope{ev: ev, obj: obj})
	}
	return true, nil
}

func (rt *Route) matchesType(t event.Type) bool {
	if rt.all {
		return true
	}
	if _, ok := rt.exact[t]; ok {
		return true
	}
	for _, p := range rt.prefixes {
		if strings.HasPrefix(string(t), p) {
			return true
		}
	}
	return false
}
