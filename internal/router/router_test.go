package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/router"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

type stubExec struct{}

func (stubExec) Type() string { return "stub" }

func (stubExec) Validate(params map[string]interface{}) error {
	if _, bad := params["bad"]; bad {
		return errors.New("bad param")
	}
	return nil
}

func (stubExec) Execute(_ context.Context, id string, _ map[string]interface{}, in *action.Input) (*action.Result, error) {
	return &action.Result{ActionID: id, RouteID: in.RouteID, Type: "stub", Success: true}, nil
}

func makeEvent(typ event.Type, object string) *event.Event {
	return &event.Event{
		ID:   "evt_test",
		Type: typ,
		Data: event.Data{Object: []byte(object)},
	}
}

func act(id string) []config.ActionDef {
	return []config.ActionDef{{ID: id, Type: "stub"}}
}

func buildTestRouter(t *testing.T) *router.Router {
	t.Helper()
	reg := action.NewRegistry()
	reg.Register(stubExec{})

	cfg := &config.Config{
		Version: "v1",
		Routes: []config.Route{
			{
				ID:         "large_payments",
				Enabled:    true,
				EventTypes: []string{"charge.succeeded", "payment_intent.succeeded"},
				Where: []config.Predicate{
					{Path: "amount", Op: ">=", Value: 10000},
					{Path: "currency", Op: "==", Value: "usd"},
				},
				Actions: act("act_large"),
			},
			{
				ID:         "invoices",
				Enabled:    true,
				EventTypes: []string{"invoice.*"},
				Actions:    act("act_invoice"),
			},
			{
				ID:       "treasury",
				Enabled:  true,
				Families: []string{"treasury"},
				Actions:  act("act_treasury"),
			},
			{
				ID:         "disabled",
				Enabled:    false,
				EventTypes: []string{"*"},
				Actions:    act("act_disabled"),
			},
			{
				ID:         "tagged",
				Enabled:    true,
				EventTypes: []string{"*"},
				Where:      []config.Predicate{{Path: "metadata.team", Op: "matches", Value: "^risk-"}},
				Actions:    act("act_tagged"),
			},
		},
	}
	r, err := router.Build(cfg, reg)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return r
}

func TestMatch_LargePayment(t *testing.T) {
	r := buildTestRouter(t)
	ev := makeEvent("charge.succeeded", `{"object":"charge","amount":25000,"currency":"usd"}`)

	matches, routes, err := r.Match(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 || routes[0] != "large_payments" {
		t.Fatalf("expected [large_payments], got %v", routes)
	}
	if len(matches) != 1 || matches[0].Action.ID != "act_large" {
		t.Errorf("expected act_large, got %+v", matches)
	}
}

func TestMatch_SmallPaymentNoMatch(t *testing.T) {
	r := buildTestRouter(t)
	ev := makeEvent("charge.succeeded", `{"object":"charge","amount":500,"currency":"usd"}`)

	_, routes, err := r.Match(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("expected no routes, got %v", routes)
	}
}

func TestMatch_PrefixPattern(t *testing.T) {
	r := buildTestRouter(t)
	for _, typ := range []event.Type{"invoice.paid", "invoice.payment_failed"} {
		_, routes, _ := r.Match(makeEvent(typ, `{"object":"invoice"}`))
		if len(routes) != 1 || routes[0] != "invoices" {
			t.Errorf("%s: expected [invoices], got %v", typ, routes)
		}
	}
	_, routes, _ := r.Match(makeEvent("invoiceitem.created", `{"object":"invoiceitem"}`))
	if len(routes) != 0 {
		t.Errorf("invoiceitem.created: expected no routes, got %v", routes)
	}
}

func TestMatch_Family(t *testing.T) {
	r := buildTestRouter(t)
	_, routes, _ := r.Match(makeEvent("treasury.received_credit.succeeded", `{"object":"treasury.received_credit"}`))
	if len(routes) != 1 || routes[0] != "treasury" {
		t.Errorf("expected [treasury], got %v", routes)
	}

	// Unknown types belong to no family.
	_, routes, _ = r.Match(makeEvent("treasury.brand_new", `{}`))
	if len(routes) != 0 {
		t.Errorf("expected no routes, got %v", routes)
	}
}

func TestMatch_DisabledRouteSkipped(t *testing.T) {
	r := buildTestRouter(t)
	for _, rt := range r.Routes() {
		if rt.ID() == "disabled" {
			t.Fatal("disabled route was compiled")
		}
	}
}

func TestMatch_PredicateErrorFailsOpen(t *testing.T) {
	r := buildTestRouter(t)
	// metadata.team is a number, so "matches" errors; other routes still match.
	ev := makeEvent("invoice.paid", `{"object":"invoice","metadata":{"team":7}}`)

	_, routes, err := r.Match(ev)
	if err == nil {
		t.Fatal("expected predicate error")
	}
	if len(routes) != 1 || routes[0] != "invoices" {
		t.Errorf("expected [invoices], got %v", routes)
	}
}

func TestMatch_RegexAndOrder(t *testing.T) {
	r := buildTestRouter(t)
	ev := makeEvent("charge.succeeded", `{"object":"charge","amount":10000,"currency":"usd","metadata":{"team":"risk-ops"}}`)

	matches, routes, err := r.Match(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 || routes[0] != "large_payments" || routes[1] != "tagged" {
		t.Fatalf("expected [large_payments tagged], got %v", routes)
	}
	if matches[1].RouteID != "tagged" {
		t.Errorf("expected second match from tagged, got %s", matches[1].RouteID)
	}
}

func TestBuild_Errors(t *testing.T) {
	reg := action.NewRegistry()
	reg.Register(stubExec{})

	tests := map[string]config.Route{
		"unknown action": {ID: "r", Enabled: true, Actions: []config.ActionDef{{ID: "a", Type: "webhook"}}},
		"bad params":     {ID: "r", Enabled: true, Actions: []config.ActionDef{{ID: "a", Type: "stub", Params: map[string]interface{}{"bad": 1}}}},
		"bad regex":      {ID: "r", Enabled: true, Where: []config.Predicate{{Path: "id", Op: "matches", Value: "("}}, Actions: act("a")},
		"bad operand":    {ID: "r", Enabled: true, Where: []config.Predicate{{Path: "amount", Op: ">", Value: "lots"}}, Actions: act("a")},
		"bad operator":   {ID: "r", Enabled: true, Where: []config.Predicate{{Path: "amount", Op: "~"}}, Actions: act("a")},
	}
	for name, rc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := router.Build(&config.Config{Routes: []config.Route{rc}}, reg)
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMatch_When(t *testing.T) {
	reg := action.NewRegistry()
	reg.Register(stubExec{})
	cfg := &config.Config{Routes: []config.Route{
		{
			ID:         "live_usd",
			Enabled:    true,
			EventTypes: []string{"*"},
			When:       `event.livemode == true AND (object.currency == "usd" OR event.family == "treasury")`,
			Actions:    act("a1"),
		},
		{
			ID:         "connect",
			Enabled:    true,
			EventTypes: []string{"*"},
			When:       `event.account exists AND NOT object.customer exists`,
			Actions:    act("a2"),
		},
	}}
	r, err := router.Build(cfg, reg)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	acct := "acct_1"
	tests := []struct {
		name string
		ev   *event.Event
		want []string
	}{
		{
			name: "live usd charge",
			ev:   &event.Event{Type: "charge.succeeded", Livemode: true, Data: event.Data{Object: []byte(`{"currency":"usd","customer":"cus_1"}`)}},
			want: []string{"live_usd"},
		},
		{
			name: "test mode",
			ev:   &event.Event{Type: "charge.succeeded", Data: event.Data{Object: []byte(`{"currency":"usd","customer":"cus_1"}`)}},
			want: nil,
		},
		{
			name: "live treasury in eur",
			ev:   &event.Event{Type: "treasury.received_credit.succeeded", Livemode: true, Data: event.Data{Object: []byte(`{"currency":"eur","customer":"cus_1"}`)}},
			want: []string{"live_usd"},
		},
		{
			name: "connected account without customer",
			ev:   &event.Event{Type: "account.updated", Account: &acct, Data: event.Data{Object: []byte(`{"id":"acct_1"}`)}},
			want: []string{"connect"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, routes, err := r.Match(tt.ev)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(routes) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, routes)
			}
			for i := range routes {
				if routes[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, routes)
				}
			}
		})
	}

	_, err = router.Build(&config.Config{Routes: []config.Route{{ID: "bad", Enabled: true, When: "amount >", Actions: act("a")}}}, reg)
	if err == nil {
		t.Error("expected when parse error")
	}
}
