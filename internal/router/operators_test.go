package router

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestPredicateEval(t *testing.T) {
	obj := gjson.Parse(`{"amount":2500,"currency":"eur","livemode":true,"tags":["vip","eu"],"email":"a@example.com","nothing":null}`)

	tests := []struct {
		path  string
		op    string
		value interface{}
		want  bool
	}{
		{"amount", "==", 2500, true},
		{"amount", "!=", 2500, false},
		{"amount", ">", 1000, true},
		{"amount", "<=", 2499.5, false},
		{"currency", "==", "eur", true},
		{"livemode", "==", true, true},
		{"tags", "contains", "vip", true},
		{"tags", "contains", "us", false},
		{"email", "contains", "@example", true},
		{"email", "matches", `^[a-z]+@`, true},
		{"nothing", "exists", nil, true},
		{"missing", "exists", nil, false},
		{"missing", "==", "x", false},
	}
	for _, tt := range tests {
		p, err := compilePredicate(tt.path, tt.op, tt.value)
		if err != nil {
			t.Fatalf("%s %s: compile: %v", tt.path, tt.op, err)
		}
		got, err := p.eval(obj)
		if err != nil {
			t.Errorf("%s %s %v: unexpected error: %v", tt.path, tt.op, tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s %s %v = %v, want %v", tt.path, tt.op, tt.value, got, tt.want)
		}
	}
}

func TestPredicateEval_TypeErrors(t *testing.T) {
	obj := gjson.Parse(`{"currency":"eur","amount":3}`)

	p, _ := compilePredicate("currency", ">", 1)
	if _, err := p.eval(obj); err == nil {
		t.Error("expected numeric comparison error")
	}
	p, _ = compilePredicate("amount", "contains", "3")
	if _, err := p.eval(obj); err == nil {
		t.Error("expected contains error")
	}
}
