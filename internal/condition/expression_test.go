package condition

import (
	"reflect"
	"testing"
)

// mapScope implements Scope for tests.
type mapScope map[string]interface{}

func (m mapScope) Lookup(path string) (interface{}, bool) {
	v, ok := m[path]
	return v, ok
}

type evalCase struct {
	name    string
	expr    string
	scope   Scope
	want    bool
	wantErr bool
}

func TestEvaluate(t *testing.T) {
	cases := []evalCase{
		// Numeric comparisons
		{
			name:  "gt true",
			expr:  "object.amount > 1000",
			scope: mapScope{"object.amount": float64(1500)},
			want:  true,
		},
		{
			name:  "gt false",
			expr:  "object.amount > 1000",
			scope: mapScope{"object.amount": float64(500)},
			want:  false,
		},
		{
			name:  "gte equal",
			expr:  "object.amount >= 1000",
			scope: mapScope{"object.amount": float64(1000)},
			want:  true,
		},
		{
			name:  "lt decimal",
			expr:  "object.amount < 10.5",
			scope: mapScope{"object.amount": float64(10)},
			want:  true,
		},
		// String equality
		{
			name:  "eq string true",
			expr:  `object.currency == "usd"`,
			scope: mapScope{"object.currency": "usd"},
			want:  true,
		},
		{
			name:  "neq string single quotes",
			expr:  `object.currency != 'usd'`,
			scope: mapScope{"object.currency": "eur"},
			want:  true,
		},
		// Boolean and null
		{
			name:  "bool eq false literal",
			expr:  "event.livemode == false",
			scope: mapScope{"event.livemode": true},
			want:  false,
		},
		{
			name:  "null literal",
			expr:  "object.customer == null",
			scope: mapScope{"object.customer": nil},
			want:  true,
		},
		// AND / OR
		{
			name:  "AND both true",
			expr:  `object.currency == "usd" AND object.amount > 500`,
			scope: mapScope{"object.currency": "usd", "object.amount": float64(1000)},
			want:  true,
		},
		{
			name:  "OR first true",
			expr:  `object.currency == "usd" or object.amount > 500`,
			scope: mapScope{"object.currency": "usd", "object.amount": float64(1)},
			want:  true,
		},
		{
			name:  "parentheses",
			expr:  `event.livemode == true AND (object.currency == "usd" OR object.currency == "cad")`,
			scope: mapScope{"event.livemode": true, "object.currency": "cad"},
			want:  true,
		},
		// NOT
		{
			name:  "NOT true",
			expr:  `NOT object.amount > 1000`,
			scope: mapScope{"object.amount": float64(500)},
			want:  true,
		},
		// contains
		{
			name:  "contains substring",
			expr:  `object.description contains "refund"`,
			scope: mapScope{"object.description": "partial refund issued"},
			want:  true,
		},
		{
			name:  "contains array element",
			expr:  `object.payment_method_types contains "card"`,
			scope: mapScope{"object.payment_method_types": []interface{}{"card", "link"}},
			want:  true,
		},
		// matches (regex)
		{
			name:  "matches true",
			expr:  `object.receipt_email matches ".*@example\\.com"`,
			scope: mapScope{"object.receipt_email": "user@example.com"},
			want:  true,
		},
		// exists and absent fields
		{
			name:  "exists true",
			expr:  `object.customer exists`,
			scope: mapScope{"object.customer": "cus_1"},
			want:  true,
		},
		{
			name:  "absent field compares false",
			expr:  "object.missing > 10",
			scope: mapScope{},
			want:  false,
		},
		{
			name:  "NOT exists",
			expr:  "NOT object.customer exists",
			scope: mapScope{},
			want:  true,
		},
		// Error cases
		{
			name:    "numeric compare of string",
			expr:    "object.currency > 10",
			scope:   mapScope{"object.currency": "usd"},
			wantErr: true,
		},
		{
			name:    "contains on number",
			expr:    `object.amount contains "1"`,
			scope:   mapScope{"object.amount": float64(100)},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ast, err := Parse(tc.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.expr, err)
			}
			got, err := Evaluate(ast, tc.scope)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (result=%v)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		`"unterminated`,
		`object.amount 1000`, // missing operator
		``,
		`object.amount = 1`,
		`(object.amount > 1`,
		`"x" exists`,
		`object.id matches 42`,
		`object.id matches "("`,
		`object.amount > 1 object.currency`,
	}
	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if err == nil {
				t.Errorf("expected parse error for %q, got nil", expr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	ast, err := Parse(`object.amount > 1 AND (event.type == "charge.succeeded" OR NOT object.customer exists)`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"object.amount", "event.type", "object.customer"}
	if got := Fields(ast); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}
