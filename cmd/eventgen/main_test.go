package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"payment_intent.succeeded":             "PaymentIntentSucceeded",
		"customer.tax_id.created":              "CustomerTaxIDCreated",
		"billing_portal.configuration.updated": "BillingPortalConfigurationUpdated",
		"hosted_invoice_url":                   "HostedInvoiceURL",
		"ip_address":                           "IPAddress",
		"test_helpers.test_clock.advancing":    "TestHelpersTestClockAdvancing",
		"invoiceitem.created":                  "InvoiceitemCreated",
		"treasury.outbound_payment.posted":     "TreasuryOutboundPaymentPosted",
	}
	for in, want := range tests {
		assert.Equal(t, want, goName(in), in)
	}
}

func TestRender_RepositorySchema(t *testing.T) {
	s, err := loadSchema(filepath.Join("..", "..", "schema", "events.yaml"))
	require.NoError(t, err)

	files, err := render(s)
	require.NoError(t, err)
	assert.Len(t, files, 2*len(s.Families))

	fset := token.NewFileSet()
	for name, src := range files {
		_, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		require.NoError(t, err, name)

		isCore := strings.HasSuffix(name, "_core.go")
		assert.Equal(t, !isCore, strings.HasPrefix(string(src), "//go:build "), name)
	}

	core := string(files[filepath.Join("pkg", "event", "zz_generated_core.go")])
	assert.Contains(t, core, `TypePaymentIntentSucceeded`)
	assert.Contains(t, core, `tagged(TypeCustomerSourceCreated, "CustomerSourceCreated", resource.CustomerSources`)
}

func TestRender_MatchesCommittedFiles(t *testing.T) {
	s, err := loadSchema(filepath.Join("..", "..", "schema", "events.yaml"))
	require.NoError(t, err)

	files, err := render(s)
	require.NoError(t, err)

	for name, src := range files {
		onDisk, err := os.ReadFile(filepath.Join("..", "..", name))
		require.NoError(t, err, name)
		assert.Equal(t, string(src), string(onDisk), "%s is stale; run go generate ./...", name)
	}
}

func TestSchemaValidate(t *testing.T) {
	s := &Schema{
		Families: []Family{
			{
				Name:      "core",
				Resources: []Resource{{Name: "Charge", Object: "charge", Fields: []Field{{Name: "amount", Type: "int"}}}},
				Events:    []Event{{Type: "charge.succeeded", Payload: "Charge"}},
			},
		},
	}
	require.NoError(t, s.validate())

	bad := []struct {
		name   string
		mutate func(*Schema)
	}{
		{"bad type", func(s *Schema) { s.Families[0].Events[0].Type = "Charge" }},
		{"duplicate type", func(s *Schema) { s.Families[0].Events = append(s.Families[0].Events, s.Families[0].Events[0]) }},
		{"unknown payload", func(s *Schema) { s.Families[0].Events[0].Payload = "Refund" }},
		{"payload and sum", func(s *Schema) { s.Families[0].Events[0].Sum = "CustomerSource" }},
		{"unknown field type", func(s *Schema) { s.Families[0].Resources[0].Fields[0].Type = "decimal" }},
		{"no core", func(s *Schema) { s.Families[0].Name = "billing" }},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			cp := &Schema{Families: []Family{{
				Name:      "core",
				Resources: []Resource{{Name: "Charge", Object: "charge", Fields: []Field{{Name: "amount", Type: "int"}}}},
				Events:    []Event{{Type: "charge.succeeded", Payload: "Charge"}},
			}}}
			tt.mutate(cp)
			assert.Error(t, cp.validate())
		})
	}
}
