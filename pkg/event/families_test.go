//go:build !payhook_minimal

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

func TestFamilies_DefaultBuildHasAll(t *testing.T) {
	assert.Equal(t, event.AllFamilies, event.Families())
	assert.Len(t, event.KnownTypes(), 248)
}

func TestFamilyOf(t *testing.T) {
	tests := map[event.Type]event.Family{
		event.TypeChargeSucceeded:                     event.FamilyCore,
		event.TypeInvoicePaid:                         event.FamilyBilling,
		event.TypeReviewOpened:                        event.FamilyFraud,
		event.TypeIssuingCardCreated:                  event.FamilyMisc,
		event.TypeCheckoutSessionCompleted:            event.FamilyPayment,
		event.TypeTerminalReaderActionSucceeded:       event.FamilyTerminal,
		event.TypeTreasuryReceivedCreditSucceeded:     event.FamilyTreasury,
		event.TypeCustomerSubscriptionTrialWillEnd:    event.FamilyBilling,
		event.TypeAccountExternalAccountCreated:       event.FamilyCore,
		event.TypeTestHelpersTestClockInternalFailure: event.FamilyMisc,
	}
	for typ, want := range tests {
		got, ok := event.FamilyOf(typ)
		require.True(t, ok, typ)
		assert.Equal(t, want, got, typ)
	}

	_, ok := event.FamilyOf("brand.new.event")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	d, ok := event.Describe(event.TypeAccountExternalAccountUpdated)
	require.True(t, ok)
	assert.Equal(t, event.FamilyCore, d.Family)
	assert.Equal(t, "AccountExternalAccountUpdated", d.Go)
	assert.Equal(t, []string{"bank_account", "card"}, d.Object)

	d, ok = event.Describe(event.TypeSourceTransactionCreated)
	require.True(t, ok)
	assert.Equal(t, []string{"source_transaction"}, d.Object)

	assert.True(t, event.IsFamily("treasury"))
	assert.False(t, event.IsFamily("identity"))
}
