package resource

import "github.com/gyaneshwarpardhi/payhook/pkg/codec"

// CustomerSource is a payment source attached to a customer. It is one of
// *BankAccount, *Card or *Source, selected by the payload's "object" member.
type CustomerSource interface {
	isCustomerSource()
}

func (*BankAccount) isCustomerSource() {}
func (*Card) isCustomerSource()        {}
func (*Source) isCustomerSource()      {}

// CustomerSources decodes CustomerSource values.
var CustomerSources = codec.NewTagged[CustomerSource]("CustomerSource", map[string]codec.VariantFunc[CustomerSource]{
	"bank_account": codec.Variant(func(v *BankAccount) CustomerSource { return v }),
	"card":         codec.Variant(func(v *Card) CustomerSource { return v }),
	"source":       codec.Variant(func(v *Source) CustomerSource { return v }),
})

// ExternalAccount is a payout destination of a connected account: a
// *BankAccount or a *Card.
type ExternalAccount interface {
	isExternalAccount()
}

func (*BankAccount) isExternalAccount() {}
func (*Card) isExternalAccount()        {}

// ExternalAccounts decodes ExternalAccount values.
var ExternalAccounts = codec.NewTagged[ExternalAccount]("ExternalAccount", map[string]codec.VariantFunc[ExternalAccount]{
	"bank_account": codec.Variant(func(v *BankAccount) ExternalAccount { return v }),
	"card":         codec.Variant(func(v *Card) ExternalAccount { return v }),
})
