package payment

import (
	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/core/common/validation"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
)

const (
	maxReferenceLength = 255
	maxEmailLength     = 254
	maxCardBrandLength = 20
	maxAgreementLength = 26
	maxDisplaySize     = 500
	maxPage            = 1<<31 - 1
)

// searchFieldPriority fixes the order failing fields are reported in,
// independent of input order or evaluation order.
var searchFieldPriority = []string{
	"state",
	"reference",
	"email",
	"card_brand",
	"from_date",
	"to_date",
	"page",
	"display_size",
	"agreement",
}

// ValidateSearchCriteria evaluates every supplied field against its own rule
// and either accepts the criteria or returns one aggregated error listing
// all failing fields in priority order. The state vocabulary depends on the
// account's payment type.
func ValidateSearchCriteria(account *publicauth.Account, criteria SearchCriteria) *internal.APIError {
	stateRule := paymentmodel.IsValidCardExternalState
	if account.PaymentType == publicauth.PaymentTypeDirectDebit {
		stateRule = paymentmodel.IsValidDirectDebitExternalState
	}

	v := validation.New()
	v.Check("state", criteria.State, validation.MemberOf(stateRule))
	v.Check("reference", criteria.Reference, validation.MaxLength(maxReferenceLength))
	v.Check("email", criteria.Email, validation.MaxLength(maxEmailLength))
	v.Check("card_brand", criteria.CardBrand, validation.MaxLength(maxCardBrandLength))
	v.Check("from_date", criteria.FromDate, validation.ZonedDateTime())
	v.Check("to_date", criteria.ToDate, validation.ZonedDateTime())
	v.Check("page", criteria.Page, validation.IntInRange(1, maxPage))
	v.Check("display_size", criteria.DisplaySize, validation.IntInRange(1, maxDisplaySize))
	v.Check("agreement", criteria.AgreementID, validation.MaxLength(maxAgreementLength))

	if failed := v.Failed(searchFieldPriority); len(failed) > 0 {
		return internal.SearchValidationError(failed)
	}
	return nil
}
