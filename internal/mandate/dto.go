package mandate

import (
	"github.com/frahmantamala/payments-gateway/internal"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
)

const maxReferenceLength = 255

// CreateRequest is the public body for setting up a direct debit mandate.
type CreateRequest struct {
	ReturnURL   string `json:"return_url"`
	Reference   string `json:"reference"`
	Description string `json:"description,omitempty"`
}

func (r *CreateRequest) Validate() *internal.APIError {
	if r.ReturnURL == "" {
		return internal.MandateValidationError("Missing mandatory attribute: return_url")
	}
	if r.Reference == "" {
		return internal.MandateValidationError("Missing mandatory attribute: reference")
	}
	if len(r.Reference) > maxReferenceLength {
		return internal.MandateValidationError("Invalid attribute value: reference. Must be less than or equal to 255 characters length")
	}
	return nil
}

// Mandate is the canonical public mandate resource.
type Mandate struct {
	MandateID       string `json:"mandate_id"`
	ProviderID      string `json:"provider_id"`
	Reference       string `json:"reference"`
	ReturnURL       string `json:"return_url"`
	PaymentProvider string `json:"payment_provider"`
	CreatedDate     string `json:"created_date"`
	Description     string `json:"description,omitempty"`
	State           State  `json:"state"`
	Links           Links  `json:"_links"`
}

type State struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Details  string `json:"details,omitempty"`
}

type Links struct {
	Self        *paymentmodel.Link     `json:"self,omitempty"`
	Payments    *paymentmodel.Link     `json:"payments,omitempty"`
	NextURL     *paymentmodel.Link     `json:"next_url,omitempty"`
	NextURLPost *paymentmodel.PostLink `json:"next_url_post,omitempty"`
}
