package payment

// Payment is the canonical public payment resource. It is the only shape
// resource handlers and API consumers ever see; neither backend shape leaks
// through it.
//
// Optional integer fields are pointers so that "absent" and "zero" stay
// distinguishable end to end: a nil pointer omits the key, an explicit zero
// serializes as 0.
type Payment struct {
	PaymentID              string             `json:"payment_id"`
	Amount                 int64              `json:"amount"`
	TotalAmount            *int64             `json:"total_amount,omitempty"`
	CorporateCardSurcharge *int64             `json:"corporate_card_surcharge,omitempty"`
	Fee                    *int64             `json:"fee,omitempty"`
	NetAmount              *int64             `json:"net_amount,omitempty"`
	Reference              string             `json:"reference"`
	Description            string             `json:"description"`
	Email                  string             `json:"email"`
	State                  State              `json:"state"`
	ReturnURL              string             `json:"return_url"`
	PaymentProvider        string             `json:"payment_provider"`
	CardBrand              string             `json:"card_brand"`
	CreatedDate            string             `json:"created_date"`
	Language               string             `json:"language"`
	DelayedCapture         bool               `json:"delayed_capture"`
	ProviderID             string             `json:"provider_id"`
	CardDetails            *CardDetails       `json:"card_details,omitempty"`
	RefundSummary          *RefundSummary     `json:"refund_summary,omitempty"`
	SettlementSummary      *SettlementSummary `json:"settlement_summary,omitempty"`
	Metadata               map[string]any     `json:"metadata,omitempty"`
	Links                  Links              `json:"_links"`
}

// State is the composite payment state. Code and Message only appear for
// finished-with-error states.
type State struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

// CardDetails carries the card and cardholder information reported by the
// backend. First/last digits and card type are independently nullable leaf
// fields; the keys always appear, serializing to null when absent.
// BillingAddress is present or absent as a whole, but its key always appears
// with a null value when the source provided no address.
type CardDetails struct {
	FirstDigitsCardNumber *string  `json:"first_digits_card_number"`
	LastDigitsCardNumber  *string  `json:"last_digits_card_number"`
	CardholderName        string   `json:"cardholder_name"`
	ExpiryDate            string   `json:"expiry_date"`
	CardBrand             string   `json:"card_brand"`
	CardType              *string  `json:"card_type"`
	BillingAddress        *Address `json:"billing_address"`
}

type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

type RefundSummary struct {
	Status          string `json:"status"`
	AmountAvailable int64  `json:"amount_available"`
	AmountSubmitted int64  `json:"amount_submitted"`
}

// SettlementSummary sub-fields are each independently omitted when the
// backend value is absent. The composite itself is only attached to a
// Payment when at least one sub-field is present.
type SettlementSummary struct {
	CaptureSubmitTime *string `json:"capture_submit_time,omitempty"`
	CapturedDate      *string `json:"captured_date,omitempty"`
}

// Empty reports whether both sub-fields are absent, in which case the whole
// composite must be omitted from the canonical payment.
func (s SettlementSummary) Empty() bool {
	return s.CaptureSubmitTime == nil && s.CapturedDate == nil
}
