// Package connector declares the wire shapes the connector service emits.
// They exist only to be decoded and immediately mapped to the canonical
// model; nothing above the mapper ever sees them.
package connector

// Charge is the connector's representation of a live payment.
type Charge struct {
	ChargeID               string             `json:"charge_id"`
	Amount                 int64              `json:"amount"`
	TotalAmount            *int64             `json:"total_amount"`
	CorporateCardSurcharge *int64             `json:"corporate_card_surcharge"`
	Fee                    *int64             `json:"fee"`
	NetAmount              *int64             `json:"net_amount"`
	Reference              string             `json:"reference"`
	Description            string             `json:"description"`
	Email                  string             `json:"email"`
	State                  ChargeState        `json:"state"`
	ReturnURL              string             `json:"return_url"`
	PaymentProvider        string             `json:"payment_provider"`
	CardBrand              string             `json:"card_brand"`
	CreatedDate            string             `json:"created_date"`
	Language               string             `json:"language"`
	DelayedCapture         bool               `json:"delayed_capture"`
	GatewayTransactionID   string             `json:"gateway_transaction_id"`
	CardDetails            *CardDetails       `json:"card_details"`
	RefundSummary          *RefundSummary     `json:"refund_summary"`
	SettlementSummary      *SettlementSummary `json:"settlement_summary"`
	Metadata               map[string]any     `json:"metadata"`
	Links                  []Link             `json:"links"`
}

type ChargeState struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

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

type SettlementSummary struct {
	CaptureSubmitTime *string `json:"capture_submit_time"`
	CapturedDate      *string `json:"captured_date"`
}

// Link is one entry of the connector's navigation link array. Only rels
// next_url and next_url_post are carried through to the canonical model.
type Link struct {
	Rel    string            `json:"rel"`
	Href   string            `json:"href"`
	Method string            `json:"method"`
	Type   string            `json:"type"`
	Params map[string]string `json:"params"`
}

// FindLink returns the link with the given rel, or nil.
func FindLink(links []Link, rel string) *Link {
	for i := range links {
		if links[i].Rel == rel {
			return &links[i]
		}
	}
	return nil
}
