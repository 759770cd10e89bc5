// Package ledger declares the wire shapes the ledger service emits. Like the
// connector shapes they never escape the mapper.
package ledger

import "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"

// Transaction is the ledger's immutable record of a payment. It reuses the
// connector's composite field shapes where the two services agree on them,
// but carries its own identifier fields and never includes navigation links.
type Transaction struct {
	TransactionID          string                       `json:"transaction_id"`
	Amount                 int64                        `json:"amount"`
	TotalAmount            *int64                       `json:"total_amount"`
	CorporateCardSurcharge *int64                       `json:"corporate_card_surcharge"`
	Fee                    *int64                       `json:"fee"`
	NetAmount              *int64                       `json:"net_amount"`
	Reference              string                       `json:"reference"`
	Description            string                       `json:"description"`
	Email                  string                       `json:"email"`
	State                  connector.ChargeState        `json:"state"`
	ReturnURL              string                       `json:"return_url"`
	PaymentProvider        string                       `json:"payment_provider"`
	CardBrand              string                       `json:"card_brand"`
	CreatedDate            string                       `json:"created_date"`
	Language               string                       `json:"language"`
	DelayedCapture         bool                         `json:"delayed_capture"`
	GatewayTransactionID   string                       `json:"gateway_transaction_id"`
	CardDetails            *connector.CardDetails       `json:"card_details"`
	RefundSummary          *connector.RefundSummary     `json:"refund_summary"`
	SettlementSummary      *connector.SettlementSummary `json:"settlement_summary"`
	Metadata               map[string]any               `json:"metadata"`
}
