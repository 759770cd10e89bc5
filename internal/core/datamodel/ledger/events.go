package ledger

import "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"

// TransactionEvents is the ledger's event history envelope.
type TransactionEvents struct {
	TransactionID string             `json:"transaction_id"`
	Events        []TransactionEvent `json:"events"`
}

type TransactionEvent struct {
	TransactionID string                `json:"transaction_id"`
	State         connector.ChargeState `json:"state"`
	Timestamp     string                `json:"timestamp"`
}
