package connector

// ChargeEvents is the connector's event history envelope for one charge.
type ChargeEvents struct {
	ChargeID string        `json:"charge_id"`
	Events   []ChargeEvent `json:"events"`
}

type ChargeEvent struct {
	ChargeID string      `json:"charge_id"`
	State    ChargeState `json:"state"`
	Updated  string      `json:"updated"`
}
