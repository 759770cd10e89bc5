package payment

import "time"

// isoMillisecondPrecision is the wire format for event timestamps: ISO-8601
// instants truncated to millisecond precision.
const isoMillisecondPrecision = "2006-01-02T15:04:05.000Z07:00"

type Event struct {
	PaymentID string     `json:"payment_id"`
	State     State      `json:"state"`
	Updated   string     `json:"updated"`
	Links     EventLinks `json:"_links"`
}

type EventLinks struct {
	PaymentURL *Link `json:"payment_url,omitempty"`
}

// Events is the response envelope for a payment's event history.
type Events struct {
	PaymentID string    `json:"payment_id"`
	Events    []Event   `json:"events"`
	Links     SelfLinks `json:"_links"`
}

type SelfLinks struct {
	Self *Link `json:"self,omitempty"`
}

// FormatEventTimestamp normalizes a backend event timestamp to millisecond
// precision. Unparseable values pass through verbatim rather than being
// dropped; the gateway does not own the backends' clock discipline.
func FormatEventTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format(isoMillisecondPrecision)
}
