package payment

// StatusAwaitingCapture is the external status of a payment waiting for an
// explicit capture request. Its presence drives the capture link.
const StatusAwaitingCapture = "submitted"

// External state vocabularies differ by account payment type: the same
// literal may be valid for one account type and not the other.
var cardExternalStates = map[string]struct{}{
	"created":   {},
	"started":   {},
	"submitted": {},
	"success":   {},
	"failed":    {},
	"cancelled": {},
	"error":     {},
}

var directDebitExternalStates = map[string]struct{}{
	"pending":   {},
	"success":   {},
	"failed":    {},
	"cancelled": {},
}

func IsValidCardExternalState(state string) bool {
	_, ok := cardExternalStates[state]
	return ok
}

func IsValidDirectDebitExternalState(state string) bool {
	_, ok := directDebitExternalStates[state]
	return ok
}
