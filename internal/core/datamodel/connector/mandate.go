package connector

// MandateRequest is the body sent to the connector to create a direct debit
// mandate.
type MandateRequest struct {
	ReturnURL        string `json:"return_url"`
	ServiceReference string `json:"service_reference"`
	Description      string `json:"description,omitempty"`
}

// Mandate is the connector's representation of a direct debit mandate.
type Mandate struct {
	MandateID        string       `json:"mandate_id"`
	MandateReference string       `json:"mandate_reference"`
	ServiceReference string       `json:"service_reference"`
	ReturnURL        string       `json:"return_url"`
	CreatedDate      string       `json:"created_date"`
	PaymentProvider  string       `json:"payment_provider"`
	Description      string       `json:"description"`
	State            MandateState `json:"state"`
	Links            []Link       `json:"links"`
}

type MandateState struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Details  string `json:"details"`
}
