package payment

// Links are derived from payment state, never copied from backend payloads,
// with the exception of next_url and next_url_post which only a connector
// payload can supply.
type Links struct {
	Self        *Link     `json:"self,omitempty"`
	Events      *Link     `json:"events,omitempty"`
	Refunds     *Link     `json:"refunds,omitempty"`
	Cancel      *Link     `json:"cancel,omitempty"`
	Capture     *Link     `json:"capture,omitempty"`
	NextURL     *Link     `json:"next_url,omitempty"`
	NextURLPost *PostLink `json:"next_url_post,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Method string `json:"method"`
}

// PostLink carries a navigation target submitted as a form post, including
// the parameters the consumer must send.
type PostLink struct {
	Href   string            `json:"href"`
	Method string            `json:"method"`
	Type   string            `json:"type,omitempty"`
	Params map[string]string `json:"params,omitempty"`
}
