package ledger

// SearchPage is the ledger's paginated search envelope.
type SearchPage struct {
	Total   int           `json:"total"`
	Count   int           `json:"count"`
	Page    int           `json:"page"`
	Results []Transaction `json:"results"`
	Links   SearchLinks   `json:"_links"`
}

type SearchLinks struct {
	Self      *PageLink `json:"self"`
	FirstPage *PageLink `json:"first_page"`
	LastPage  *PageLink `json:"last_page"`
	PrevPage  *PageLink `json:"prev_page"`
	NextPage  *PageLink `json:"next_page"`
}

type PageLink struct {
	Href string `json:"href"`
}
