package payment

import (
	"net/url"
	"strconv"

	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
)

// SearchCriteria is the bag of optional search parameters exactly as
// supplied by the caller. Values stay strings until validated; "absent" and
// "malformed" must remain distinguishable.
type SearchCriteria struct {
	Reference   string
	Email       string
	CardBrand   string
	State       string
	FromDate    string
	ToDate      string
	Page        string
	DisplaySize string
	AgreementID string
}

// SearchCriteriaFromQuery lifts the raw query string into criteria.
func SearchCriteriaFromQuery(query url.Values) SearchCriteria {
	return SearchCriteria{
		Reference:   query.Get("reference"),
		Email:       query.Get("email"),
		CardBrand:   query.Get("card_brand"),
		State:       query.Get("state"),
		FromDate:    query.Get("from_date"),
		ToDate:      query.Get("to_date"),
		Page:        query.Get("page"),
		DisplaySize: query.Get("display_size"),
		AgreementID: query.Get("agreement_id"),
	}
}

// toLedgerQuery renders the validated criteria in the ledger's query
// vocabulary. Only supplied fields are forwarded.
func (c SearchCriteria) toLedgerQuery() url.Values {
	query := url.Values{}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	set("reference", c.Reference)
	set("email", c.Email)
	set("card_brand", c.CardBrand)
	set("state", c.State)
	set("from_date", c.FromDate)
	set("to_date", c.ToDate)
	set("page", c.Page)
	set("display_size", c.DisplaySize)
	set("agreement_id", c.AgreementID)
	return query
}

// pageNumber returns the requested page, defaulting to the first.
func (c SearchCriteria) pageNumber() int {
	if n, err := strconv.Atoi(c.Page); err == nil && n > 0 {
		return n
	}
	return 1
}

// pageSize returns the requested display size, defaulting to the maximum.
func (c SearchCriteria) pageSize() int {
	if n, err := strconv.Atoi(c.DisplaySize); err == nil && n > 0 {
		return n
	}
	return maxDisplaySize
}

// SearchResults is the public search response envelope.
type SearchResults struct {
	Total   int                    `json:"total"`
	Count   int                    `json:"count"`
	Page    int                    `json:"page"`
	Results []paymentmodel.Payment `json:"results"`
	Links   SearchLinks            `json:"_links"`
}

type SearchLinks struct {
	Self      *paymentmodel.Link `json:"self,omitempty"`
	FirstPage *paymentmodel.Link `json:"first_page,omitempty"`
	LastPage  *paymentmodel.Link `json:"last_page,omitempty"`
	PrevPage  *paymentmodel.Link `json:"prev_page,omitempty"`
	NextPage  *paymentmodel.Link `json:"next_page,omitempty"`
}
