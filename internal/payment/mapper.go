package payment

import (
	"fmt"
	"net/http"

	connectortypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"
	ledgertypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/ledger"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
)

// chargeFields is the shared builder input both adapters feed. Mapping from
// either source must produce identical canonical payments for logically
// equivalent payloads; only navLinks differ, because ledger responses never
// carry navigation links.
type chargeFields struct {
	paymentID              string
	amount                 int64
	totalAmount            *int64
	corporateCardSurcharge *int64
	fee                    *int64
	netAmount              *int64
	reference              string
	description            string
	email                  string
	state                  connectortypes.ChargeState
	returnURL              string
	paymentProvider        string
	cardBrand              string
	createdDate            string
	language               string
	delayedCapture         bool
	providerID             string
	cardDetails            *connectortypes.CardDetails
	refundSummary          *connectortypes.RefundSummary
	settlementSummary      *connectortypes.SettlementSummary
	metadata               map[string]any
	navLinks               []connectortypes.Link
}

// FromConnectorCharge maps a connector charge to the canonical payment.
func FromConnectorCharge(baseURL string, charge *connectortypes.Charge) *paymentmodel.Payment {
	return buildPayment(baseURL, chargeFields{
		paymentID:              charge.ChargeID,
		amount:                 charge.Amount,
		totalAmount:            charge.TotalAmount,
		corporateCardSurcharge: charge.CorporateCardSurcharge,
		fee:                    charge.Fee,
		netAmount:              charge.NetAmount,
		reference:              charge.Reference,
		description:            charge.Description,
		email:                  charge.Email,
		state:                  charge.State,
		returnURL:              charge.ReturnURL,
		paymentProvider:        charge.PaymentProvider,
		cardBrand:              charge.CardBrand,
		createdDate:            charge.CreatedDate,
		language:               charge.Language,
		delayedCapture:         charge.DelayedCapture,
		providerID:             charge.GatewayTransactionID,
		cardDetails:            charge.CardDetails,
		refundSummary:          charge.RefundSummary,
		settlementSummary:      charge.SettlementSummary,
		metadata:               charge.Metadata,
		navLinks:               charge.Links,
	})
}

// FromLedgerTransaction maps a ledger transaction to the canonical payment.
func FromLedgerTransaction(baseURL string, tx *ledgertypes.Transaction) *paymentmodel.Payment {
	return buildPayment(baseURL, chargeFields{
		paymentID:              tx.TransactionID,
		amount:                 tx.Amount,
		totalAmount:            tx.TotalAmount,
		corporateCardSurcharge: tx.CorporateCardSurcharge,
		fee:                    tx.Fee,
		netAmount:              tx.NetAmount,
		reference:              tx.Reference,
		description:            tx.Description,
		email:                  tx.Email,
		state:                  tx.State,
		returnURL:              tx.ReturnURL,
		paymentProvider:        tx.PaymentProvider,
		cardBrand:              tx.CardBrand,
		createdDate:            tx.CreatedDate,
		language:               tx.Language,
		delayedCapture:         tx.DelayedCapture,
		providerID:             tx.GatewayTransactionID,
		cardDetails:            tx.CardDetails,
		refundSummary:          tx.RefundSummary,
		settlementSummary:      tx.SettlementSummary,
		metadata:               tx.Metadata,
	})
}

func buildPayment(baseURL string, in chargeFields) *paymentmodel.Payment {
	p := &paymentmodel.Payment{
		PaymentID:              in.paymentID,
		Amount:                 in.amount,
		TotalAmount:            in.totalAmount,
		CorporateCardSurcharge: in.corporateCardSurcharge,
		Fee:                    in.fee,
		NetAmount:              in.netAmount,
		Reference:              in.reference,
		Description:            in.description,
		Email:                  in.email,
		State: paymentmodel.State{
			Status:   in.state.Status,
			Finished: in.state.Finished,
			Code:     in.state.Code,
			Message:  in.state.Message,
		},
		ReturnURL:       in.returnURL,
		PaymentProvider: in.paymentProvider,
		CardBrand:       in.cardBrand,
		CreatedDate:     in.createdDate,
		Language:        in.language,
		DelayedCapture:  in.delayedCapture,
		ProviderID:      in.providerID,
		Metadata:        in.metadata,
	}

	if in.cardDetails != nil {
		p.CardDetails = mapCardDetails(in.cardDetails)
	}
	if in.refundSummary != nil {
		p.RefundSummary = &paymentmodel.RefundSummary{
			Status:          in.refundSummary.Status,
			AmountAvailable: in.refundSummary.AmountAvailable,
			AmountSubmitted: in.refundSummary.AmountSubmitted,
		}
	}
	if in.settlementSummary != nil {
		summary := paymentmodel.SettlementSummary{
			CaptureSubmitTime: in.settlementSummary.CaptureSubmitTime,
			CapturedDate:      in.settlementSummary.CapturedDate,
		}
		if !summary.Empty() {
			p.SettlementSummary = &summary
		}
	}

	p.Links = deriveLinks(baseURL, in)
	return p
}

func mapCardDetails(details *connectortypes.CardDetails) *paymentmodel.CardDetails {
	mapped := &paymentmodel.CardDetails{
		FirstDigitsCardNumber: details.FirstDigitsCardNumber,
		LastDigitsCardNumber:  details.LastDigitsCardNumber,
		CardholderName:        details.CardholderName,
		ExpiryDate:            details.ExpiryDate,
		CardBrand:             details.CardBrand,
		CardType:              details.CardType,
	}
	if details.BillingAddress != nil {
		mapped.BillingAddress = &paymentmodel.Address{
			Line1:    details.BillingAddress.Line1,
			Line2:    details.BillingAddress.Line2,
			Postcode: details.BillingAddress.Postcode,
			City:     details.BillingAddress.City,
			Country:  details.BillingAddress.Country,
		}
	}
	return mapped
}

// deriveLinks builds the canonical link set. Derivation is state-driven:
// cancel appears only while the payment is unfinished and capture only while
// it awaits a capture request. Navigation links pass through only when the
// mapped source supplied them.
func deriveLinks(baseURL string, in chargeFields) paymentmodel.Links {
	self := PaymentURL(baseURL, in.paymentID)

	links := paymentmodel.Links{
		Self:    &paymentmodel.Link{Href: self, Method: http.MethodGet},
		Events:  &paymentmodel.Link{Href: self + "/events", Method: http.MethodGet},
		Refunds: &paymentmodel.Link{Href: self + "/refunds", Method: http.MethodGet},
	}
	if !in.state.Finished {
		links.Cancel = &paymentmodel.Link{Href: self + "/cancel", Method: http.MethodPost}
	}
	if in.state.Status == paymentmodel.StatusAwaitingCapture {
		links.Capture = &paymentmodel.Link{Href: self + "/capture", Method: http.MethodPost}
	}
	if next := connectortypes.FindLink(in.navLinks, "next_url"); next != nil {
		links.NextURL = &paymentmodel.Link{Href: next.Href, Method: next.Method}
	}
	if nextPost := connectortypes.FindLink(in.navLinks, "next_url_post"); nextPost != nil {
		links.NextURLPost = &paymentmodel.PostLink{
			Href:   nextPost.Href,
			Method: nextPost.Method,
			Type:   nextPost.Type,
			Params: nextPost.Params,
		}
	}
	return links
}

// PaymentURL is the public location of a payment resource.
func PaymentURL(baseURL, paymentID string) string {
	return fmt.Sprintf("%s/v1/payments/%s", baseURL, paymentID)
}

// EventsFromConnector maps connector charge events to the canonical event
// history.
func EventsFromConnector(baseURL string, events *connectortypes.ChargeEvents) *paymentmodel.Events {
	mapped := make([]paymentmodel.Event, 0, len(events.Events))
	for _, ev := range events.Events {
		mapped = append(mapped, mapEvent(baseURL, events.ChargeID, ev.State, ev.Updated))
	}
	return eventsEnvelope(baseURL, events.ChargeID, mapped)
}

// EventsFromLedger maps ledger transaction events to the canonical event
// history.
func EventsFromLedger(baseURL string, events *ledgertypes.TransactionEvents) *paymentmodel.Events {
	mapped := make([]paymentmodel.Event, 0, len(events.Events))
	for _, ev := range events.Events {
		mapped = append(mapped, mapEvent(baseURL, events.TransactionID, ev.State, ev.Timestamp))
	}
	return eventsEnvelope(baseURL, events.TransactionID, mapped)
}

func mapEvent(baseURL, paymentID string, state connectortypes.ChargeState, updated string) paymentmodel.Event {
	return paymentmodel.Event{
		PaymentID: paymentID,
		State: paymentmodel.State{
			Status:   state.Status,
			Finished: state.Finished,
			Code:     state.Code,
			Message:  state.Message,
		},
		Updated: paymentmodel.FormatEventTimestamp(updated),
		Links: paymentmodel.EventLinks{
			PaymentURL: &paymentmodel.Link{Href: PaymentURL(baseURL, paymentID), Method: http.MethodGet},
		},
	}
}

func eventsEnvelope(baseURL, paymentID string, events []paymentmodel.Event) *paymentmodel.Events {
	return &paymentmodel.Events{
		PaymentID: paymentID,
		Events:    events,
		Links: paymentmodel.SelfLinks{
			Self: &paymentmodel.Link{Href: PaymentURL(baseURL, paymentID) + "/events", Method: http.MethodGet},
		},
	}
}
