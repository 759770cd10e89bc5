package payment_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	connectortypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"
	ledgertypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/ledger"
	"github.com/frahmantamala/payments-gateway/internal/payment"
)

const (
	testBaseURL   = "https://publicapi.test"
	testChargeID  = "ch_ab2341da231434l"
	testReference = "Some reference <script> alert('This is a ?{simple} XSS attack.')</script>"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func testCardDetails() *connectortypes.CardDetails {
	return &connectortypes.CardDetails{
		FirstDigitsCardNumber: strPtr("123456"),
		LastDigitsCardNumber:  strPtr("1234"),
		CardholderName:        "Mr. Payment",
		ExpiryDate:            "12/19",
		CardBrand:             "Mastercard",
		CardType:              strPtr("debit"),
		BillingAddress: &connectortypes.Address{
			Line1:    "line1",
			Line2:    "line2",
			Postcode: "NR2 5 6EG",
			City:     "city",
			Country:  "UK",
		},
	}
}

func testConnectorCharge() *connectortypes.Charge {
	return &connectortypes.Charge{
		ChargeID:             testChargeID,
		Amount:               9999999,
		Reference:            testReference,
		Description:          "Some description",
		Email:                "alice.111@mail.fake",
		State:                connectortypes.ChargeState{Status: "captured", Finished: false},
		ReturnURL:            "https://somewhere.gov.uk/rainbow/1",
		PaymentProvider:      "Sandbox",
		CardBrand:            "Mastercard",
		CreatedDate:          "2010-12-31T22:59:59.132Z",
		Language:             "en",
		DelayedCapture:       true,
		GatewayTransactionID: "gateway-tx-123456",
		CardDetails:          testCardDetails(),
		RefundSummary:        &connectortypes.RefundSummary{Status: "pending", AmountAvailable: 100, AmountSubmitted: 50},
		SettlementSummary: &connectortypes.SettlementSummary{
			CaptureSubmitTime: strPtr("2016-01-02T15:02:00.000Z"),
			CapturedDate:      strPtr("2016-01-02"),
		},
	}
}

func testLedgerTransaction() *ledgertypes.Transaction {
	charge := testConnectorCharge()
	return &ledgertypes.Transaction{
		TransactionID:        charge.ChargeID,
		Amount:               charge.Amount,
		Reference:            charge.Reference,
		Description:          charge.Description,
		Email:                charge.Email,
		State:                charge.State,
		ReturnURL:            charge.ReturnURL,
		PaymentProvider:      charge.PaymentProvider,
		CardBrand:            charge.CardBrand,
		CreatedDate:          charge.CreatedDate,
		Language:             charge.Language,
		DelayedCapture:       charge.DelayedCapture,
		GatewayTransactionID: charge.GatewayTransactionID,
		CardDetails:          testCardDetails(),
		RefundSummary:        charge.RefundSummary,
		SettlementSummary:    charge.SettlementSummary,
	}
}

func asJSONMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	var out map[string]any
	Expect(json.Unmarshal(raw, &out)).To(Succeed())
	return out
}

var _ = Describe("Backend mapper", func() {
	Describe("mapping equivalence", func() {
		It("produces byte-identical canonical payments from equivalent payloads", func() {
			fromConnector := payment.FromConnectorCharge(testBaseURL, testConnectorCharge())
			fromLedger := payment.FromLedgerTransaction(testBaseURL, testLedgerTransaction())

			connectorJSON, err := json.Marshal(fromConnector)
			Expect(err).NotTo(HaveOccurred())
			ledgerJSON, err := json.Marshal(fromLedger)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(connectorJSON)).To(Equal(string(ledgerJSON)))
		})

		It("keeps equivalence when optional fields are present on both sides", func() {
			charge := testConnectorCharge()
			charge.Fee = int64Ptr(5)
			charge.NetAmount = int64Ptr(9999994)
			tx := testLedgerTransaction()
			tx.Fee = int64Ptr(5)
			tx.NetAmount = int64Ptr(9999994)

			Expect(asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))).
				To(Equal(asJSONMap(payment.FromLedgerTransaction(testBaseURL, tx))))
		})
	})

	Describe("optional field omission", func() {
		It("omits fee and net_amount keys when the backend did not report them", func() {
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, testConnectorCharge()))
			Expect(serialized).NotTo(HaveKey("fee"))
			Expect(serialized).NotTo(HaveKey("net_amount"))
			Expect(serialized).NotTo(HaveKey("total_amount"))
			Expect(serialized).NotTo(HaveKey("corporate_card_surcharge"))
		})

		It("emits an explicit zero fee", func() {
			charge := testConnectorCharge()
			charge.Fee = int64Ptr(0)
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			Expect(serialized).To(HaveKeyWithValue("fee", float64(0)))
		})

		It("carries fee and net_amount from a ledger transaction", func() {
			tx := testLedgerTransaction()
			tx.Fee = int64Ptr(5)
			tx.NetAmount = int64Ptr(9999994)
			serialized := asJSONMap(payment.FromLedgerTransaction(testBaseURL, tx))
			Expect(serialized).To(HaveKeyWithValue("fee", float64(5)))
			Expect(serialized).To(HaveKeyWithValue("net_amount", float64(9999994)))
		})

		It("omits metadata when the backend sent none", func() {
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, testConnectorCharge()))
			Expect(serialized).NotTo(HaveKey("metadata"))
		})

		It("passes metadata through verbatim", func() {
			charge := testConnectorCharge()
			charge.Metadata = map[string]any{"reconciled": true, "ledger_code": float64(123), "surcharge": 1.23}
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			Expect(serialized["metadata"]).To(Equal(map[string]any{
				"reconciled":  true,
				"ledger_code": float64(123),
				"surcharge":   1.23,
			}))
		})
	})

	Describe("settlement summary", func() {
		It("omits the whole composite when both sub-fields are absent", func() {
			charge := testConnectorCharge()
			charge.SettlementSummary = &connectortypes.SettlementSummary{}
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			Expect(serialized).NotTo(HaveKey("settlement_summary"))
		})

		It("keeps each sub-field independently", func() {
			charge := testConnectorCharge()
			charge.SettlementSummary = &connectortypes.SettlementSummary{CapturedDate: strPtr("2016-01-02")}
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			summary, ok := serialized["settlement_summary"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(summary).To(HaveKeyWithValue("captured_date", "2016-01-02"))
			Expect(summary).NotTo(HaveKey("capture_submit_time"))
		})
	})

	Describe("card details", func() {
		It("keeps the billing_address key with a null value when the source had none", func() {
			charge := testConnectorCharge()
			charge.CardDetails.BillingAddress = nil
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			details, ok := serialized["card_details"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(details).To(HaveKey("billing_address"))
			Expect(details["billing_address"]).To(BeNil())
		})

		It("emits null card digits when absent from the source", func() {
			charge := testConnectorCharge()
			charge.CardDetails.FirstDigitsCardNumber = nil
			charge.CardDetails.LastDigitsCardNumber = nil
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			details := serialized["card_details"].(map[string]any)
			Expect(details).To(HaveKey("first_digits_card_number"))
			Expect(details["first_digits_card_number"]).To(BeNil())
			Expect(details["last_digits_card_number"]).To(BeNil())
		})

		It("emits a null card_type with the key present", func() {
			charge := testConnectorCharge()
			charge.CardDetails.CardType = nil
			serialized := asJSONMap(payment.FromConnectorCharge(testBaseURL, charge))
			details := serialized["card_details"].(map[string]any)
			Expect(details).To(HaveKey("card_type"))
			Expect(details["card_type"]).To(BeNil())
		})
	})

	Describe("link derivation", func() {
		It("always derives self, events and refunds links", func() {
			mapped := payment.FromConnectorCharge(testBaseURL, testConnectorCharge())
			Expect(mapped.Links.Self.Href).To(Equal(testBaseURL + "/v1/payments/" + testChargeID))
			Expect(mapped.Links.Self.Method).To(Equal("GET"))
			Expect(mapped.Links.Events.Href).To(Equal(testBaseURL + "/v1/payments/" + testChargeID + "/events"))
			Expect(mapped.Links.Refunds.Href).To(Equal(testBaseURL + "/v1/payments/" + testChargeID + "/refunds"))
		})

		It("derives a cancel link only while the payment is unfinished", func() {
			charge := testConnectorCharge()
			charge.State = connectortypes.ChargeState{Status: "captured", Finished: false}
			Expect(payment.FromConnectorCharge(testBaseURL, charge).Links.Cancel).NotTo(BeNil())

			charge.State = connectortypes.ChargeState{Status: "success", Finished: true}
			Expect(payment.FromConnectorCharge(testBaseURL, charge).Links.Cancel).To(BeNil())
		})

		It("derives a capture link pointing at {self}/capture while capture is awaited", func() {
			charge := testConnectorCharge()
			charge.State = connectortypes.ChargeState{Status: "submitted", Finished: false}
			mapped := payment.FromConnectorCharge(testBaseURL, charge)
			Expect(mapped.Links.Capture).NotTo(BeNil())
			Expect(mapped.Links.Capture.Href).To(Equal(testBaseURL + "/v1/payments/" + testChargeID + "/capture"))
			Expect(mapped.Links.Capture.Method).To(Equal("POST"))

			charge.State = connectortypes.ChargeState{Status: "captured", Finished: false}
			Expect(payment.FromConnectorCharge(testBaseURL, charge).Links.Capture).To(BeNil())
		})

		It("passes connector navigation links through", func() {
			charge := testConnectorCharge()
			charge.Links = []connectortypes.Link{
				{Rel: "next_url", Href: "https://frontend.test/secure/ch_1", Method: "GET"},
				{
					Rel:    "next_url_post",
					Href:   "https://frontend.test/secure",
					Method: "POST",
					Type:   "application/x-www-form-urlencoded",
					Params: map[string]string{"chargeTokenId": "token_1234567asdf"},
				},
			}
			mapped := payment.FromConnectorCharge(testBaseURL, charge)
			Expect(mapped.Links.NextURL.Href).To(Equal("https://frontend.test/secure/ch_1"))
			Expect(mapped.Links.NextURLPost.Type).To(Equal("application/x-www-form-urlencoded"))
			Expect(mapped.Links.NextURLPost.Params).To(HaveKeyWithValue("chargeTokenId", "token_1234567asdf"))
		})

		It("never derives navigation links from ledger transactions", func() {
			mapped := payment.FromLedgerTransaction(testBaseURL, testLedgerTransaction())
			Expect(mapped.Links.NextURL).To(BeNil())
			Expect(mapped.Links.NextURLPost).To(BeNil())
		})
	})

	Describe("event mapping", func() {
		It("normalizes connector event timestamps to millisecond precision", func() {
			events := &connectortypes.ChargeEvents{
				ChargeID: testChargeID,
				Events: []connectortypes.ChargeEvent{
					{
						ChargeID: testChargeID,
						State:    connectortypes.ChargeState{Status: "created", Finished: false},
						Updated:  "2010-12-31T22:59:59.132012345Z",
					},
				},
			}
			mapped := payment.EventsFromConnector(testBaseURL, events)
			Expect(mapped.PaymentID).To(Equal(testChargeID))
			Expect(mapped.Events).To(HaveLen(1))
			Expect(mapped.Events[0].Updated).To(Equal("2010-12-31T22:59:59.132Z"))
			Expect(mapped.Events[0].Links.PaymentURL.Href).To(Equal(testBaseURL + "/v1/payments/" + testChargeID))
			Expect(mapped.Links.Self.Href).To(Equal(testBaseURL + "/v1/payments/" + testChargeID + "/events"))
		})

		It("maps ledger event history to the same canonical shape", func() {
			events := &ledgertypes.TransactionEvents{
				TransactionID: testChargeID,
				Events: []ledgertypes.TransactionEvent{
					{
						TransactionID: testChargeID,
						State:         connectortypes.ChargeState{Status: "created", Finished: false},
						Timestamp:     "2010-12-31T22:59:59.132Z",
					},
				},
			}
			mapped := payment.EventsFromLedger(testBaseURL, events)
			Expect(mapped.Events).To(HaveLen(1))
			Expect(mapped.Events[0].State.Status).To(Equal("created"))
			Expect(mapped.Events[0].Updated).To(Equal("2010-12-31T22:59:59.132Z"))
		})
	})

	Describe("text passthrough", func() {
		It("does not alter or escape reference and description", func() {
			mapped := payment.FromConnectorCharge(testBaseURL, testConnectorCharge())
			Expect(mapped.Reference).To(Equal(testReference))
		})
	})
})
