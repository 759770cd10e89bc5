package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/payments-gateway/internal"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
	"github.com/frahmantamala/payments-gateway/internal/payment"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
)

type stubService struct {
	payment      *paymentmodel.Payment
	events       *paymentmodel.Events
	results      *payment.SearchResults
	err          error
	lastID       string
	lastStrategy string
	lastCriteria payment.SearchCriteria
}

func (s *stubService) GetPayment(_ context.Context, _ *publicauth.Account, paymentID, strategy string) (*paymentmodel.Payment, error) {
	s.lastID = paymentID
	s.lastStrategy = strategy
	return s.payment, s.err
}

func (s *stubService) GetPaymentEvents(_ context.Context, _ *publicauth.Account, paymentID, strategy string) (*paymentmodel.Events, error) {
	s.lastID = paymentID
	s.lastStrategy = strategy
	return s.events, s.err
}

func (s *stubService) SearchPayments(_ context.Context, _ *publicauth.Account, criteria payment.SearchCriteria) (*payment.SearchResults, error) {
	s.lastCriteria = criteria
	return s.results, s.err
}

var _ = Describe("Payment handler", func() {
	var (
		service *stubService
		handler *payment.Handler
		router  *chi.Mux
	)

	authenticated := func(r *http.Request) *http.Request {
		account := &publicauth.Account{ID: "42", PaymentType: publicauth.PaymentTypeCard}
		return r.WithContext(publicauth.ContextWithAccount(r.Context(), account))
	}

	BeforeEach(func() {
		service = &stubService{}
		handler = payment.NewHandler(service, quietLogger())
		router = chi.NewRouter()
		router.Get("/v1/payments", handler.SearchPayments)
		router.Get("/v1/payments/{paymentId}", handler.GetPayment)
		router.Get("/v1/payments/{paymentId}/events", handler.GetPaymentEvents)
	})

	Describe("GET /v1/payments/{paymentId}", func() {
		It("serves the payment with the route's payment id and strategy hint", func() {
			service.payment = payment.FromConnectorCharge(testBaseURL, testConnectorCharge())

			req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/payments/"+testChargeID, nil))
			req.Header.Set("X-Ledger", "ledger-only")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(service.lastID).To(Equal(testChargeID))
			Expect(service.lastStrategy).To(Equal("ledger-only"))
			Expect(rec.Body.String()).To(ContainSubstring(`"payment_id":"` + testChargeID + `"`))
		})

		It("renders only code and description on a not-found", func() {
			service.err = internal.NotFoundError(internal.OpGetPayment)

			req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/payments/ch_missing", nil))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(rec.Body.String()).To(MatchJSON(`{"code":"P0200","description":"Not found"}`))
		})

		It("rejects a request with no authenticated account", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/payments/"+testChargeID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(ContainSubstring(`"code":"P0900"`))
		})
	})

	Describe("GET /v1/payments/{paymentId}/events", func() {
		It("serves the event history envelope", func() {
			service.events = &paymentmodel.Events{
				PaymentID: testChargeID,
				Events:    []paymentmodel.Event{},
				Links: paymentmodel.SelfLinks{
					Self: &paymentmodel.Link{Href: testBaseURL + "/v1/payments/" + testChargeID + "/events", Method: "GET"},
				},
			}

			req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/payments/"+testChargeID+"/events", nil))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"payment_id":"` + testChargeID + `"`))
		})
	})

	Describe("GET /v1/payments", func() {
		It("lifts the query string into search criteria", func() {
			service.results = &payment.SearchResults{Results: []paymentmodel.Payment{}}

			req := authenticated(httptest.NewRequest(http.MethodGet,
				"/v1/payments?state=success&reference=ref-1&page=2&display_size=50", nil))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.lastCriteria.State).To(Equal("success"))
			Expect(service.lastCriteria.Reference).To(Equal("ref-1"))
			Expect(service.lastCriteria.Page).To(Equal("2"))
			Expect(service.lastCriteria.DisplaySize).To(Equal("50"))
		})

		It("renders an aggregated validation failure as 422", func() {
			service.err = internal.SearchValidationError([]string{"state", "to_date"})

			req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/payments?state=nope&to_date=nope", nil))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(rec.Body.String()).To(ContainSubstring(`"code":"P0401"`))
			Expect(rec.Body.String()).To(ContainSubstring("Invalid parameters: state, to_date."))
		})
	})
})
