//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/tests/common/authtest"
	"hotel-frontdesk/tests/common/dbtest"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	vouchersURL = "/api/vouchers"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) loginReceptionist() string {
	return authtest.LoginUser(s.T(), s.Router, dbtest.ReceptionistEmail, dbtest.ReceptionistPassword)
}

func (s *BookingSuite) loginManager() string {
	return authtest.LoginUser(s.T(), s.Router, dbtest.ManagerEmail, dbtest.ManagerPassword)
}

func (s *BookingSuite) createBooking(token string, checkIn, checkOut time.Time, roomChargeCents, taxCents int64) response.BookingResponse {
	t := s.T()
	t.Helper()

	reqBody := request.CreateBookingRequest{
		RoomNumber:      "204",
		GuestName:       "Carlos Mendoza",
		GuestCount:      2,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		RoomChargeCents: roomChargeCents,
		TaxAmountCents:  taxCents,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "pending", created.Status)
	return created
}

func (s *BookingSuite) submitPayment(token string, bookingID uuid.UUID, amountCents int64, method string) response.BookingResponse {
	t := s.T()
	t.Helper()

	url := fmt.Sprintf("%s/%s/payments", bookingsURL, bookingID)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
		request.SubmitPaymentRequest{AmountCents: amountCents, Method: method}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated response.BookingResponse
	httptest.DecodeResponseBody(t, w.Body, &updated)
	return updated
}

// =============================================================================
// TestStayLifecycle - create, pay, add extras, check out
// =============================================================================

func (s *BookingSuite) TestStayLifecycle() {
	s.Run("Normal case: paid stay with extras checks out cleanly", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(-24*time.Hour), now.Add(48*time.Hour), 500_000, 50_000)
		require.Equal(t, int64(550_000), created.Summary.TotalFinal)
		require.Equal(t, int64(550_000), created.Summary.TotalPending)
		dbtest.SetBookingStatus(t, s.DB, created.ID, "checked_in")

		// Minibar consumption during the stay.
		chargesURL := fmt.Sprintf("%s/%s/extra-charges", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, chargesURL,
			request.ExtraChargeRequest{Description: "Minibar", AmountCents: 20_000, Quantity: 3}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var charged response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &charged)
		require.Equal(t, int64(60_000), charged.Summary.TotalExtras)
		require.Equal(t, int64(610_000), charged.Summary.TotalPending)

		updated := s.submitPayment(token, created.ID, 400_000, "cash")
		require.Equal(t, int64(400_000), updated.Summary.TotalPaid)
		require.False(t, updated.Summary.IsFullyPaid)

		updated = s.submitPayment(token, created.ID, 210_000, "card")
		require.True(t, updated.Summary.IsFullyPaid)
		require.Equal(t, int64(0), updated.Summary.TotalPending)

		checkoutURL := fmt.Sprintf("%s/%s/checkout", bookingsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var checkout response.CheckoutResponse
		httptest.DecodeResponseBody(t, w.Body, &checkout)
		require.Equal(t, "completed", checkout.Booking.Status)
		require.NotNil(t, checkout.Booking.ActualCheckOut)
		require.Empty(t, checkout.Warnings)

		// Checkout queues the bill and the room release; the cash payment
		// queued a shift-ledger entry earlier.
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "bill_generation"))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "room_status"))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "shift_ledger"))
	})

	s.Run("Error case: payment above the pending balance is rejected", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(24*time.Hour), now.Add(72*time.Hour), 300_000, 0)

		url := fmt.Sprintf("%s/%s/payments", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.SubmitPaymentRequest{AmountCents: 300_001, Method: "card"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "payment exceeds pending balance")
	})

	s.Run("Error case: unknown booking returns 404", func() {
		t := s.T()
		token := s.loginReceptionist()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

// =============================================================================
// TestCheckout - balance gate, early departure, overdue forgiveness
// =============================================================================

func (s *BookingSuite) TestCheckout() {
	s.Run("Error case: outstanding balance blocks checkout", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(-24*time.Hour), now.Add(24*time.Hour), 500_000, 0)
		dbtest.SetBookingStatus(t, s.DB, created.ID, "checked_in")
		s.submitPayment(token, created.ID, 100_000, "card")

		url := fmt.Sprintf("%s/%s/checkout", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CheckoutRequest{}, token)
		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "Outstanding balance")
	})

	s.Run("Normal case: early departure prorates the unused nights", func() {
		t := s.T()
		token := s.loginReceptionist()

		// Five contracted nights, leaving after the second. Times are pinned to
		// the session time zone so night counting lands on the same calendar
		// dates the database reports.
		now := time.Now().In(time.FixedZone("-0500", -5*60*60))
		created := s.createBooking(token, now.Add(-48*time.Hour), now.Add(72*time.Hour), 500_000, 0)
		dbtest.SetBookingStatus(t, s.DB, created.ID, "checked_in")
		s.submitPayment(token, created.ID, 200_000, "card")

		url := fmt.Sprintf("%s/%s/checkout", bookingsURL, created.ID)
		actual := now
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CheckoutRequest{ActualCheckOut: &actual, EarlyCheckoutReason: "Viaje adelantado"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var checkout response.CheckoutResponse
		httptest.DecodeResponseBody(t, w.Body, &checkout)
		require.Equal(t, "completed", checkout.Booking.Status)
		require.Equal(t, int64(300_000), checkout.Booking.DiscountAmount)
		require.True(t, checkout.Booking.Summary.IsFullyPaid)
	})

	s.Run("Normal case: forced checkout forgives an old overdue balance", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(-10*24*time.Hour), now.Add(-6*24*time.Hour), 500_000, 0)
		dbtest.SetBookingStatus(t, s.DB, created.ID, "checked_in")
		s.submitPayment(token, created.ID, 100_000, "card")

		url := fmt.Sprintf("%s/%s/checkout", bookingsURL, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CheckoutRequest{}, token)
		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "Outstanding balance")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CheckoutRequest{ForceCheckout: true}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var checkout response.CheckoutResponse
		httptest.DecodeResponseBody(t, w.Body, &checkout)
		require.Equal(t, "completed", checkout.Booking.Status)
		require.Equal(t, int64(400_000), checkout.Booking.DiscountAmount)
		require.True(t, checkout.Booking.Summary.IsFullyPaid)
	})
}

// =============================================================================
// TestCancellation - assessment, credit voucher issuance and redemption
// =============================================================================

func (s *BookingSuite) TestCancellation() {
	s.Run("Normal case: early cancellation issues a credit voucher redeemable on a new booking", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(5*24*time.Hour), now.Add(8*24*time.Hour), 500_000, 0)
		s.submitPayment(token, created.ID, 200_000, "card")

		assessURL := fmt.Sprintf("%s/%s/cancellation", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, assessURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var assessment response.CancellationAssessmentResponse
		httptest.DecodeResponseBody(t, w.Body, &assessment)
		require.True(t, assessment.CanCancel)
		require.Equal(t, "full_credit", assessment.Refund)
		require.Equal(t, int64(200_000), assessment.EstimatedCredit)

		cancelURL := fmt.Sprintf("%s/%s/cancel", bookingsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			request.CancelBookingRequest{Reason: "Cambio de planes"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.CancelResponse
		httptest.DecodeResponseBody(t, w.Body, &cancelled)
		require.Equal(t, "cancelled", cancelled.Booking.Status)
		require.NotNil(t, cancelled.Voucher)
		require.Equal(t, int64(200_000), cancelled.Voucher.Amount)
		require.Equal(t, "active", cancelled.Voucher.Status)
		code := cancelled.Voucher.Code

		// Spend the credit on a fresh booking.
		next := s.createBooking(token, now.Add(10*24*time.Hour), now.Add(12*24*time.Hour), 400_000, 0)
		redeemURL := fmt.Sprintf("%s/%s/redeem", vouchersURL, code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemVoucherRequest{BookingID: next.ID}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var redeemed response.RedeemResponse
		httptest.DecodeResponseBody(t, w.Body, &redeemed)
		require.Equal(t, "used", redeemed.Voucher.Status)
		require.Equal(t, int64(200_000), redeemed.Booking.Summary.TotalPaid)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"/"+code, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already been used")
	})

	s.Run("Normal case: late cancellation forfeits payments", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(24*time.Hour), now.Add(72*time.Hour), 500_000, 0)
		s.submitPayment(token, created.ID, 100_000, "card")

		cancelURL := fmt.Sprintf("%s/%s/cancel", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			request.CancelBookingRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.CancelResponse
		httptest.DecodeResponseBody(t, w.Body, &cancelled)
		require.Equal(t, "cancelled", cancelled.Booking.Status)
		require.Nil(t, cancelled.Voucher)
		require.Contains(t, cancelled.Warning, "No reembolsable")
	})

	s.Run("Error case: cancellation after check-in is denied", func() {
		t := s.T()
		token := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(token, now.Add(-24*time.Hour), now.Add(48*time.Hour), 500_000, 0)
		dbtest.SetBookingStatus(t, s.DB, created.ID, "checked_in")

		cancelURL := fmt.Sprintf("%s/%s/cancel", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			request.CancelBookingRequest{}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Ya registrada entrada/salida")
	})
}

// =============================================================================
// TestPermissions - manager-only operations
// =============================================================================

func (s *BookingSuite) TestPermissions() {
	s.Run("Error case: receptionist cannot apply discounts or issue vouchers", func() {
		t := s.T()
		receptionist := s.loginReceptionist()

		now := time.Now().UTC()
		created := s.createBooking(receptionist, now.Add(24*time.Hour), now.Add(72*time.Hour), 500_000, 0)

		discountURL := fmt.Sprintf("%s/%s/discount", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, discountURL,
			request.DiscountRequest{AmountCents: 50_000, Reason: "Cortesia"}, receptionist)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL,
			request.IssueVoucherRequest{AmountCents: 50_000, OriginalBookingID: created.ID}, receptionist)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Normal case: manager applies a courtesy discount", func() {
		t := s.T()
		receptionist := s.loginReceptionist()
		manager := s.loginManager()

		now := time.Now().UTC()
		created := s.createBooking(receptionist, now.Add(24*time.Hour), now.Add(72*time.Hour), 500_000, 0)

		discountURL := fmt.Sprintf("%s/%s/discount", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, discountURL,
			request.DiscountRequest{AmountCents: 50_000, Reason: "Cortesia gerencia"}, manager)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, int64(50_000), updated.DiscountAmount)
		require.Equal(t, int64(450_000), updated.Summary.TotalPending)
	})
}
