//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/common/testutil"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Set("staff_role", "receptionist")
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/payments", authMiddleware, s.handler.SubmitPayment)
	s.router.POST("/bookings/:id/extra-charges", authMiddleware, s.handler.AddExtraCharge)
	s.router.POST("/bookings/:id/discount", authMiddleware, s.handler.ApplyDiscount)
	s.router.POST("/bookings/:id/checkout", authMiddleware, s.handler.Checkout)
	s.router.GET("/bookings/:id/cancellation", authMiddleware, s.handler.AssessCancellation)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomNumber, response.RoomNumber)
		s.Equal(returnView.Summary.TotalFinal, response.Summary.TotalFinal)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: room_number (required)", mutate: testutil.Field("room_number", nil)},
			{name: "missing field: guest_name (required)", mutate: testutil.Field("guest_name", nil)},
			{name: "guest_count below minimum (0)", mutate: testutil.Field("guest_count", 0)},
			{name: "room_charge_cents below minimum (0)", mutate: testutil.Field("room_charge_cents", 0)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 422 on a stay the domain rejects", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("check-in must be before check-out"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "check-in must be before check-out")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().
		WithRoomCharge(500_000).
		WithCompletedPayment(300_000).
		WithExtraCharge("Minibar", 30_000, 2).
		BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with the reconciled summary", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(int64(300_000), response.Summary.TotalPaid)
		s.Equal(int64(60_000), response.Summary.TotalExtras)
		s.Equal(int64(260_000), response.Summary.TotalPending)
		s.False(response.Summary.IsFullyPaid)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestSubmitPayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmitPayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payments"

	reqBody := map[string]any{"amount_cents": 200_000, "method": "cash"}
	returnView := builder.NewBookingBuilder().
		WithRoomCharge(500_000).
		WithCompletedPayment(200_000).
		BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with the updated booking", func() {
		s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), bookingID, commands.SubmitPaymentParams{
			AmountCents: 200_000,
			Method:      "cash",
		}).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(200_000), response.Summary.TotalPaid)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing amount", mutate: testutil.Field("amount_cents", nil)},
			{name: "zero amount", mutate: testutil.Field("amount_cents", 0)},
			{name: "unknown method", mutate: testutil.Field("method", "crypto")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.Mark(errors.New("no rows"), errs.ErrBookingNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "payment exceeds pending balance",
				commandsError:  errs.Mark(errs.New("payment exceeds pending balance"), errs.ErrValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "payment exceeds pending balance",
			},
			{
				name:           "terminal booking",
				commandsError:  errs.Mark(booking.ErrBookingTerminal, errs.ErrInvalidState),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking state does not allow this operation",
			},
			{
				name:           "concurrent modification",
				commandsError:  errs.Mark(errors.New("booking version changed"), errs.ErrConcurrencyConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "modified concurrently",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), bookingID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestApplyDiscount
// ================================================================================

func (s *BookingHandlerTestSuite) TestApplyDiscount() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/discount"

	reqBody := map[string]any{"amount_cents": 100_000, "reason": "Cliente frecuente"}
	returnView := builder.NewBookingBuilder().
		WithRoomCharge(500_000).
		WithDiscount(100_000, "Cliente frecuente").
		BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with the discounted booking", func() {
		s.mockCommands.EXPECT().ApplyManualDiscount(gomock.Any(), bookingID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(100_000), response.DiscountAmount)
		s.Equal(int64(400_000), response.TotalAmount)
	})

	s.Run("error: 422 when the discount exceeds the headroom", func() {
		s.mockCommands.EXPECT().ApplyManualDiscount(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.Mark(booking.ErrInvalidDiscount, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reason", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckout() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/checkout"

	completedView := builder.NewBookingBuilder().
		WithStatus(booking.StatusCompleted).
		WithRoomCharge(500_000).
		WithCompletedPayment(500_000).
		BuildView()
	completedView.ID = bookingID

	s.Run("success: returns 200 OK with the completed booking", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), bookingID, gomock.Any()).
			Return(&commands.CheckoutResult{Booking: completedView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Booking.Status)
		s.Empty(response.Warnings)
	})

	s.Run("success: surfaces follow-up warnings without failing", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), bookingID, gomock.Any()).
			Return(&commands.CheckoutResult{
				Booking:  completedView,
				Warnings: []string{"bill generation could not be requested"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Warnings, 1)
	})

	s.Run("success: forwards the force flag and custom departure", func() {
		actual := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), bookingID, gomock.AssignableToTypeOf(commands.CheckoutParams{})).
			DoAndReturn(func(_ any, _ uuid.UUID, p commands.CheckoutParams) (*commands.CheckoutResult, error) {
				s.True(p.ForceCheckout)
				s.NotNil(p.ActualCheckOut)
				s.True(actual.Equal(*p.ActualCheckOut))
				return &commands.CheckoutResult{Booking: completedView}, nil
			}).Times(1)

		body := map[string]any{"force_checkout": true, "actual_check_out": actual.Format(time.RFC3339)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "outstanding balance",
				commandsError:  errs.Mark(booking.ErrBalanceOutstanding, errs.ErrPaymentRequired),
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Outstanding balance",
			},
			{
				name:           "status not eligible",
				commandsError:  errs.Mark(booking.ErrStatusNotEligible, errs.ErrInvalidState),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking state",
			},
			{
				name:           "departure outside the window",
				commandsError:  errs.Mark(booking.ErrCheckoutDateInvalid, errs.ErrInvalidDate),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Checkout date",
			},
			{
				name:           "concurrent modification",
				commandsError:  errs.Mark(errors.New("booking version changed"), errs.ErrConcurrencyConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "modified concurrently",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), bookingID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAssessCancellation
// ================================================================================

func (s *BookingHandlerTestSuite) TestAssessCancellation() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancellation"

	s.Run("success: returns the refund preview", func() {
		s.mockCommands.EXPECT().AssessCancellation(gomock.Any(), bookingID).
			Return(&booking.CancellationAssessment{
				CanCancel:       true,
				Refund:          booking.RefundFullCredit,
				AppliedRule:     "Credito total: cancelacion con 3 dias de anticipacion (minimo 2)",
				EstimatedCredit: booking.NewMoney(200_000),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CancellationAssessmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.CanCancel)
		s.Equal("full_credit", response.Refund)
		s.Equal(int64(200_000), response.EstimatedCredit)
	})

	s.Run("success: a denial is still a 200 preview", func() {
		s.mockCommands.EXPECT().AssessCancellation(gomock.Any(), bookingID).
			Return(&booking.CancellationAssessment{
				CanCancel: false,
				Reason:    "Ya registrada entrada/salida",
				Refund:    booking.RefundNone,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CancellationAssessmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CanCancel)
		s.Equal("Ya registrada entrada/salida", response.Reason)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	cancelledView := builder.NewBookingBuilder().
		WithStatus(booking.StatusCancelled).
		BuildView()
	cancelledView.ID = bookingID

	s.Run("success: returns the cancelled booking and the credit voucher", func() {
		voucherView := builder.NewVoucherBuilder().BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(&commands.CancelResult{
				Booking:     cancelledView,
				Voucher:     voucherView,
				AppliedRule: "Credito total: cancelacion con 3 dias de anticipacion (minimo 2)",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		var response resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Booking.Status)
		s.NotNil(response.Voucher)
		s.Equal(voucherView.Code, response.Voucher.Code)
	})

	s.Run("success: forfeit cancellation carries a warning, no voucher", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(&commands.CancelResult{
				Booking:     cancelledView,
				AppliedRule: "No reembolsable: cancelacion con menos de 2 dias de anticipacion",
				Warning:     "No reembolsable: cancelacion con menos de 2 dias de anticipacion",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		var response resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Voucher)
		s.NotEmpty(response.Warning)
	})

	s.Run("error: 422 with the policy reason when denied", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("Ya registrada entrada/salida"), errs.ErrCancellationDenied)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Ya registrada entrada/salida")
	})
}
