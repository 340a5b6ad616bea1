package api

import (
	"errors"
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Register a new booking with its contracted stay and room charge
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		RoomNumber:      req.RoomNumber,
		GuestName:       req.GuestName,
		GuestCount:      req.GuestCount,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		RoomChargeCents: req.RoomChargeCents,
		TaxAmountCents:  req.TaxAmountCents,
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking with its reconciled financial summary
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Register payment
// @Description Register a payment against a booking's pending balance
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SubmitPaymentRequest true "Payment request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) SubmitPayment(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.SubmitPayment(c.Request.Context(), id, commands.SubmitPaymentParams{
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Reference:   req.Reference,
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Add extra charge
// @Description Add a consumption line (minibar, laundry, etc.) to a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ExtraChargeRequest true "Extra charge request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/extra-charges [post]
func (h *BookingHandler) AddExtraCharge(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.ExtraChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.AddExtraCharge(c.Request.Context(), id, commands.ExtraChargeParams{
		Description: req.Description,
		AmountCents: req.AmountCents,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Apply discount
// @Description Apply a manual discount to a booking's room charge
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.DiscountRequest true "Discount request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/discount [post]
func (h *BookingHandler) ApplyDiscount(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	appliedBy := staffName(c)
	view, err := h.bookingCommands.ApplyManualDiscount(c.Request.Context(), id, commands.ManualDiscountParams{
		AmountCents: req.AmountCents,
		Reason:      req.Reason,
		AppliedBy:   appliedBy,
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Checkout booking
// @Description Run the checkout state machine: settle the balance, apply any discount, complete the stay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.Checkout(c.Request.Context(), id, commands.CheckoutParams{
		ActualCheckOut:      req.ActualCheckOut,
		ForceCheckout:       req.ForceCheckout,
		EarlyCheckoutReason: req.EarlyCheckoutReason,
		DiscountCents:       req.DiscountCents,
		DiscountReason:      req.DiscountReason,
		AppliedBy:           staffName(c),
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Assess cancellation
// @Description Preview whether a booking can be cancelled and how paid money would be treated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancellationAssessmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancellation [get]
func (h *BookingHandler) AssessCancellation(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	assessment, err := h.bookingCommands.AssessCancellation(c.Request.Context(), id)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationAssessment(assessment))
}

// @Summary Cancel booking
// @Description Cancel a booking; payments become a credit voucher or are forfeited per policy
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := h.parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), id, commands.CancelParams{
		Reason:      req.Reason,
		CancelledBy: staffName(c),
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

func (h *BookingHandler) parseBookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) renderBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrCancellationDenied):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": errs.UserMessage(err),
		})
	case errors.Is(err, errs.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Outstanding balance must be settled before checkout",
		})
	case errors.Is(err, errs.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking state does not allow this operation",
		})
	case errors.Is(err, errs.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking was modified concurrently, retry the operation",
		})
	case errors.Is(err, errs.ErrInvalidDate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Checkout date outside the valid window",
		})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": errs.UserMessage(err),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func staffName(c *gin.Context) string {
	if id, ok := middleware.GetStaffID(c); ok {
		return id.String()
	}
	return ""
}
