package api

import (
	"errors"
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherCommands commands.VoucherCommands
}

func NewVoucherHandler(voucherCommands commands.VoucherCommands) *VoucherHandler {
	return &VoucherHandler{
		voucherCommands: voucherCommands,
	}
}

// @Summary Issue voucher
// @Description Issue a credit voucher tied to a booking
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueVoucherRequest true "Voucher request"
// @Success 201 {object} resdto.VoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers [post]
func (h *VoucherHandler) IssueVoucher(c *gin.Context) {
	var req reqdto.IssueVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.voucherCommands.Issue(c.Request.Context(), commands.IssueVoucherParams{
		AmountCents:       req.AmountCents,
		OriginalBookingID: req.OriginalBookingID,
		ExpiresAt:         req.ExpiresAt,
	})
	if err != nil {
		h.renderVoucherError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVoucherView(view))
}

// @Summary Validate voucher
// @Description Check whether a voucher code is redeemable
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers/{code} [get]
func (h *VoucherHandler) ValidateVoucher(c *gin.Context) {
	code := c.Param("code")

	view, err := h.voucherCommands.ValidateCode(c.Request.Context(), code)
	if err != nil {
		h.renderVoucherError(c, err, resdto.FromVoucherView(view))
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Redeem voucher
// @Description Redeem a voucher in full as a payment on the target booking
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Param request body reqdto.RedeemVoucherRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers/{code}/redeem [post]
func (h *VoucherHandler) RedeemVoucher(c *gin.Context) {
	code := c.Param("code")

	var req reqdto.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.voucherCommands.Redeem(c.Request.Context(), code, req.BookingID)
	if err != nil {
		h.renderVoucherError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

func (h *VoucherHandler) renderVoucherError(c *gin.Context, err error, voucher *resdto.VoucherResponse) {
	body := gin.H{}
	if voucher != nil {
		body["voucher"] = voucher
	}

	switch {
	case errors.Is(err, errs.ErrVoucherNotFound):
		body["error"] = "Voucher not found"
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, errs.ErrBookingNotFound):
		body["error"] = "Booking not found"
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, errs.ErrVoucherExpired):
		body["error"] = "Voucher has expired"
		c.JSON(http.StatusGone, body)
	case errors.Is(err, errs.ErrVoucherAlreadyUsed):
		body["error"] = "Voucher has already been used"
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, errs.ErrVoucherNotActive):
		body["error"] = "Voucher is not active"
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, errs.ErrInvalidState):
		body["error"] = "Booking state does not allow redemption"
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, errs.ErrConcurrencyConflict):
		body["error"] = "Booking was modified concurrently, retry the operation"
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, errs.ErrValidation):
		body["error"] = errs.UserMessage(err)
		c.JSON(http.StatusUnprocessableEntity, body)
	default:
		body["error"] = "Internal server error"
		c.JSON(http.StatusInternalServerError, body)
	}
}
