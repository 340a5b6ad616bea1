package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/voucher"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	RoomNumber      string
	GuestName       string
	GuestCount      int
	CheckIn         time.Time
	CheckOut        time.Time
	RoomChargeCents int64
	TaxAmountCents  int64
}

type SubmitPaymentParams struct {
	AmountCents int64
	Method      string
	Reference   string
}

type ManualDiscountParams struct {
	AmountCents int64
	Reason      string
	AppliedBy   string
}

type CheckoutParams struct {
	ActualCheckOut      *time.Time
	ForceCheckout       bool
	EarlyCheckoutReason string
	DiscountCents       *int64
	DiscountReason      string
	AppliedBy           string
}

type ExtraChargeParams struct {
	Description string
	AmountCents int64
	Quantity    int
}

type CancelParams struct {
	Reason      string
	CancelledBy string
}

type CheckoutResult struct {
	Booking *queries.BookingView
	// Warnings carry non-fatal follow-up failures (bill generation, room
	// release). The checkout itself committed.
	Warnings []string
}

type CancelResult struct {
	Booking     *queries.BookingView
	Voucher     *queries.VoucherView
	AppliedRule string
	// Warning is set when payments are forfeited (non-refundable cancellation).
	Warning string
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	SubmitPayment(ctx context.Context, bookingID uuid.UUID, p SubmitPaymentParams) (*queries.BookingView, error)
	AddExtraCharge(ctx context.Context, bookingID uuid.UUID, p ExtraChargeParams) (*queries.BookingView, error)
	ApplyManualDiscount(ctx context.Context, bookingID uuid.UUID, p ManualDiscountParams) (*queries.BookingView, error)
	Checkout(ctx context.Context, bookingID uuid.UUID, p CheckoutParams) (*CheckoutResult, error)
	AssessCancellation(ctx context.Context, bookingID uuid.UUID) (*booking.CancellationAssessment, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, p CancelParams) (*CancelResult, error)
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	clock              clock.Clock
	discountPolicy     booking.DiscountPolicy
	cancellationPolicy booking.CancellationPolicy
	voucherTTL         time.Duration
	billGenerator      BillGenerator
	roomNotifier       RoomStatusNotifier
	shiftLedger        ShiftLedgerNotifier
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.Config,
	billGenerator BillGenerator,
	roomNotifier RoomStatusNotifier,
	shiftLedger ShiftLedgerNotifier,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:                uow,
		clock:              clk,
		discountPolicy:     booking.DiscountPolicy{OverdueForgivenessDays: cfg.Policy.OverdueForgivenessDays},
		cancellationPolicy: booking.CancellationPolicy{RefundThresholdDays: cfg.Policy.RefundThresholdDays},
		voucherTTL:         time.Duration(cfg.Policy.VoucherTTLDays) * 24 * time.Hour,
		billGenerator:      billGenerator,
		roomNotifier:       roomNotifier,
		shiftLedger:        shiftLedger,
	}
}

func (u *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	stay, err := booking.NewStayPeriod(p.CheckIn, p.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	roomCharge, err := booking.NewMoneyFromInt(p.RoomChargeCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	tax, err := booking.NewMoneyFromInt(p.TaxAmountCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	b, err := booking.NewBooking(p.RoomNumber, p.GuestName, p.GuestCount, stay, roomCharge, tax)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var view *queries.BookingView
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Bookings().Create(ctx, b); createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		loaded, loadErr := tx.Reads().BookingByID(ctx, b.ID())
		if loadErr != nil {
			return errs.Mark(loadErr, errs.ErrDatabaseOperationFailed)
		}
		view = queries.NewBookingView(loaded)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (u *bookingCommandsImpl) SubmitPayment(ctx context.Context, bookingID uuid.UUID, p SubmitPaymentParams) (*queries.BookingView, error) {
	if p.AmountCents <= 0 {
		return nil, errs.Mark(errs.New("payment amount must be positive"), errs.ErrValidation)
	}
	method := booking.PaymentMethod(p.Method)
	switch method {
	case booking.MethodCash, booking.MethodCard, booking.MethodTransfer:
	default:
		return nil, errs.Mark(errs.New("unknown payment method"), errs.ErrValidation)
	}

	now := u.clock.Now()
	var view *queries.BookingView

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status().IsTerminal() {
			return errs.Mark(booking.ErrBookingTerminal, errs.ErrInvalidState)
		}

		// Two racing registrations cannot both observe the same stale pending
		// balance: the guard below plus the version check on save serialize
		// them per booking.
		summary := booking.Summarize(b)
		if summary.TotalPending.Cents() < p.AmountCents {
			return errs.Mark(errs.New("payment exceeds pending balance"), errs.ErrValidation)
		}

		payment := booking.Payment{
			ID:        uuid.New(),
			Amount:    booking.NewMoney(p.AmountCents),
			Method:    method,
			Status:    booking.PaymentCompleted,
			Reference: p.Reference,
			PaidAt:    now,
		}
		expectedVersion := b.Version()
		if err := b.AddPayment(payment); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Bookings().AddPayment(ctx, bookingID, payment, expectedVersion); err != nil {
			return mapRepoErr(err)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if method == booking.MethodCash {
		if ledgerErr := u.shiftLedger.CashReceived(ctx, bookingID, p.AmountCents, now); ledgerErr != nil {
			slog.Warn("failed to notify shift ledger of cash payment",
				"booking_id", bookingID, "error", ledgerErr.Error())
		}
	}
	return view, nil
}

func (u *bookingCommandsImpl) AddExtraCharge(ctx context.Context, bookingID uuid.UUID, p ExtraChargeParams) (*queries.BookingView, error) {
	now := u.clock.Now()
	var view *queries.BookingView

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		charge := booking.ExtraCharge{
			ID:          uuid.New(),
			Description: p.Description,
			Amount:      booking.NewMoney(p.AmountCents),
			Quantity:    p.Quantity,
			ChargedAt:   now,
		}
		expectedVersion := b.Version()
		if err := b.AddExtraCharge(charge); err != nil {
			if errors.Is(err, booking.ErrBookingTerminal) {
				return errs.Mark(err, errs.ErrInvalidState)
			}
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Bookings().AddExtraCharge(ctx, bookingID, charge, expectedVersion); err != nil {
			return mapRepoErr(err)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (u *bookingCommandsImpl) ApplyManualDiscount(ctx context.Context, bookingID uuid.UUID, p ManualDiscountParams) (*queries.BookingView, error) {
	now := u.clock.Now()
	var view *queries.BookingView

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status().IsTerminal() {
			return errs.Mark(booking.ErrBookingTerminal, errs.ErrInvalidState)
		}

		grant, err := booking.ManualDiscount(b, booking.NewMoney(p.AmountCents), p.Reason)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := b.ApplyDiscount(grant, p.AppliedBy, now); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Bookings().SaveDiscount(ctx, b); err != nil {
			return mapRepoErr(err)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (u *bookingCommandsImpl) Checkout(ctx context.Context, bookingID uuid.UUID, p CheckoutParams) (*CheckoutResult, error) {
	now := u.clock.Now()
	opts := booking.CheckoutOptions{
		ActualCheckOut:      p.ActualCheckOut,
		ForceCheckout:       p.ForceCheckout,
		EarlyCheckoutReason: p.EarlyCheckoutReason,
		AppliedBy:           p.AppliedBy,
	}
	if p.DiscountCents != nil {
		opts.ManualDiscount = &booking.ManualDiscountRequest{
			Amount: booking.NewMoney(*p.DiscountCents),
			Reason: p.DiscountReason,
		}
	}

	var result *CheckoutResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		decision, err := booking.DecideCheckout(b, opts, now, u.discountPolicy)
		if err != nil {
			return mapCheckoutErr(err)
		}
		if err := decision.Apply(b, now); err != nil {
			return errs.Mark(err, errs.ErrInvalidState)
		}
		if err := tx.Bookings().SaveCheckout(ctx, b); err != nil {
			return mapRepoErr(err)
		}

		result = &CheckoutResult{Booking: queries.NewBookingView(b)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Follow-ups are fire-and-forget once the transition committed: a
	// failure here is a warning, never a rollback.
	result.Warnings = u.dispatchCheckoutFollowUps(ctx, result.Booking)
	return result, nil
}

func (u *bookingCommandsImpl) AssessCancellation(ctx context.Context, bookingID uuid.UUID) (*booking.CancellationAssessment, error) {
	b, err := u.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	assessment := u.cancellationPolicy.Assess(b, booking.Summarize(b), u.clock.Now())
	return &assessment, nil
}

func (u *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, p CancelParams) (*CancelResult, error) {
	now := u.clock.Now()
	var result *CancelResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		assessment := u.cancellationPolicy.Assess(b, booking.Summarize(b), now)
		if !assessment.CanCancel {
			return errs.Mark(errs.New(assessment.Reason), errs.ErrCancellationDenied)
		}

		if err := b.MarkCancelled(); err != nil {
			return errs.Mark(err, errs.ErrInvalidState)
		}
		if err := tx.Bookings().SaveCancellation(ctx, b); err != nil {
			return mapRepoErr(err)
		}

		result = &CancelResult{
			Booking:     queries.NewBookingView(b),
			AppliedRule: assessment.AppliedRule,
		}

		switch assessment.Refund {
		case booking.RefundFullCredit:
			v, voucherErr := voucher.NewVoucher(assessment.EstimatedCredit.Cents(), bookingID, now, now.Add(u.voucherTTL))
			if voucherErr != nil {
				return errs.Mark(voucherErr, errs.ErrValidation)
			}
			if _, createErr := tx.Vouchers().Create(ctx, v); createErr != nil {
				return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
			}
			result.Voucher = queries.NewVoucherView(v)
		case booking.RefundForfeit:
			result.Warning = assessment.AppliedRule
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *bookingCommandsImpl) dispatchCheckoutFollowUps(ctx context.Context, view *queries.BookingView) []string {
	var warnings []string
	if err := u.billGenerator.Generate(ctx, view); err != nil {
		slog.Warn("bill generation request failed after checkout",
			"booking_id", view.ID, "error", err.Error())
		warnings = append(warnings, "bill generation could not be requested")
	}
	if err := u.roomNotifier.Release(ctx, view.RoomNumber, view.ID); err != nil {
		slog.Warn("room release request failed after checkout",
			"booking_id", view.ID, "room", view.RoomNumber, "error", err.Error())
		warnings = append(warnings, "room status release could not be requested")
	}
	return warnings
}

func (u *bookingCommandsImpl) loadBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConcurrencyConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func mapCheckoutErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrStatusNotEligible):
		return errs.Mark(err, errs.ErrInvalidState)
	case errors.Is(err, booking.ErrCheckoutDateInvalid):
		return errs.Mark(err, errs.ErrInvalidDate)
	case errors.Is(err, booking.ErrBalanceOutstanding):
		return errs.Mark(err, errs.ErrPaymentRequired)
	case errors.Is(err, booking.ErrInvalidDiscount), errors.Is(err, booking.ErrInvalidStayLength):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrInvalidState)
	}
}
