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
	"hotel-frontdesk/internal/pkg/patch"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssueVoucherParams struct {
	AmountCents       int64
	OriginalBookingID uuid.UUID
	// ExpiresAt overrides the configured TTL when set.
	ExpiresAt *time.Time
}

type RedeemResult struct {
	Voucher *queries.VoucherView
	Booking *queries.BookingView
}

type VoucherCommands interface {
	Issue(ctx context.Context, p IssueVoucherParams) (*queries.VoucherView, error)
	// ValidateCode checks redeemability without consuming the voucher. A stale
	// active voucher is reclassified as expired as a side effect.
	ValidateCode(ctx context.Context, code string) (*queries.VoucherView, error)
	// Redeem consumes the voucher in full as a payment on the target booking.
	Redeem(ctx context.Context, code string, targetBookingID uuid.UUID) (*RedeemResult, error)
}

type voucherCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewVoucherCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) VoucherCommands {
	return &voucherCommandsImpl{
		uow:   uow,
		clock: clk,
		ttl:   time.Duration(cfg.Policy.VoucherTTLDays) * 24 * time.Hour,
	}
}

func (u *voucherCommandsImpl) Issue(ctx context.Context, p IssueVoucherParams) (*queries.VoucherView, error) {
	now := u.clock.Now()
	expiresAt := patch.Coalesce(p.ExpiresAt, now.Add(u.ttl))

	v, err := voucher.NewVoucher(p.AmountCents, p.OriginalBookingID, now, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Vouchers().Create(ctx, v); createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.Mark(createErr, errs.ErrBookingNotFound)
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewVoucherView(v), nil
}

func (u *voucherCommandsImpl) ValidateCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	now := u.clock.Now()
	var view *queries.VoucherView
	var validationErr error

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := u.loadVoucher(ctx, tx, code)
		if err != nil {
			return err
		}

		if v.Status() == voucher.StatusActive && v.IsExpiredAt(now) {
			v.MarkExpired()
			if markErr := tx.Vouchers().MarkExpired(ctx, v.ID()); markErr != nil {
				slog.Warn("failed to persist lazy voucher expiry",
					"voucher_id", v.ID(), "error", markErr.Error())
			}
		}

		view = queries.NewVoucherView(v)
		// An unusable voucher is not a transaction failure: returning the
		// validation error here would roll back the lazy expiry write, so it
		// is carried out of the closure and surfaced after commit.
		validationErr = mapVoucherErr(v.ValidateAt(now))
		return nil
	})
	if err != nil {
		return nil, err
	}
	// The view still describes the voucher when the lookup succeeded but the
	// voucher is unusable; handlers render both.
	return view, validationErr
}

func (u *voucherCommandsImpl) Redeem(ctx context.Context, code string, targetBookingID uuid.UUID) (*RedeemResult, error) {
	now := u.clock.Now()
	var result *RedeemResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := u.loadVoucher(ctx, tx, code)
		if err != nil {
			return err
		}

		b, err := tx.Reads().BookingByID(ctx, targetBookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if b.Status().IsTerminal() {
			return errs.Mark(booking.ErrBookingTerminal, errs.ErrInvalidState)
		}

		if err := v.Redeem(targetBookingID, now); err != nil {
			return mapVoucherErr(err)
		}

		// The voucher is consumed whole. Any excess over the pending balance
		// stays on the booking as credit toward later extras; it is not paid
		// back out.
		payment := booking.Payment{
			ID:        uuid.New(),
			Amount:    booking.NewMoney(v.AmountCents()),
			Method:    booking.MethodVoucher,
			Status:    booking.PaymentCompleted,
			Reference: v.Code(),
			PaidAt:    now,
		}
		expectedVersion := b.Version()
		if err := b.AddPayment(payment); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := tx.Vouchers().MarkUsed(ctx, v.ID(), targetBookingID, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrVoucherNotActive)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().AddPayment(ctx, targetBookingID, payment, expectedVersion); err != nil {
			return mapRepoErr(err)
		}

		result = &RedeemResult{
			Voucher: queries.NewVoucherView(v),
			Booking: queries.NewBookingView(b),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *voucherCommandsImpl) loadVoucher(ctx context.Context, tx shared.Tx, code string) (*voucher.Voucher, error) {
	v, err := tx.Reads().VoucherByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVoucherNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

func mapVoucherErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, voucher.ErrExpired):
		return errs.Mark(err, errs.ErrVoucherExpired)
	case errors.Is(err, voucher.ErrAlreadyUsed):
		return errs.Mark(err, errs.ErrVoucherAlreadyUsed)
	case errors.Is(err, voucher.ErrNotActive):
		return errs.Mark(err, errs.ErrVoucherNotActive)
	default:
		return errs.Mark(err, errs.ErrValidation)
	}
}
