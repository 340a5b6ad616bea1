package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("voucher amount must be positive")
	ErrInvalidExpiry = errors.New("voucher expiry must be in the future")
	ErrNotActive     = errors.New("voucher is not active")
	ErrExpired       = errors.New("voucher has expired")
	ErrAlreadyUsed   = errors.New("voucher already used")
)

type Status string

const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

// Voucher is a single-use credit issued in lieu of a cash refund on
// cancellation. It transitions active→used exactly once, or active→expired by
// time, never both. The used transition is committed with a compare-and-swap
// at the repository so concurrent redemptions cannot both win.
type Voucher struct {
	id                uuid.UUID
	code              string
	amount            int64
	status            Status
	originalBookingID uuid.UUID
	usedBookingID     *uuid.UUID
	createdAt         time.Time
	expiresAt         time.Time
	usedAt            *time.Time
}

func NewVoucher(amountCents int64, originalBookingID uuid.UUID, now, expiresAt time.Time) (*Voucher, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if !expiresAt.After(now) {
		return nil, ErrInvalidExpiry
	}
	return &Voucher{
		id:                uuid.New(),
		code:              NewCode(),
		amount:            amountCents,
		status:            StatusActive,
		originalBookingID: originalBookingID,
		createdAt:         now,
		expiresAt:         expiresAt,
	}, nil
}

func ReconstructVoucher(
	id uuid.UUID,
	code string,
	amountCents int64,
	status Status,
	originalBookingID uuid.UUID,
	usedBookingID *uuid.UUID,
	createdAt, expiresAt time.Time,
	usedAt *time.Time,
) *Voucher {
	return &Voucher{
		id:                id,
		code:              code,
		amount:            amountCents,
		status:            status,
		originalBookingID: originalBookingID,
		usedBookingID:     usedBookingID,
		createdAt:         createdAt,
		expiresAt:         expiresAt,
		usedAt:            usedAt,
	}
}

func (v *Voucher) ID() uuid.UUID                { return v.id }
func (v *Voucher) Code() string                 { return v.code }
func (v *Voucher) AmountCents() int64           { return v.amount }
func (v *Voucher) Status() Status               { return v.status }
func (v *Voucher) OriginalBookingID() uuid.UUID { return v.originalBookingID }
func (v *Voucher) UsedBookingID() *uuid.UUID    { return v.usedBookingID }
func (v *Voucher) CreatedAt() time.Time         { return v.createdAt }
func (v *Voucher) ExpiresAt() time.Time         { return v.expiresAt }
func (v *Voucher) UsedAt() *time.Time           { return v.usedAt }

func (v *Voucher) IsExpiredAt(t time.Time) bool {
	return t.After(v.expiresAt)
}

// ValidateAt reports why the voucher cannot be redeemed right now, or nil.
func (v *Voucher) ValidateAt(t time.Time) error {
	switch v.status {
	case StatusUsed:
		return ErrAlreadyUsed
	case StatusExpired:
		return ErrExpired
	}
	if v.IsExpiredAt(t) {
		return ErrExpired
	}
	return nil
}

// MarkExpired reclassifies a stale active voucher. Lazy: performed on read.
func (v *Voucher) MarkExpired() {
	if v.status == StatusActive {
		v.status = StatusExpired
	}
}

// Redeem transitions active→used in memory. The repository re-checks the same
// transition atomically when persisting.
func (v *Voucher) Redeem(targetBookingID uuid.UUID, now time.Time) error {
	if err := v.ValidateAt(now); err != nil {
		return err
	}
	if v.status != StatusActive {
		return ErrNotActive
	}
	v.status = StatusUsed
	v.usedAt = &now
	v.usedBookingID = &targetBookingID
	return nil
}
