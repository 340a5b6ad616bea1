package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount   = errors.New("guest count must be at least 1")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrBookingTerminal     = errors.New("booking is in a terminal status")
	ErrDiscountExceedsRoom = errors.New("discount cannot exceed the room charge")
)

// Payment is an append-only money record owned by a booking. A refund is a
// new record with a refunded status, never a mutation of an old one.
type Payment struct {
	ID        uuid.UUID
	Amount    Money
	Method    PaymentMethod
	Status    PaymentStatus
	Reference string
	PaidAt    time.Time
}

// ExtraCharge is a consumption line (minibar, laundry, etc.) added during the
// stay. Line total is Amount × Quantity.
type ExtraCharge struct {
	ID          uuid.UUID
	Description string
	Amount      Money
	Quantity    int
	ChargedAt   time.Time
}

func (e ExtraCharge) LineTotal() Money {
	q := int64(e.Quantity)
	if q < 1 {
		q = 1
	}
	return NewMoney(e.Amount.Cents() * q)
}

// Booking is the aggregate root: the booking row plus its owned payments and
// extra charges, treated as one consistency boundary. The version field backs
// the optimistic concurrency check at the repository.
type Booking struct {
	id                uuid.UUID
	roomNumber        string
	guestName         string
	guestCount        int
	status            Status
	stay              StayPeriod
	actualCheckOut    *time.Time
	originalAmount    Money
	discountAmount    Money
	discountReason    string
	discountAppliedAt *time.Time
	discountAppliedBy string
	taxAmount         Money
	payments          []Payment
	extraCharges      []ExtraCharge
	version           int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewBooking(
	roomNumber, guestName string,
	guestCount int,
	stay StayPeriod,
	roomCharge, taxAmount Money,
) (*Booking, error) {
	if strings.TrimSpace(roomNumber) == "" {
		return nil, errors.New("room number is required")
	}
	if strings.TrimSpace(guestName) == "" {
		return nil, errors.New("guest name is required")
	}
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !roomCharge.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Booking{
		id:             uuid.New(),
		roomNumber:     strings.TrimSpace(roomNumber),
		guestName:      strings.TrimSpace(guestName),
		guestCount:     guestCount,
		status:         StatusPending,
		stay:           stay,
		originalAmount: roomCharge,
		discountAmount: NewMoney(0),
		taxAmount:      taxAmount,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	roomNumber, guestName string,
	guestCount int,
	status Status,
	stay StayPeriod,
	actualCheckOut *time.Time,
	originalAmount, discountAmount, taxAmount Money,
	discountReason string,
	discountAppliedAt *time.Time,
	discountAppliedBy string,
	payments []Payment,
	extraCharges []ExtraCharge,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		roomNumber:        roomNumber,
		guestName:         guestName,
		guestCount:        guestCount,
		status:            status,
		stay:              stay,
		actualCheckOut:    actualCheckOut,
		originalAmount:    originalAmount,
		discountAmount:    discountAmount,
		discountReason:    discountReason,
		discountAppliedAt: discountAppliedAt,
		discountAppliedBy: discountAppliedBy,
		taxAmount:         taxAmount,
		payments:          payments,
		extraCharges:      extraCharges,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RoomNumber() string           { return b.roomNumber }
func (b *Booking) GuestName() string            { return b.guestName }
func (b *Booking) GuestCount() int              { return b.guestCount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Stay() StayPeriod             { return b.stay }
func (b *Booking) ActualCheckOut() *time.Time   { return b.actualCheckOut }
func (b *Booking) OriginalAmount() Money        { return b.originalAmount }
func (b *Booking) DiscountAmount() Money        { return b.discountAmount }
func (b *Booking) DiscountReason() string       { return b.discountReason }
func (b *Booking) DiscountAppliedAt() *time.Time { return b.discountAppliedAt }
func (b *Booking) DiscountAppliedBy() string    { return b.discountAppliedBy }
func (b *Booking) TaxAmount() Money             { return b.taxAmount }
func (b *Booking) Payments() []Payment          { return b.payments }
func (b *Booking) ExtraCharges() []ExtraCharge  { return b.extraCharges }
func (b *Booking) Version() int64               { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// TotalAmount is the current contracted room charge: original minus discount.
func (b *Booking) TotalAmount() Money {
	return b.originalAmount.SubFloor(b.discountAmount)
}

// AddPayment appends a payment record. Amounts must be positive; the pending
// balance guard lives in the command layer where the fresh summary is known.
func (b *Booking) AddPayment(p Payment) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	b.payments = append(b.payments, p)
	return nil
}

func (b *Booking) AddExtraCharge(e ExtraCharge) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if !e.Amount.IsPositive() || e.Quantity < 1 {
		return ErrInvalidAmount
	}
	b.extraCharges = append(b.extraCharges, e)
	return nil
}

// ApplyDiscount stacks a grant onto the existing discount. The invariant
// discountAmount ≤ originalAmount always holds.
func (b *Booking) ApplyDiscount(g DiscountGrant, appliedBy string, at time.Time) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if !g.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	total := b.discountAmount.Add(g.Amount)
	if b.originalAmount.LessThan(total) {
		return ErrDiscountExceedsRoom
	}
	b.discountAmount = total
	b.discountReason = g.Reason
	b.discountAppliedAt = &at
	b.discountAppliedBy = appliedBy
	return nil
}

// MarkCompleted commits the checkout transition. Eligibility is validated by
// DecideCheckout; this only enforces terminality.
func (b *Booking) MarkCompleted(actualCheckOut time.Time) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	b.status = StatusCompleted
	b.actualCheckOut = &actualCheckOut
	return nil
}

func (b *Booking) MarkCancelled() error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	b.status = StatusCancelled
	return nil
}
