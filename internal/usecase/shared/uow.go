package shared

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/voucher"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Vouchers() VoucherRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	VoucherByCode(ctx context.Context, code string) (*voucher.Voucher, error)
	StaffByEmail(ctx context.Context, email string) (*StaffSnapshot, error)
}

// StaffSnapshot is the minimal staff record needed by auth commands.
type StaffSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	PasswordHash string
	IsActive     bool
}

// BookingRepository persists booking aggregates. Every mutation takes the
// aggregate's loaded version as the optimistic-concurrency expectation; a
// stale version surfaces as a CONFLICT repository error.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	AddPayment(ctx context.Context, bookingID uuid.UUID, p booking.Payment, expectedVersion int64) error
	AddExtraCharge(ctx context.Context, bookingID uuid.UUID, e booking.ExtraCharge, expectedVersion int64) error
	SaveDiscount(ctx context.Context, b *booking.Booking) error
	SaveCheckout(ctx context.Context, b *booking.Booking) error
	SaveCancellation(ctx context.Context, b *booking.Booking) error
}

type VoucherRepository interface {
	Create(ctx context.Context, v *voucher.Voucher) (uuid.UUID, error)
	// MarkUsed performs the atomic active→used compare-and-swap. Zero rows
	// affected means another redemption won the race.
	MarkUsed(ctx context.Context, voucherID, targetBookingID uuid.UUID, usedAt time.Time) error
	MarkExpired(ctx context.Context, voucherID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
