package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingReadStore loads booking aggregates: the booking row plus its owned
// payments and extra charges. Inside a Unit of Work transaction the load and
// the subsequent version-checked write see the same snapshot.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const selectBookingSQL = `
SELECT id, room_number, guest_name, guest_count, status,
       check_in, check_out, actual_check_out,
       original_amount_cents, discount_amount_cents, discount_reason,
       discount_applied_at, discount_applied_by, tax_amount_cents,
       version, created_at, updated_at
FROM bookings
WHERE id = $1
`

const selectPaymentsSQL = `
SELECT id, amount_cents, method, status, reference, paid_at
FROM payments
WHERE booking_id = $1
ORDER BY paid_at, created_at
`

const selectExtraChargesSQL = `
SELECT id, description, amount_cents, quantity, charged_at
FROM extra_charges
WHERE booking_id = $1
ORDER BY charged_at, created_at
`

func (s *BookingReadStore) FindAggregateByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID         uuid.UUID
		roomNumber        string
		guestName         string
		guestCount        int
		status            string
		checkIn           time.Time
		checkOut          time.Time
		actualCheckOut    pgtype.Timestamptz
		originalCents     int64
		discountCents     int64
		discountReason    pgtype.Text
		discountAppliedAt pgtype.Timestamptz
		discountAppliedBy pgtype.Text
		taxCents          int64
		version           int64
		createdAt         time.Time
		updatedAt         time.Time
	)

	err := s.db.QueryRow(ctx, selectBookingSQL, id).Scan(
		&bookingID, &roomNumber, &guestName, &guestCount, &status,
		&checkIn, &checkOut, &actualCheckOut,
		&originalCents, &discountCents, &discountReason,
		&discountAppliedAt, &discountAppliedBy, &taxCents,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	payments, err := s.loadPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	extras, err := s.loadExtraCharges(ctx, id)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay period invalid", err)
	}

	var reason, appliedBy string
	if discountReason.Valid {
		reason = discountReason.String
	}
	if discountAppliedBy.Valid {
		appliedBy = discountAppliedBy.String
	}

	return booking.ReconstructBooking(
		bookingID, roomNumber, guestName, guestCount,
		booking.Status(status), stay,
		pgconv.TimePtrFromPgtype(actualCheckOut),
		booking.NewMoney(originalCents), booking.NewMoney(discountCents), booking.NewMoney(taxCents),
		reason, pgconv.TimePtrFromPgtype(discountAppliedAt), appliedBy,
		payments, extras,
		version, createdAt, updatedAt,
	), nil
}

func (s *BookingReadStore) loadPayments(ctx context.Context, bookingID uuid.UUID) ([]booking.Payment, error) {
	rows, err := s.db.Query(ctx, selectPaymentsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payments", err)
	}
	defer rows.Close()

	var payments []booking.Payment
	for rows.Next() {
		var (
			p         booking.Payment
			cents     int64
			method    string
			status    string
			reference pgtype.Text
		)
		if err := rows.Scan(&p.ID, &cents, &method, &status, &reference, &p.PaidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		p.Amount = booking.NewMoney(cents)
		p.Method = booking.PaymentMethod(method)
		p.Status = booking.PaymentStatus(status)
		if reference.Valid {
			p.Reference = reference.String
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return payments, nil
}

func (s *BookingReadStore) loadExtraCharges(ctx context.Context, bookingID uuid.UUID) ([]booking.ExtraCharge, error) {
	rows, err := s.db.Query(ctx, selectExtraChargesSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load extra charges", err)
	}
	defer rows.Close()

	var extras []booking.ExtraCharge
	for rows.Next() {
		var (
			e     booking.ExtraCharge
			cents int64
		)
		if err := rows.Scan(&e.ID, &e.Description, &cents, &e.Quantity, &e.ChargedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra charge row", err)
		}
		e.Amount = booking.NewMoney(cents)
		extras = append(extras, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra charge rows", err)
	}
	return extras, nil
}
