//go:build unit || e2e

package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles booking aggregates in arbitrary lifecycle states.
// Defaults describe a five-night checked-in stay with nothing paid yet.
type BookingBuilder struct {
	ID             uuid.UUID
	RoomNumber     string
	GuestName      string
	GuestCount     int
	Status         booking.Status
	CheckIn        time.Time
	CheckOut       time.Time
	ActualCheckOut *time.Time
	OriginalCents  int64
	DiscountCents  int64
	DiscountReason string
	TaxCents       int64
	Payments       []booking.Payment
	ExtraCharges   []booking.ExtraCharge
	Version        int64
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		RoomNumber:    "204",
		GuestName:     "Carlos Mendoza",
		GuestCount:    2,
		Status:        booking.StatusCheckedIn,
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 5).Add(-3 * time.Hour), // 12:00 checkout
		OriginalCents: 500_000,
		TaxCents:      0,
		Version:       1,
		CreatedAt:     checkIn.AddDate(0, 0, -7),
	}
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRoomCharge(cents int64) *BookingBuilder {
	b.OriginalCents = cents
	return b
}

func (b *BookingBuilder) WithTax(cents int64) *BookingBuilder {
	b.TaxCents = cents
	return b
}

func (b *BookingBuilder) WithDiscount(cents int64, reason string) *BookingBuilder {
	b.DiscountCents = cents
	b.DiscountReason = reason
	return b
}

func (b *BookingBuilder) WithPayment(cents int64, method booking.PaymentMethod, status booking.PaymentStatus) *BookingBuilder {
	b.Payments = append(b.Payments, booking.Payment{
		ID:     uuid.New(),
		Amount: booking.NewMoney(cents),
		Method: method,
		Status: status,
		PaidAt: b.CheckIn,
	})
	return b
}

func (b *BookingBuilder) WithCompletedPayment(cents int64) *BookingBuilder {
	return b.WithPayment(cents, booking.MethodCard, booking.PaymentCompleted)
}

func (b *BookingBuilder) WithExtraCharge(description string, cents int64, quantity int) *BookingBuilder {
	b.ExtraCharges = append(b.ExtraCharges, booking.ExtraCharge{
		ID:          uuid.New(),
		Description: description,
		Amount:      booking.NewMoney(cents),
		Quantity:    quantity,
		ChargedAt:   b.CheckIn.AddDate(0, 0, 1),
	})
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	stay, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		panic("builder: invalid stay period: " + err.Error())
	}
	return booking.ReconstructBooking(
		b.ID, b.RoomNumber, b.GuestName, b.GuestCount,
		b.Status, stay, b.ActualCheckOut,
		booking.NewMoney(b.OriginalCents), booking.NewMoney(b.DiscountCents), booking.NewMoney(b.TaxCents),
		b.DiscountReason, nil, "",
		b.Payments, b.ExtraCharges,
		b.Version, b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomNumber:      b.RoomNumber,
		GuestName:       b.GuestName,
		GuestCount:      b.GuestCount,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		RoomChargeCents: b.OriginalCents,
		TaxAmountCents:  b.TaxCents,
	}
}
