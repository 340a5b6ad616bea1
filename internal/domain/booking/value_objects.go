package booking

import (
	"errors"
	"time"
)

// Money is an amount in integer minor units (cents). All financial arithmetic
// in the engine stays in minor units so repeated proration and percentage
// calculations cannot drift.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// SubFloor subtracts, clamping at zero. Pending balances are never negative.
func (m Money) SubFloor(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

// StayPeriod is the contracted check-in / check-out window.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, errors.New("check-in must be before check-out")
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Nights is the contracted number of nights, counted on calendar dates.
func (p StayPeriod) Nights() int {
	return NightsBetween(p.checkIn, p.checkOut)
}

// NightsBetween counts calendar nights between two instants, never below 1
// when to is after from.
func NightsBetween(from, to time.Time) int {
	f := truncateToDate(from)
	t := truncateToDate(to)
	nights := int(t.Sub(f).Hours() / 24)
	if nights < 1 && to.After(from) {
		return 1
	}
	return nights
}

// DaysOverdue is the number of whole days elapsed past the contracted
// checkout. Zero when the booking is not overdue.
func (p StayPeriod) DaysOverdue(now time.Time) int {
	if !now.After(p.checkOut) {
		return 0
	}
	return int(truncateToDate(now).Sub(truncateToDate(p.checkOut)).Hours() / 24)
}

func (p StayPeriod) IsOverdue(now time.Time) bool {
	return now.After(p.checkOut)
}

// DaysUntilCheckIn is negative once the check-in date has passed.
func (p StayPeriod) DaysUntilCheckIn(now time.Time) int {
	return int(truncateToDate(p.checkIn).Sub(truncateToDate(now)).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DiscountGrant is a computed discount. It is a proposal only; applying it to
// the aggregate is the checkout state machine's job.
type DiscountGrant struct {
	Amount Money
	Reason string
	Source DiscountSource
}

func (g DiscountGrant) IsZero() bool {
	return g.Amount.IsZero()
}
