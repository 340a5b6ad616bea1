package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDiscount    = errors.New("invalid discount amount")
	ErrInvalidStayLength  = errors.New("actual nights outside the contracted stay")
	ErrNoDiscountDue      = errors.New("no discount applies")
)

// DiscountPolicy computes discount grants. It never mutates the aggregate;
// callers decide whether to apply the result.
type DiscountPolicy struct {
	// Days past the contracted checkout before the outstanding balance may be
	// forgiven on a forced checkout.
	OverdueForgivenessDays int
}

// ManualDiscount validates a caller-supplied discount against the room
// charge. The discount applies to the room-charge component only, never to
// extras, so the cap is originalAmount minus whatever discount already exists.
func ManualDiscount(b *Booking, amount Money, reason string) (DiscountGrant, error) {
	headroom := b.OriginalAmount().SubFloor(b.DiscountAmount())
	if !amount.IsPositive() || headroom.LessThan(amount) {
		return DiscountGrant{Source: DiscountManual}, ErrInvalidDiscount
	}
	return DiscountGrant{
		Amount: amount,
		Reason: reason,
		Source: DiscountManual,
	}, nil
}

// EarlyCheckoutDiscount prorates the room charge over the unused nights when
// the guest leaves before the contracted checkout. Extras remain payable in
// full.
func EarlyCheckoutDiscount(b *Booking, actualCheckOut time.Time, reason string) (DiscountGrant, error) {
	contracted := b.Stay().Nights()
	actual := NightsBetween(b.Stay().CheckIn(), actualCheckOut)
	if actual < 1 || actual >= contracted {
		return DiscountGrant{Source: DiscountEarlyCheckout}, ErrInvalidStayLength
	}

	amount := prorate(b.OriginalAmount().Cents(), contracted-actual, contracted)
	if reason == "" {
		reason = fmt.Sprintf("Salida anticipada: %d de %d noches", actual, contracted)
	}
	return DiscountGrant{
		Amount: NewMoney(amount),
		Reason: reason,
		Source: DiscountEarlyCheckout,
	}, nil
}

// OverdueDiscount forgives the entire outstanding balance once a booking has
// been overdue longer than the configured threshold. Trades revenue for
// releasing the room when the guest is unreachable.
func (p DiscountPolicy) OverdueDiscount(b *Booking, pending Money, now time.Time) (DiscountGrant, error) {
	days := b.Stay().DaysOverdue(now)
	if days <= p.OverdueForgivenessDays || !pending.IsPositive() {
		return DiscountGrant{Source: DiscountOverdue}, ErrNoDiscountDue
	}
	return DiscountGrant{
		Amount: pending,
		Reason: fmt.Sprintf("Descuento automatico por sobreestadia: %d dias de atraso", days),
		Source: DiscountOverdue,
	}, nil
}

// prorate computes amount × unused / total with round-half-up in minor units.
func prorate(amount int64, unused, total int) int64 {
	if total <= 0 || unused <= 0 {
		return 0
	}
	t := int64(total)
	return (amount*int64(unused) + t/2) / t
}
