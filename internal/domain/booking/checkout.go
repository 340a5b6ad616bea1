package booking

import (
	"errors"
	"time"
)

var (
	ErrStatusNotEligible   = errors.New("status not eligible for checkout")
	ErrCheckoutDateInvalid = errors.New("checkout date outside the valid window")
	ErrBalanceOutstanding  = errors.New("balance outstanding and no discount applies")
)

// ManualDiscountRequest is the operator-supplied discount accompanying a
// checkout call.
type ManualDiscountRequest struct {
	Amount Money
	Reason string
}

// CheckoutOptions are the caller-controlled knobs of a checkout attempt.
type CheckoutOptions struct {
	// ActualCheckOut overrides the departure timestamp. Early departures must
	// satisfy checkIn < actual ≤ checkOut; when nil, now is used.
	ActualCheckOut *time.Time
	// ForceCheckout permits checking out an overdue booking regardless of its
	// position on the normal path, and is the explicit consent required before
	// the overdue balance is forgiven. Never implied.
	ForceCheckout       bool
	EarlyCheckoutReason string
	ManualDiscount      *ManualDiscountRequest
	AppliedBy           string
}

type FollowUp string

const (
	FollowUpGenerateBill FollowUp = "generate_bill"
	FollowUpReleaseRoom  FollowUp = "release_room"
)

// CheckoutDecision is the approved outcome of a checkout attempt: what to
// write to the aggregate and which follow-up requests to emit after commit.
type CheckoutDecision struct {
	ActualCheckOut time.Time
	Discount       *DiscountGrant
	AppliedBy      string
	Overdue        bool
	DaysOverdue    int
	// Summary reflects the aggregate before the discount is applied.
	Summary   FinancialSummary
	FollowUps []FollowUp
}

// DecideCheckout runs the checkout state machine against a booking aggregate.
// It is pure: a rejected attempt returns an error and the aggregate is
// untouched; an accepted one returns the mutation instructions. The command
// layer applies the decision under the aggregate's optimistic version check.
func DecideCheckout(b *Booking, opts CheckoutOptions, now time.Time, policy DiscountPolicy) (*CheckoutDecision, error) {
	if b == nil {
		return nil, ErrStatusNotEligible
	}

	overdue := b.Stay().IsOverdue(now)
	if !checkoutEligible(b.Status(), overdue, opts.ForceCheckout) {
		return nil, ErrStatusNotEligible
	}

	actual, early, err := resolveActualCheckOut(b, opts.ActualCheckOut, now)
	if err != nil {
		return nil, err
	}

	discount, err := chooseDiscount(b, opts, actual, early)
	if err != nil {
		return nil, err
	}

	summary := Summarize(b)
	if summary.TotalPending.IsPositive() {
		covered := discount != nil && !summary.TotalPending.SubFloor(discount.Amount).IsPositive()
		if !covered {
			if !(overdue && opts.ForceCheckout) {
				return nil, ErrBalanceOutstanding
			}
			grant, overdueErr := policy.OverdueDiscount(b, summary.TotalPending, now)
			if overdueErr != nil {
				return nil, ErrBalanceOutstanding
			}
			discount = &grant
		}
	}

	return &CheckoutDecision{
		ActualCheckOut: actual,
		Discount:       discount,
		AppliedBy:      opts.AppliedBy,
		Overdue:        overdue,
		DaysOverdue:    b.Stay().DaysOverdue(now),
		Summary:        summary,
		FollowUps:      []FollowUp{FollowUpGenerateBill, FollowUpReleaseRoom},
	}, nil
}

// Apply commits an approved decision onto the aggregate.
func (d *CheckoutDecision) Apply(b *Booking, now time.Time) error {
	if d.Discount != nil && d.Discount.Amount.IsPositive() {
		if err := b.ApplyDiscount(*d.Discount, d.AppliedBy, now); err != nil {
			return err
		}
	}
	return b.MarkCompleted(d.ActualCheckOut)
}

func checkoutEligible(status Status, overdue, force bool) bool {
	switch status {
	case StatusCheckedIn, StatusPaid, StatusConfirmed:
		return true
	case StatusPending:
		return overdue && force
	default:
		return false
	}
}

func resolveActualCheckOut(b *Booking, custom *time.Time, now time.Time) (actual time.Time, early bool, err error) {
	stay := b.Stay()
	if custom == nil {
		return now, false, nil
	}
	if !custom.After(stay.CheckIn()) || custom.After(stay.CheckOut()) {
		return time.Time{}, false, ErrCheckoutDateInvalid
	}
	early = NightsBetween(stay.CheckIn(), *custom) < stay.Nights()
	return *custom, early, nil
}

// chooseDiscount picks exactly one discount source for this invocation:
// manual wins over early-departure proration; the overdue fallback is decided
// later, only when a balance remains.
func chooseDiscount(b *Booking, opts CheckoutOptions, actual time.Time, early bool) (*DiscountGrant, error) {
	if opts.ManualDiscount != nil {
		grant, err := ManualDiscount(b, opts.ManualDiscount.Amount, opts.ManualDiscount.Reason)
		if err != nil {
			return nil, err
		}
		return &grant, nil
	}
	if early {
		grant, err := EarlyCheckoutDiscount(b, actual, opts.EarlyCheckoutReason)
		if err != nil {
			return nil, err
		}
		return &grant, nil
	}
	return nil, nil
}
