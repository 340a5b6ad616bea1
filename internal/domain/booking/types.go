package booking

// Status is the booking lifecycle state. Transitions are monotonic along the
// normal path; completed and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCheckedIn Status = "checked-in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentPaid       PaymentStatus = "paid"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentCancelled  PaymentStatus = "cancelled"
)

// CountsAsReceived reports whether a payment in this status contributes to the
// money actually collected for the booking.
func (s PaymentStatus) CountsAsReceived() bool {
	switch s {
	case PaymentAuthorized, PaymentCompleted, PaymentPaid:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodVoucher  PaymentMethod = "voucher"
)

// PaymentState summarizes how much of the final amount has been collected.
type PaymentState string

const (
	PaymentStateFullyPaid     PaymentState = "fully_paid"
	PaymentStatePartiallyPaid PaymentState = "partially_paid"
	PaymentStateUnpaid        PaymentState = "unpaid"
)

// DiscountSource identifies which policy produced a discount. Exactly one
// source applies per checkout invocation.
type DiscountSource string

const (
	DiscountManual        DiscountSource = "manual"
	DiscountEarlyCheckout DiscountSource = "early_checkout"
	DiscountOverdue       DiscountSource = "overdue"
)
