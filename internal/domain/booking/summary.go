package booking

// FinancialSummary is the reconciled financial state derived from the raw
// records attached to a booking. The five scalar fields are the contract the
// checkout and cancellation logic rely on; the breakdown is derived data for
// receipts only.
type FinancialSummary struct {
	TotalPaid         Money
	TotalExtras       Money
	TotalFinal        Money
	TotalPending      Money
	IsFullyPaid       bool
	PaymentPercentage int
	PaymentState      PaymentState
	Breakdown         Breakdown
}

type Breakdown struct {
	RoomCharge Money
	Tax        Money
	Discounts  []DiscountLine
	Extras     []ExtraLine
	Payments   []PaymentLine
}

type DiscountLine struct {
	Amount Money
	Reason string
}

type ExtraLine struct {
	Description string
	UnitAmount  Money
	Quantity    int
	LineTotal   Money
}

type PaymentLine struct {
	Amount    Money
	Method    PaymentMethod
	Status    PaymentStatus
	Reference string
	Counted   bool
}

// Summarize reconciles a booking aggregate into its financial summary. It is
// pure and total: a nil booking yields the zero summary, malformed records
// contribute nothing, and it never returns an error.
func Summarize(b *Booking) FinancialSummary {
	if b == nil {
		return FinancialSummary{
			IsFullyPaid:       true,
			PaymentPercentage: 100,
			PaymentState:      PaymentStateFullyPaid,
		}
	}

	var paidCents int64
	paymentLines := make([]PaymentLine, 0, len(b.Payments()))
	for _, p := range b.Payments() {
		counted := p.Status.CountsAsReceived() && p.Amount.IsPositive()
		if counted {
			paidCents += p.Amount.Cents()
		}
		paymentLines = append(paymentLines, PaymentLine{
			Amount:    p.Amount,
			Method:    p.Method,
			Status:    p.Status,
			Reference: p.Reference,
			Counted:   counted,
		})
	}

	var extrasCents int64
	extraLines := make([]ExtraLine, 0, len(b.ExtraCharges()))
	for _, e := range b.ExtraCharges() {
		line := e.LineTotal()
		extrasCents += line.Cents()
		extraLines = append(extraLines, ExtraLine{
			Description: e.Description,
			UnitAmount:  e.Amount,
			Quantity:    e.Quantity,
			LineTotal:   line,
		})
	}

	finalCents := b.OriginalAmount().Cents() - b.DiscountAmount().Cents() + extrasCents + b.TaxAmount().Cents()
	if finalCents < 0 {
		finalCents = 0
	}

	pendingCents := finalCents - paidCents
	if pendingCents < 0 {
		pendingCents = 0
	}

	var discountLines []DiscountLine
	if b.DiscountAmount().IsPositive() {
		discountLines = append(discountLines, DiscountLine{
			Amount: b.DiscountAmount(),
			Reason: b.DiscountReason(),
		})
	}

	s := FinancialSummary{
		TotalPaid:    NewMoney(paidCents),
		TotalExtras:  NewMoney(extrasCents),
		TotalFinal:   NewMoney(finalCents),
		TotalPending: NewMoney(pendingCents),
		IsFullyPaid:  pendingCents == 0,
		Breakdown: Breakdown{
			RoomCharge: b.OriginalAmount(),
			Tax:        b.TaxAmount(),
			Discounts:  discountLines,
			Extras:     extraLines,
			Payments:   paymentLines,
		},
	}

	s.PaymentPercentage = paymentPercentage(paidCents, finalCents)
	s.PaymentState = paymentState(s.IsFullyPaid, paidCents)
	return s
}

func paymentPercentage(paid, final int64) int {
	if final <= 0 {
		return 100
	}
	pct := (paid*100 + final/2) / final
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

func paymentState(fullyPaid bool, paidCents int64) PaymentState {
	switch {
	case fullyPaid:
		return PaymentStateFullyPaid
	case paidCents > 0:
		return PaymentStatePartiallyPaid
	default:
		return PaymentStateUnpaid
	}
}
