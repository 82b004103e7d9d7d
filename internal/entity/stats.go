package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Stat names a per-user running counter. Counters are write-only accumulators:
// every lifecycle transition adds to them exactly once, inside the same
// transaction as the transition itself.
type Stat string

const (
	StatBillsCreated   Stat = "bills_created"
	StatBillsSent      Stat = "bills_sent"
	StatBillsReceived  Stat = "bills_received"
	StatBillsPaid      Stat = "bills_paid"
	StatAmountPaid     Stat = "amount_paid"
	StatRevenueEarned  Stat = "revenue_earned"
	StatReturnsEarned  Stat = "returns_earned"
	StatBidsPlaced     Stat = "bids_placed"
	StatBidsWon        Stat = "bids_won"
	StatAmountInvested Stat = "amount_invested"
)

func (s Stat) String() string {
	return string(s)
}

// StatEntry is one counter increment to apply alongside a state transition.
type StatEntry struct {
	UserID uuid.UUID
	Stat   Stat
	Amount decimal.Decimal
}
