package entity

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillStatusDraft    BillStatus = "DRAFT"
	BillStatusSent     BillStatus = "SENT"
	BillStatusPaid     BillStatus = "PAID"
	BillStatusOverdue  BillStatus = "OVERDUE"
	BillStatusFinanced BillStatus = "FINANCED"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) Validate() error {
	switch s {
	case BillStatusDraft, BillStatusSent, BillStatusPaid, BillStatusOverdue, BillStatusFinanced:
		return nil
	default:
		return fmt.Errorf("%w: unknown bill status %q", ErrValidation, string(s))
	}
}

// Bill is an invoice issued by an organization to a customer. Once sent it may
// be listed in the marketplace, where financers bid to advance a percentage of
// its value. CurrentOwnerID holds the actor entitled to collect payment: the
// organization until a bid is accepted, the winning financer afterwards.
type Bill struct {
	ID                  uuid.UUID
	Number              string
	Title               string
	Description         string
	Amount              decimal.Decimal
	DueDate             time.Time
	Status              BillStatus
	IsActive            bool
	IsInMarketplace     bool
	FinancingPercentage decimal.Decimal
	FinancedAmount      decimal.Decimal
	OrganizationID      uuid.UUID
	CustomerID          uuid.UUID
	CurrentOwnerID      uuid.UUID
	FinancerID          uuid.UUID // nil until a bid is accepted
	SentAt              time.Time
	PaidAt              time.Time
	FinancedAt          time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EffectiveStatus derives the status as of now. A bill stored as SENT whose due
// date has passed is OVERDUE regardless of what storage says; there is no
// background sweep, so callers must never trust the stored status for
// eligibility checks. The transition is persisted opportunistically on the next
// write that touches the bill.
func (b Bill) EffectiveStatus(now time.Time) BillStatus {
	if b.Status == BillStatusSent && !b.DueDate.After(now) {
		return BillStatusOverdue
	}

	return b.Status
}

// MarketplaceEligible reports whether the bill may receive bids as of now.
func (b Bill) MarketplaceEligible(now time.Time) bool {
	return b.IsInMarketplace &&
		b.EffectiveStatus(now) == BillStatusSent &&
		b.FinancerID.IsNil()
}

// FinancedAmountFor returns amount * percentage / 100 truncated to 2 decimal
// places. The same formula yields a bid's amount and the financed amount of an
// accepted bill.
func (b Bill) FinancedAmountFor(percentage decimal.Decimal) decimal.Decimal {
	oneHundred := decimal.New(100, 0)

	return b.Amount.Mul(percentage).Div(oneHundred).Round(2)
}

const billNumberRandLen = 6

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBillNumber generates a human-readable, collision-improbable bill number of
// the form BILL-<base36 ms timestamp>-<6 random base36 chars>, uppercased.
func NewBillNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	suffix := make([]byte, billNumberRandLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}

	return fmt.Sprintf("BILL-%s-%s", ts, suffix)
}
