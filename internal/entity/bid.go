package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidStatusPending  BidStatus = "PENDING"
	BidStatusAccepted BidStatus = "ACCEPTED"
	BidStatusRejected BidStatus = "REJECTED"
	BidStatusExpired  BidStatus = "EXPIRED"
)

func (s BidStatus) String() string {
	return string(s)
}

func (s BidStatus) Validate() error {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected, BidStatusExpired:
		return nil
	default:
		return fmt.Errorf("%w: unknown bid status %q", ErrValidation, string(s))
	}
}

// BidTTL is the exact lifetime of a bid from its issuance.
const BidTTL = 24 * time.Hour

const TermsMaxLen = 500

var (
	MinFinancingPercentage = decimal.New(1, 0)
	MaxFinancingPercentage = decimal.New(95, 0)
)

// Bid is a financer's offer to advance a percentage of a bill's value.
// BidAmount is derived from the parent bill's amount and is recomputed whenever
// the percentage changes. At most one bid per (bill, financer) pair exists;
// the storage layer is the authoritative guard for that.
type Bid struct {
	ID                  uuid.UUID
	BillID              uuid.UUID
	FinancerID          uuid.UUID
	FinancingPercentage decimal.Decimal
	BidAmount           decimal.Decimal
	Status              BidStatus
	Interest            decimal.Decimal
	Terms               string
	ExpiresAt           time.Time
	AcceptedAt          time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Actionable reports whether the bid may still be updated, accepted or
// canceled. Expiry is evaluated lazily: a stored PENDING bid past its
// ExpiresAt is not actionable even though storage still says PENDING.
func (b Bid) Actionable(now time.Time) bool {
	return b.Status == BidStatusPending && b.ExpiresAt.After(now)
}
