package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleOrganization Role = "ORGANIZATION"
	RoleCustomer     Role = "CUSTOMER"
	RoleFinancer     Role = "FINANCER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	switch r {
	case RoleOrganization, RoleCustomer, RoleFinancer:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrValidation, string(r))
	}
}

// User is the marketplace actor. Identity and authentication live in the auth
// service; this record carries the marketplace-side state (funds, counters).
// AvailableFunds is meaningful for financers only.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Role           Role
	AvailableFunds decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
