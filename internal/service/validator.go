package service

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
)

func validateBillTerms(amount decimal.Decimal, dueDate, now time.Time) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount %s must be positive", entity.ErrValidation, amount)
	}

	if !dueDate.After(now) {
		return fmt.Errorf("%w: due date %s must be in the future", entity.ErrValidation, dueDate.Format(time.RFC3339))
	}

	return nil
}

func validateBidTerms(percentage, interest decimal.Decimal, terms string) error {
	if percentage.LessThan(entity.MinFinancingPercentage) ||
		percentage.GreaterThan(entity.MaxFinancingPercentage) {
		return fmt.Errorf("%w: financing percentage %s is out of range [%s, %s]",
			entity.ErrValidation, percentage, entity.MinFinancingPercentage, entity.MaxFinancingPercentage)
	}

	if interest.IsNegative() {
		return fmt.Errorf("%w: interest %s must not be negative", entity.ErrValidation, interest)
	}

	if utf8.RuneCountInString(terms) > entity.TermsMaxLen {
		return fmt.Errorf("%w: terms exceed %d characters", entity.ErrValidation, entity.TermsMaxLen)
	}

	return nil
}
