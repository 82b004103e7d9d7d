package entity_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
)

func TestBill_FinancedAmountFor(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		amount     float64
		percentage float64
		want       float64
	}{
		{
			name:       "whole percentage",
			amount:     10000,
			percentage: 40,
			want:       4000,
		},
		{
			name:       "seventy percent",
			amount:     10000,
			percentage: 70,
			want:       7000,
		},
		{
			name:       "minimum percentage",
			amount:     150.50,
			percentage: 1,
			want:       1.51,
		},
		{
			name:       "maximum percentage",
			amount:     1000,
			percentage: 95,
			want:       950,
		},
		{
			name:       "fractional percentage",
			amount:     999.99,
			percentage: 33.5,
			want:       335,
		},
		{
			name:       "big amount",
			amount:     1_000_000_000.99,
			percentage: 50,
			want:       500_000_000.50,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := entity.Bill{
				Amount: decimal.NewFromFloat(tt.amount),
			}

			got := b.FinancedAmountFor(decimal.NewFromFloat(tt.percentage))
			if got.InexactFloat64() != tt.want {
				t.Errorf("FinancedAmountFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBill_EffectiveStatus(t *testing.T) {
	t.Parallel()

	now := time.Now()

	for _, tt := range []struct {
		name    string
		status  entity.BillStatus
		dueDate time.Time
		want    entity.BillStatus
	}{
		{"sent and not due", entity.BillStatusSent, now.Add(time.Hour), entity.BillStatusSent},
		{"sent and past due", entity.BillStatusSent, now.Add(-time.Hour), entity.BillStatusOverdue},
		{"sent and due right now", entity.BillStatusSent, now, entity.BillStatusOverdue},
		{"draft past due stays draft", entity.BillStatusDraft, now.Add(-time.Hour), entity.BillStatusDraft},
		{"financed past due stays financed", entity.BillStatusFinanced, now.Add(-time.Hour), entity.BillStatusFinanced},
		{"paid past due stays paid", entity.BillStatusPaid, now.Add(-time.Hour), entity.BillStatusPaid},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := entity.Bill{Status: tt.status, DueDate: tt.dueDate}

			if got := b.EffectiveStatus(now); got != tt.want {
				t.Errorf("EffectiveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBill_MarketplaceEligible(t *testing.T) {
	t.Parallel()

	now := time.Now()

	eligible := entity.Bill{
		Status:          entity.BillStatusSent,
		IsInMarketplace: true,
		DueDate:         now.Add(time.Hour),
	}

	if !eligible.MarketplaceEligible(now) {
		t.Error("sent unfinanced listed bill must be eligible")
	}

	pastDue := eligible
	pastDue.DueDate = now.Add(-time.Minute)

	if pastDue.MarketplaceEligible(now) {
		t.Error("a bill past its due date must not be eligible even when stored as SENT")
	}

	financed := eligible
	financed.FinancerID = newUUID(t)

	if financed.MarketplaceEligible(now) {
		t.Error("a bill with a financer must not be eligible")
	}

	unlisted := eligible
	unlisted.IsInMarketplace = false

	if unlisted.MarketplaceEligible(now) {
		t.Error("an unlisted bill must not be eligible")
	}
}

func TestNewBillNumber(t *testing.T) {
	t.Parallel()

	format := regexp.MustCompile(`^BILL-[0-9A-Z]+-[0-9A-Z]{6}$`)

	now := time.Now()

	seen := make(map[string]struct{})

	for range 100 {
		number := entity.NewBillNumber(now)

		if !format.MatchString(number) {
			t.Fatalf("bill number %q does not match the expected format", number)
		}

		if _, ok := seen[number]; ok {
			t.Fatalf("bill number %q generated twice for the same timestamp", number)
		}

		seen[number] = struct{}{}
	}
}
