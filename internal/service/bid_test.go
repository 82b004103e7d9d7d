package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finbridge/billmarket/internal/entity"
	"github.com/finbridge/billmarket/internal/service"
)

func marketplaceBill(t *testing.T, amount string) entity.Bill {
	t.Helper()

	return entity.Bill{
		ID:              uuid.Must(uuid.NewV4()),
		Number:          entity.NewBillNumber(time.Now()),
		Amount:          dec(t, amount),
		DueDate:         time.Now().Add(30 * 24 * time.Hour),
		Status:          entity.BillStatusSent,
		IsActive:        true,
		IsInMarketplace: true,
		OrganizationID:  uuid.Must(uuid.NewV4()),
		CustomerID:      uuid.Must(uuid.NewV4()),
	}
}

func TestService_PlaceBid(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)
	bill := marketplaceBill(t, "10000")

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().User(ctx, financer.ID).
		Return(entity.User{ID: financer.ID, Role: entity.RoleFinancer, AvailableFunds: dec(t, "5000")}, nil)
	repo.EXPECT().CreateBid(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bid entity.Bid, entries []entity.StatEntry) error {
			// 40% of 10000 advances 4000.
			require.True(t, bid.BidAmount.Equal(dec(t, "4000")))
			require.Equal(t, entity.BidStatusPending, bid.Status)
			require.Equal(t, bill.ID, bid.BillID)
			require.Equal(t, financer.ID, bid.FinancerID)
			require.WithinDuration(t, time.Now().Add(entity.BidTTL), bid.ExpiresAt, time.Minute)
			require.True(t, statAmount(t, entries, financer.ID, entity.StatBidsPlaced).Equal(decOne))

			return nil
		})

	bid, err := s.PlaceBid(ctx, bill.ID, service.PlaceBidParams{
		FinancingPercentage: dec(t, "40"),
	})
	require.NoError(t, err)
	require.True(t, bid.BidAmount.Equal(dec(t, "4000")))
}

func TestService_PlaceBid_InsufficientFunds(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)
	bill := marketplaceBill(t, "10000")

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().User(ctx, financer.ID).
		Return(entity.User{ID: financer.ID, Role: entity.RoleFinancer, AvailableFunds: dec(t, "3999.99")}, nil)

	_, err := s.PlaceBid(ctx, bill.ID, service.PlaceBidParams{
		FinancingPercentage: dec(t, "40"),
	})
	require.ErrorIs(t, err, entity.ErrInsufficientFunds)
}

func TestService_PlaceBid_Duplicate(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)
	bill := marketplaceBill(t, "10000")

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().User(ctx, financer.ID).
		Return(entity.User{ID: financer.ID, Role: entity.RoleFinancer, AvailableFunds: dec(t, "10000")}, nil)
	repo.EXPECT().CreateBid(ctx, gomock.Any(), gomock.Any()).Return(entity.ErrDuplicateBid)

	_, err := s.PlaceBid(ctx, bill.ID, service.PlaceBidParams{
		FinancingPercentage: dec(t, "40"),
	})
	require.ErrorIs(t, err, entity.ErrDuplicateBid)
}

func TestService_PlaceBid_OverdueBill(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, _ := actorCtx(entity.RoleFinancer)

	bill := marketplaceBill(t, "10000")
	bill.DueDate = time.Now().Add(-time.Minute)

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	// Lazily derived OVERDUE is persisted before the bid is refused.
	repo.EXPECT().MarkBillOverdue(ctx, bill.ID, gomock.Any()).Return(nil)

	_, err := s.PlaceBid(ctx, bill.ID, service.PlaceBidParams{
		FinancingPercentage: dec(t, "40"),
	})
	require.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestService_PlaceBid_FinancedBill(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, _ := actorCtx(entity.RoleFinancer)

	bill := marketplaceBill(t, "10000")
	bill.Status = entity.BillStatusFinanced
	bill.FinancerID = uuid.Must(uuid.NewV4())
	bill.IsInMarketplace = false

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

	_, err := s.PlaceBid(ctx, bill.ID, service.PlaceBidParams{
		FinancingPercentage: dec(t, "40"),
	})
	require.ErrorIs(t, err, entity.ErrAlreadyFinanced)
}

func TestService_PlaceBid_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params service.PlaceBidParams
	}{
		{"percentage below minimum", service.PlaceBidParams{FinancingPercentage: decimalFrom("0.5")}},
		{"percentage above maximum", service.PlaceBidParams{FinancingPercentage: decimalFrom("95.01")}},
		{"negative interest", service.PlaceBidParams{FinancingPercentage: decimalFrom("40"), Interest: decimalFrom("-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, _ := newService(t)
			ctx, _ := actorCtx(entity.RoleFinancer)

			_, err := s.PlaceBid(ctx, uuid.Must(uuid.NewV4()), tt.params)
			require.ErrorIs(t, err, entity.ErrValidation)
		})
	}
}

func TestService_PlaceBid_WrongRole(t *testing.T) {
	t.Parallel()

	s, _, _ := newService(t)

	ctx, _ := actorCtx(entity.RoleOrganization)

	_, err := s.PlaceBid(ctx, uuid.Must(uuid.NewV4()), service.PlaceBidParams{
		FinancingPercentage: decimalFrom("40"),
	})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_UpdateBid_RecomputesAmount(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)
	bill := marketplaceBill(t, "10000")

	bid := entity.Bid{
		ID:                  uuid.Must(uuid.NewV4()),
		BillID:              bill.ID,
		FinancerID:          financer.ID,
		FinancingPercentage: dec(t, "40"),
		BidAmount:           dec(t, "4000"),
		Status:              entity.BidStatusPending,
		ExpiresAt:           time.Now().Add(time.Hour),
	}

	newPct := dec(t, "70")

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().User(ctx, financer.ID).
		Return(entity.User{ID: financer.ID, Role: entity.RoleFinancer, AvailableFunds: dec(t, "7000")}, nil)
	repo.EXPECT().UpdateBid(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated entity.Bid) error {
			require.True(t, updated.BidAmount.Equal(dec(t, "7000")))
			require.True(t, updated.FinancingPercentage.Equal(newPct))

			return nil
		})

	updated, err := s.UpdateBid(ctx, bid.ID, service.UpdateBidParams{FinancingPercentage: &newPct})
	require.NoError(t, err)
	require.True(t, updated.BidAmount.Equal(dec(t, "7000")))
}

func TestService_UpdateBid_FundsRechecked(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)
	bill := marketplaceBill(t, "10000")

	bid := entity.Bid{
		ID:                  uuid.Must(uuid.NewV4()),
		BillID:              bill.ID,
		FinancerID:          financer.ID,
		FinancingPercentage: dec(t, "40"),
		BidAmount:           dec(t, "4000"),
		Status:              entity.BidStatusPending,
		ExpiresAt:           time.Now().Add(time.Hour),
	}

	newPct := dec(t, "70")

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().User(ctx, financer.ID).
		Return(entity.User{ID: financer.ID, Role: entity.RoleFinancer, AvailableFunds: dec(t, "5000")}, nil)

	_, err := s.UpdateBid(ctx, bid.ID, service.UpdateBidParams{FinancingPercentage: &newPct})
	require.ErrorIs(t, err, entity.ErrInsufficientFunds)
}

func TestService_UpdateBid_Expired(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)

	bid := entity.Bid{
		ID:         uuid.Must(uuid.NewV4()),
		FinancerID: financer.ID,
		Status:     entity.BidStatusPending,
		ExpiresAt:  time.Now().Add(-time.Minute),
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)

	terms := "net 30"

	_, err := s.UpdateBid(ctx, bid.ID, service.UpdateBidParams{Terms: &terms})
	require.ErrorIs(t, err, entity.ErrExpired)
}

func TestService_UpdateBid_NotOwner(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, _ := actorCtx(entity.RoleFinancer)

	bid := entity.Bid{
		ID:         uuid.Must(uuid.NewV4()),
		FinancerID: uuid.Must(uuid.NewV4()),
		Status:     entity.BidStatusPending,
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)

	terms := "net 30"

	_, err := s.UpdateBid(ctx, bid.ID, service.UpdateBidParams{Terms: &terms})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CancelBid(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)

	bid := entity.Bid{
		ID:         uuid.Must(uuid.NewV4()),
		FinancerID: financer.ID,
		Status:     entity.BidStatusPending,
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
	repo.EXPECT().DeleteBid(ctx, bid.ID).Return(nil)

	require.NoError(t, s.CancelBid(ctx, bid.ID))
}

func TestService_CancelBid_Accepted(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)

	bid := entity.Bid{
		ID:         uuid.Must(uuid.NewV4()),
		FinancerID: financer.ID,
		Status:     entity.BidStatusAccepted,
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)

	require.ErrorIs(t, s.CancelBid(ctx, bid.ID), entity.ErrInvalidState)
}

func TestService_HighestBid(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, org := actorCtx(entity.RoleOrganization)

	bill := marketplaceBill(t, "10000")
	bill.OrganizationID = org.ID

	best := entity.Bid{
		ID:                  uuid.Must(uuid.NewV4()),
		BillID:              bill.ID,
		FinancingPercentage: dec(t, "70"),
		Status:              entity.BidStatusPending,
	}

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().HighestBid(ctx, bill.ID, gomock.Any()).Return(best, nil)

	got, err := s.HighestBid(ctx, bill.ID)
	require.NoError(t, err)
	require.Equal(t, best.ID, got.ID)
}

func TestService_BillBids_CustomerForbidden(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, _ := actorCtx(entity.RoleCustomer)

	bill := marketplaceBill(t, "10000")

	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

	_, err := s.BillBids(ctx, bill.ID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func decimalFrom(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
