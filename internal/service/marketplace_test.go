package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finbridge/billmarket/internal/entity"
)

func TestService_AcceptBid(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)

	ctx, org := actorCtx(entity.RoleOrganization)
	financerID := uuid.Must(uuid.NewV4())

	bill := marketplaceBill(t, "10000")
	bill.OrganizationID = org.ID

	bid := entity.Bid{
		ID:                  uuid.Must(uuid.NewV4()),
		BillID:              bill.ID,
		FinancerID:          financerID,
		FinancingPercentage: dec(t, "70"),
		BidAmount:           dec(t, "7000"),
		Status:              entity.BidStatusPending,
		ExpiresAt:           time.Now().Add(time.Hour),
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().AcceptBid(ctx, bid, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.Bid, _ time.Time, entries []entity.StatEntry) error {
			require.True(t, statAmount(t, entries, financerID, entity.StatBidsWon).Equal(decOne))
			require.True(t, statAmount(t, entries, financerID, entity.StatAmountInvested).Equal(dec(t, "7000")))

			return nil
		})
	producer.EXPECT().SendBillFinanced(ctx, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, financed entity.Bill, accepted entity.Bid) {
			require.Equal(t, entity.BillStatusFinanced, financed.Status)
			require.Equal(t, entity.BidStatusAccepted, accepted.Status)
		})

	financed, err := s.AcceptBid(ctx, bid.ID)
	require.NoError(t, err)
	require.Equal(t, entity.BillStatusFinanced, financed.Status)
	require.Equal(t, financerID, financed.FinancerID)
	require.Equal(t, financerID, financed.CurrentOwnerID)
	require.True(t, financed.FinancedAmount.Equal(dec(t, "7000")))
	require.False(t, financed.IsInMarketplace)
}

func TestService_AcceptBid_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not the issuer", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)
		ctx, _ := actorCtx(entity.RoleOrganization)

		bill := marketplaceBill(t, "10000")
		bid := entity.Bid{ID: uuid.Must(uuid.NewV4()), BillID: bill.ID, Status: entity.BidStatusPending}

		repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
		repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

		_, err := s.AcceptBid(ctx, bid.ID)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("bill already financed", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)
		ctx, org := actorCtx(entity.RoleOrganization)

		bill := marketplaceBill(t, "10000")
		bill.OrganizationID = org.ID
		bill.Status = entity.BillStatusFinanced
		bill.FinancerID = uuid.Must(uuid.NewV4())

		bid := entity.Bid{ID: uuid.Must(uuid.NewV4()), BillID: bill.ID, Status: entity.BidStatusPending}

		repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
		repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

		_, err := s.AcceptBid(ctx, bid.ID)
		require.ErrorIs(t, err, entity.ErrAlreadyFinanced)
	})

	t.Run("bill overdue", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)
		ctx, org := actorCtx(entity.RoleOrganization)

		bill := marketplaceBill(t, "10000")
		bill.OrganizationID = org.ID
		bill.DueDate = time.Now().Add(-time.Minute)

		bid := entity.Bid{
			ID:        uuid.Must(uuid.NewV4()),
			BillID:    bill.ID,
			Status:    entity.BidStatusPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
		repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
		repo.EXPECT().MarkBillOverdue(ctx, bill.ID, gomock.Any()).Return(nil)

		_, err := s.AcceptBid(ctx, bid.ID)
		require.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("bid expired", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)
		ctx, org := actorCtx(entity.RoleOrganization)

		bill := marketplaceBill(t, "10000")
		bill.OrganizationID = org.ID

		bid := entity.Bid{
			ID:        uuid.Must(uuid.NewV4()),
			BillID:    bill.ID,
			Status:    entity.BidStatusPending,
			ExpiresAt: time.Now().Add(-time.Minute),
		}

		repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
		repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

		_, err := s.AcceptBid(ctx, bid.ID)
		require.ErrorIs(t, err, entity.ErrExpired)
	})

	t.Run("bid already rejected", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)
		ctx, org := actorCtx(entity.RoleOrganization)

		bill := marketplaceBill(t, "10000")
		bill.OrganizationID = org.ID

		bid := entity.Bid{
			ID:        uuid.Must(uuid.NewV4()),
			BillID:    bill.ID,
			Status:    entity.BidStatusRejected,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
		repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

		_, err := s.AcceptBid(ctx, bid.ID)
		require.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("lost the race", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)
		ctx, org := actorCtx(entity.RoleOrganization)

		bill := marketplaceBill(t, "10000")
		bill.OrganizationID = org.ID

		bid := entity.Bid{
			ID:        uuid.Must(uuid.NewV4()),
			BillID:    bill.ID,
			Status:    entity.BidStatusPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
		repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
		// A concurrent accept won between the read and the transaction.
		repo.EXPECT().AcceptBid(ctx, bid, gomock.Any(), gomock.Any()).Return(entity.ErrAlreadyFinanced)

		_, err := s.AcceptBid(ctx, bid.ID)
		require.ErrorIs(t, err, entity.ErrAlreadyFinanced)
	})
}

func TestService_RejectBid(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, org := actorCtx(entity.RoleOrganization)

	bill := marketplaceBill(t, "10000")
	bill.OrganizationID = org.ID

	bid := entity.Bid{
		ID:     uuid.Must(uuid.NewV4()),
		BillID: bill.ID,
		Status: entity.BidStatusPending,
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)
	repo.EXPECT().RejectBid(ctx, bid.ID, gomock.Any()).Return(nil)

	require.NoError(t, s.RejectBid(ctx, bid.ID))
}

func TestService_RejectBid_NotPending(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, org := actorCtx(entity.RoleOrganization)

	bill := marketplaceBill(t, "10000")
	bill.OrganizationID = org.ID

	bid := entity.Bid{
		ID:     uuid.Must(uuid.NewV4()),
		BillID: bill.ID,
		Status: entity.BidStatusAccepted,
	}

	repo.EXPECT().Bid(ctx, bid.ID).Return(bid, nil)
	repo.EXPECT().Bill(ctx, bill.ID).Return(bill, nil)

	require.ErrorIs(t, s.RejectBid(ctx, bid.ID), entity.ErrInvalidState)
}
