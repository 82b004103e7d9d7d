package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
)

type PlaceBidParams struct {
	FinancingPercentage decimal.Decimal
	Interest            decimal.Decimal
	Terms               string
}

// PlaceBid places a financer's offer on a marketplace bill. The bid amount is
// derived from the bill, never taken from the caller, and placement is the
// only point at which funds sufficiency is checked.
func (s *Service) PlaceBid(ctx context.Context, billID uuid.UUID, p PlaceBidParams) (entity.Bid, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bid{}, err
	}

	if actor.Role != entity.RoleFinancer {
		return entity.Bid{}, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleFinancer)
	}

	err = validateBidTerms(p.FinancingPercentage, p.Interest, p.Terms)
	if err != nil {
		return entity.Bid{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	now := time.Now()

	err = s.checkBillBiddable(ctx, bill, now)
	if err != nil {
		return entity.Bid{}, err
	}

	bidAmount := bill.FinancedAmountFor(p.FinancingPercentage)

	financer, err := s.repo.User(ctx, actor.ID)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("get financer %s: %w", actor.ID, err)
	}

	if financer.AvailableFunds.LessThan(bidAmount) {
		return entity.Bid{}, fmt.Errorf("%w: bid amount %s exceeds available funds %s",
			entity.ErrInsufficientFunds, bidAmount, financer.AvailableFunds)
	}

	bid := entity.Bid{
		ID:                  uuid.Must(uuid.NewV4()),
		BillID:              bill.ID,
		FinancerID:          actor.ID,
		FinancingPercentage: p.FinancingPercentage,
		BidAmount:           bidAmount,
		Status:              entity.BidStatusPending,
		Interest:            p.Interest,
		Terms:               p.Terms,
		ExpiresAt:           now.Add(entity.BidTTL),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	entries := []entity.StatEntry{
		{UserID: actor.ID, Stat: entity.StatBidsPlaced, Amount: one},
	}

	err = s.repo.CreateBid(ctx, bid, entries)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("create bid on bill %s: %w", bill.ID, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Financer %s bid %s%% (%s) on bill %s",
		actor.ID, bid.FinancingPercentage, bid.BidAmount, bill.Number))

	return bid, nil
}

type UpdateBidParams struct {
	FinancingPercentage *decimal.Decimal
	Interest            *decimal.Decimal
	Terms               *string
}

// UpdateBid amends a pending, unexpired bid. A percentage change recomputes
// the bid amount and re-checks funds against it.
func (s *Service) UpdateBid(ctx context.Context, bidID uuid.UUID, p UpdateBidParams) (entity.Bid, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bid{}, err
	}

	bid, err := s.repo.Bid(ctx, bidID)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}

	if bid.FinancerID != actor.ID {
		return entity.Bid{}, fmt.Errorf("%w: user %s is not the owner of bid %s",
			entity.ErrForbidden, actor.ID, bid.ID)
	}

	now := time.Now()

	if bid.Status != entity.BidStatusPending {
		return entity.Bid{}, fmt.Errorf("%w: bid %s status is %q, not %q",
			entity.ErrInvalidState, bid.ID, bid.Status, entity.BidStatusPending)
	}

	if !bid.ExpiresAt.After(now) {
		return entity.Bid{}, fmt.Errorf("bid %s: %w", bid.ID, entity.ErrExpired)
	}

	bill, err := s.repo.Bill(ctx, bid.BillID)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("get bill %s: %w", bid.BillID, err)
	}

	err = s.checkBillBiddable(ctx, bill, now)
	if err != nil {
		return entity.Bid{}, err
	}

	if p.Interest != nil {
		bid.Interest = *p.Interest
	}

	if p.Terms != nil {
		bid.Terms = *p.Terms
	}

	if p.FinancingPercentage != nil {
		bid.FinancingPercentage = *p.FinancingPercentage
	}

	err = validateBidTerms(bid.FinancingPercentage, bid.Interest, bid.Terms)
	if err != nil {
		return entity.Bid{}, err
	}

	if p.FinancingPercentage != nil {
		bid.BidAmount = bill.FinancedAmountFor(bid.FinancingPercentage)

		financer, err := s.repo.User(ctx, actor.ID)
		if err != nil {
			return entity.Bid{}, fmt.Errorf("get financer %s: %w", actor.ID, err)
		}

		if financer.AvailableFunds.LessThan(bid.BidAmount) {
			return entity.Bid{}, fmt.Errorf("%w: bid amount %s exceeds available funds %s",
				entity.ErrInsufficientFunds, bid.BidAmount, financer.AvailableFunds)
		}
	}

	bid.UpdatedAt = now

	err = s.repo.UpdateBid(ctx, bid)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("update bid %s: %w", bid.ID, err)
	}

	return bid, nil
}

// CancelBid removes the financer's own pending bid. The record is deleted, so
// the financer may bid on the same bill again.
func (s *Service) CancelBid(ctx context.Context, bidID uuid.UUID) error {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	bid, err := s.repo.Bid(ctx, bidID)
	if err != nil {
		return fmt.Errorf("get bid %s: %w", bidID, err)
	}

	if bid.FinancerID != actor.ID {
		return fmt.Errorf("%w: user %s is not the owner of bid %s", entity.ErrForbidden, actor.ID, bid.ID)
	}

	if bid.Status != entity.BidStatusPending {
		return fmt.Errorf("%w: bid %s status is %q, not %q",
			entity.ErrInvalidState, bid.ID, bid.Status, entity.BidStatusPending)
	}

	err = s.repo.DeleteBid(ctx, bid.ID)
	if err != nil {
		return fmt.Errorf("delete bid %s: %w", bid.ID, err)
	}

	return nil
}

// BillBids lists the pending, unexpired bids on a bill. Visible to the bill's
// organization and to financers sizing up the competition.
func (s *Service) BillBids(ctx context.Context, billID uuid.UUID) ([]entity.Bid, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if actor.ID != bill.OrganizationID && actor.Role != entity.RoleFinancer {
		return nil, fmt.Errorf("%w: user %s may not view bids on bill %s", entity.ErrForbidden, actor.ID, bill.ID)
	}

	bids, err := s.repo.ActiveBids(ctx, bill.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("get active bids on bill %s: %w", bill.ID, err)
	}

	return bids, nil
}

// HighestBid returns the best pending, unexpired bid on a bill: the greatest
// financing percentage wins, the earliest placed breaks ties.
func (s *Service) HighestBid(ctx context.Context, billID uuid.UUID) (entity.Bid, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bid{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if actor.ID != bill.OrganizationID && actor.Role != entity.RoleFinancer {
		return entity.Bid{}, fmt.Errorf("%w: user %s may not view bids on bill %s",
			entity.ErrForbidden, actor.ID, bill.ID)
	}

	bid, err := s.repo.HighestBid(ctx, bill.ID, time.Now())
	if err != nil {
		return entity.Bid{}, fmt.Errorf("get highest bid on bill %s: %w", bill.ID, err)
	}

	return bid, nil
}

func (s *Service) FinancerBids(ctx context.Context) ([]entity.Bid, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if actor.Role != entity.RoleFinancer {
		return nil, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleFinancer)
	}

	bids, err := s.repo.BidsByFinancer(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get bids of financer %s: %w", actor.ID, err)
	}

	return bids, nil
}

// checkBillBiddable verifies the bill may receive or amend bids as of now. A
// bill found overdue is persisted as such before failing, so storage catches
// up with the derived state.
func (s *Service) checkBillBiddable(ctx context.Context, bill entity.Bill, now time.Time) error {
	if !bill.FinancerID.IsNil() {
		return fmt.Errorf("bill %s: %w", bill.ID, entity.ErrAlreadyFinanced)
	}

	if bill.EffectiveStatus(now) == entity.BillStatusOverdue {
		if bill.Status == entity.BillStatusSent {
			err := s.repo.MarkBillOverdue(ctx, bill.ID, now)
			if err != nil {
				slog.ErrorContext(ctx, fmt.Sprintf("Mark bill %s overdue: %s", bill.ID, err))
			}
		}

		return fmt.Errorf("%w: bill %s is overdue", entity.ErrInvalidState, bill.ID)
	}

	if !bill.MarketplaceEligible(now) {
		return fmt.Errorf("%w: bill %s status is %q, it is not open for bids",
			entity.ErrInvalidState, bill.ID, bill.EffectiveStatus(now))
	}

	return nil
}
