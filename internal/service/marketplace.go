package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/finbridge/billmarket/internal/entity"
)

// AcceptBid lets the bill's organization take a financer's offer. The
// settlement itself (finance the bill, accept the winner, reject the rest,
// debit the financer) is one storage transaction; the checks here only reject
// early, the transaction's guards are what hold under concurrency.
func (s *Service) AcceptBid(ctx context.Context, bidID uuid.UUID) (entity.Bill, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	bid, err := s.repo.Bid(ctx, bidID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}

	bill, err := s.repo.Bill(ctx, bid.BillID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", bid.BillID, err)
	}

	if bill.OrganizationID != actor.ID {
		return entity.Bill{}, fmt.Errorf("%w: user %s is not the issuer of bill %s",
			entity.ErrForbidden, actor.ID, bill.ID)
	}

	now := time.Now()

	if !bill.FinancerID.IsNil() {
		return entity.Bill{}, fmt.Errorf("bill %s: %w", bill.ID, entity.ErrAlreadyFinanced)
	}

	if bill.EffectiveStatus(now) == entity.BillStatusOverdue {
		if bill.Status == entity.BillStatusSent {
			err = s.repo.MarkBillOverdue(ctx, bill.ID, now)
			if err != nil {
				slog.ErrorContext(ctx, fmt.Sprintf("Mark bill %s overdue: %s", bill.ID, err))
			}
		}

		return entity.Bill{}, fmt.Errorf("%w: bill %s is overdue", entity.ErrInvalidState, bill.ID)
	}

	if bill.Status != entity.BillStatusSent {
		return entity.Bill{}, fmt.Errorf("%w: bill %s status is %q, not %q",
			entity.ErrInvalidState, bill.ID, bill.Status, entity.BillStatusSent)
	}

	if bid.Status != entity.BidStatusPending {
		return entity.Bill{}, fmt.Errorf("%w: bid %s status is %q, not %q",
			entity.ErrInvalidState, bid.ID, bid.Status, entity.BidStatusPending)
	}

	if !bid.ExpiresAt.After(now) {
		return entity.Bill{}, fmt.Errorf("bid %s: %w", bid.ID, entity.ErrExpired)
	}

	entries := []entity.StatEntry{
		{UserID: bid.FinancerID, Stat: entity.StatBidsWon, Amount: one},
		{UserID: bid.FinancerID, Stat: entity.StatAmountInvested, Amount: bid.BidAmount},
	}

	err = s.repo.AcceptBid(ctx, bid, now, entries)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("accept bid %s on bill %s: %w", bid.ID, bill.ID, err)
	}

	bill.Status = entity.BillStatusFinanced
	bill.FinancerID = bid.FinancerID
	bill.CurrentOwnerID = bid.FinancerID
	bill.FinancingPercentage = bid.FinancingPercentage
	bill.FinancedAmount = bid.BidAmount
	bill.IsInMarketplace = false
	bill.FinancedAt = now
	bill.UpdatedAt = now

	bid.Status = entity.BidStatusAccepted
	bid.AcceptedAt = now

	s.producer.SendBillFinanced(ctx, bill, bid)

	slog.InfoContext(ctx, fmt.Sprintf("Bill %s financed by %s at %s%% for %s",
		bill.Number, bid.FinancerID, bid.FinancingPercentage, bid.BidAmount))

	return bill, nil
}

// RejectBid is the organization's explicit refusal of a pending bid. Terminal
// for the bid, the bill stays in the marketplace.
func (s *Service) RejectBid(ctx context.Context, bidID uuid.UUID) error {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	bid, err := s.repo.Bid(ctx, bidID)
	if err != nil {
		return fmt.Errorf("get bid %s: %w", bidID, err)
	}

	bill, err := s.repo.Bill(ctx, bid.BillID)
	if err != nil {
		return fmt.Errorf("get bill %s: %w", bid.BillID, err)
	}

	if bill.OrganizationID != actor.ID {
		return fmt.Errorf("%w: user %s is not the issuer of bill %s", entity.ErrForbidden, actor.ID, bill.ID)
	}

	if bid.Status != entity.BidStatusPending {
		return fmt.Errorf("%w: bid %s status is %q, not %q",
			entity.ErrInvalidState, bid.ID, bid.Status, entity.BidStatusPending)
	}

	err = s.repo.RejectBid(ctx, bid.ID, time.Now())
	if err != nil {
		return fmt.Errorf("reject bid %s: %w", bid.ID, err)
	}

	return nil
}
