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

type CreateBillParams struct {
	Title       string
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	CustomerID  uuid.UUID
}

func (s *Service) CreateBill(ctx context.Context, p CreateBillParams) (entity.Bill, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	if actor.Role != entity.RoleOrganization {
		return entity.Bill{}, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleOrganization)
	}

	now := time.Now()

	err = validateBillTerms(p.Amount, p.DueDate, now)
	if err != nil {
		return entity.Bill{}, err
	}

	customer, err := s.repo.User(ctx, p.CustomerID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get customer %s: %w", p.CustomerID, err)
	}

	if customer.Role != entity.RoleCustomer {
		return entity.Bill{}, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrValidation, customer.ID, customer.Role, entity.RoleCustomer)
	}

	bill := entity.Bill{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         entity.NewBillNumber(now),
		Title:          p.Title,
		Description:    p.Description,
		Amount:         p.Amount.Round(2),
		DueDate:        p.DueDate,
		Status:         entity.BillStatusDraft,
		IsActive:       true,
		OrganizationID: actor.ID,
		CustomerID:     customer.ID,
		CurrentOwnerID: actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	entries := []entity.StatEntry{
		{UserID: actor.ID, Stat: entity.StatBillsCreated, Amount: one},
	}

	err = s.repo.CreateBill(ctx, bill, entries)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("create bill: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Organization %s created bill %s for %s", actor.ID, bill.Number, bill.Amount))

	return bill, nil
}

type UpdateBillParams struct {
	Title       *string
	Description *string
	Amount      *decimal.Decimal
	DueDate     *time.Time
	CustomerID  *uuid.UUID
}

// UpdateBill mutates a draft. Nothing is mutable once the bill left DRAFT.
func (s *Service) UpdateBill(ctx context.Context, billID uuid.UUID, p UpdateBillParams) (entity.Bill, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if bill.OrganizationID != actor.ID {
		return entity.Bill{}, fmt.Errorf("%w: user %s is not the issuer of bill %s",
			entity.ErrForbidden, actor.ID, bill.ID)
	}

	if bill.Status != entity.BillStatusDraft {
		return entity.Bill{}, fmt.Errorf("%w: bill %s status is %q, only drafts are mutable",
			entity.ErrInvalidState, bill.ID, bill.Status)
	}

	if p.Title != nil {
		bill.Title = *p.Title
	}

	if p.Description != nil {
		bill.Description = *p.Description
	}

	if p.Amount != nil {
		bill.Amount = p.Amount.Round(2)
	}

	if p.DueDate != nil {
		bill.DueDate = *p.DueDate
	}

	now := time.Now()

	err = validateBillTerms(bill.Amount, bill.DueDate, now)
	if err != nil {
		return entity.Bill{}, err
	}

	if p.CustomerID != nil && *p.CustomerID != bill.CustomerID {
		customer, err := s.repo.User(ctx, *p.CustomerID)
		if err != nil {
			return entity.Bill{}, fmt.Errorf("get customer %s: %w", *p.CustomerID, err)
		}

		if customer.Role != entity.RoleCustomer {
			return entity.Bill{}, fmt.Errorf("%w: user %s role is %q, not %q",
				entity.ErrValidation, customer.ID, customer.Role, entity.RoleCustomer)
		}

		bill.CustomerID = customer.ID
	}

	bill.UpdatedAt = now

	err = s.repo.UpdateBillDraft(ctx, bill)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("update bill %s: %w", bill.ID, err)
	}

	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, billID uuid.UUID) error {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return fmt.Errorf("get bill %s: %w", billID, err)
	}

	if bill.OrganizationID != actor.ID {
		return fmt.Errorf("%w: user %s is not the issuer of bill %s", entity.ErrForbidden, actor.ID, bill.ID)
	}

	if bill.Status != entity.BillStatusDraft {
		return fmt.Errorf("%w: bill %s status is %q, only drafts can be deleted",
			entity.ErrInvalidState, bill.ID, bill.Status)
	}

	err = s.repo.DeleteBillDraft(ctx, bill.ID)
	if err != nil {
		return fmt.Errorf("delete bill %s: %w", bill.ID, err)
	}

	return nil
}

// SendBill issues the draft to its customer and lists it in the marketplace.
func (s *Service) SendBill(ctx context.Context, billID uuid.UUID) (entity.Bill, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if bill.OrganizationID != actor.ID {
		return entity.Bill{}, fmt.Errorf("%w: user %s is not the issuer of bill %s",
			entity.ErrForbidden, actor.ID, bill.ID)
	}

	if bill.Status != entity.BillStatusDraft {
		return entity.Bill{}, fmt.Errorf("%w: bill %s status is %q, not %q",
			entity.ErrInvalidState, bill.ID, bill.Status, entity.BillStatusDraft)
	}

	now := time.Now()

	entries := []entity.StatEntry{
		{UserID: bill.OrganizationID, Stat: entity.StatBillsSent, Amount: one},
		{UserID: bill.CustomerID, Stat: entity.StatBillsReceived, Amount: one},
	}

	err = s.repo.MarkBillSent(ctx, bill.ID, now, entries)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("send bill %s: %w", bill.ID, err)
	}

	bill.Status = entity.BillStatusSent
	bill.IsInMarketplace = true
	bill.SentAt = now
	bill.UpdatedAt = now

	slog.InfoContext(ctx, fmt.Sprintf("Bill %s sent to customer %s", bill.Number, bill.CustomerID))

	return bill, nil
}

// PayBill settles the bill by its customer. Who earns what depends on
// financing: an unfinanced bill pays revenue to the organization, a financed
// one pays the margin between face value and the advanced amount to the
// financer.
func (s *Service) PayBill(ctx context.Context, billID uuid.UUID) (entity.Bill, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if bill.CustomerID != actor.ID {
		return entity.Bill{}, fmt.Errorf("%w: user %s is not the customer of bill %s",
			entity.ErrForbidden, actor.ID, bill.ID)
	}

	now := time.Now()

	switch status := bill.EffectiveStatus(now); status {
	case entity.BillStatusSent, entity.BillStatusOverdue, entity.BillStatusFinanced:
	case entity.BillStatusPaid:
		return entity.Bill{}, fmt.Errorf("bill %s: %w", bill.ID, entity.ErrAlreadyPaid)
	default:
		return entity.Bill{}, fmt.Errorf("%w: bill %s status is %q, it cannot be paid",
			entity.ErrInvalidState, bill.ID, status)
	}

	entries := []entity.StatEntry{
		{UserID: bill.CustomerID, Stat: entity.StatBillsPaid, Amount: one},
		{UserID: bill.CustomerID, Stat: entity.StatAmountPaid, Amount: bill.Amount},
	}

	if bill.FinancerID.IsNil() {
		entries = append(entries, entity.StatEntry{
			UserID: bill.OrganizationID, Stat: entity.StatRevenueEarned, Amount: bill.Amount,
		})
	} else {
		entries = append(entries, entity.StatEntry{
			UserID: bill.FinancerID, Stat: entity.StatReturnsEarned, Amount: bill.Amount.Sub(bill.FinancedAmount),
		})
	}

	err = s.repo.MarkBillPaid(ctx, bill.ID, now, entries)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("pay bill %s: %w", bill.ID, err)
	}

	bill.Status = entity.BillStatusPaid
	bill.IsActive = false
	bill.IsInMarketplace = false
	bill.PaidAt = now
	bill.UpdatedAt = now

	s.producer.SendBillPaid(ctx, bill)

	slog.InfoContext(ctx, fmt.Sprintf("Bill %s paid by customer %s, amount %s", bill.Number, actor.ID, bill.Amount))

	return bill, nil
}

// Bill returns the bill with its status derived as of now. Only participants
// see it.
func (s *Service) Bill(ctx context.Context, billID uuid.UUID) (entity.Bill, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if actor.ID != bill.OrganizationID && actor.ID != bill.CustomerID && actor.ID != bill.FinancerID {
		return entity.Bill{}, fmt.Errorf("%w: user %s is not a participant of bill %s",
			entity.ErrForbidden, actor.ID, bill.ID)
	}

	bill.Status = bill.EffectiveStatus(time.Now())

	return bill, nil
}

func (s *Service) MarketplaceBills(ctx context.Context, f entity.BillFilter) ([]entity.Bill, int, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if actor.Role != entity.RoleFinancer {
		return nil, 0, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleFinancer)
	}

	bills, count, err := s.repo.MarketplaceBills(ctx, time.Now(), f)
	if err != nil {
		return nil, 0, fmt.Errorf("get marketplace bills: %w", err)
	}

	return bills, count, nil
}

func (s *Service) OrganizationBills(ctx context.Context, f entity.BillFilter) ([]entity.Bill, int, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if actor.Role != entity.RoleOrganization {
		return nil, 0, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleOrganization)
	}

	bills, count, err := s.repo.BillsByOrganization(ctx, actor.ID, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get bills of organization %s: %w", actor.ID, err)
	}

	return s.deriveStatuses(bills), count, nil
}

func (s *Service) CustomerBills(ctx context.Context, f entity.BillFilter) ([]entity.Bill, int, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if actor.Role != entity.RoleCustomer {
		return nil, 0, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleCustomer)
	}

	bills, count, err := s.repo.BillsByCustomer(ctx, actor.ID, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get bills of customer %s: %w", actor.ID, err)
	}

	return s.deriveStatuses(bills), count, nil
}

func (s *Service) deriveStatuses(bills []entity.Bill) []entity.Bill {
	now := time.Now()

	for i := range bills {
		bills[i].Status = bills[i].EffectiveStatus(now)
	}

	return bills
}
