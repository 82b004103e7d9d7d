package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateBill(ctx context.Context, bill entity.Bill, entries []entity.StatEntry) error
	Bill(ctx context.Context, id uuid.UUID) (entity.Bill, error)
	UpdateBillDraft(ctx context.Context, bill entity.Bill) error
	DeleteBillDraft(ctx context.Context, id uuid.UUID) error
	MarkBillSent(ctx context.Context, id uuid.UUID, sentAt time.Time, entries []entity.StatEntry) error
	MarkBillPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, entries []entity.StatEntry) error
	MarkBillOverdue(ctx context.Context, id uuid.UUID, now time.Time) error
	MarketplaceBills(ctx context.Context, now time.Time, f entity.BillFilter) ([]entity.Bill, int, error)
	BillsByOrganization(ctx context.Context, organizationID uuid.UUID, f entity.BillFilter) ([]entity.Bill, int, error)
	BillsByCustomer(ctx context.Context, customerID uuid.UUID, f entity.BillFilter) ([]entity.Bill, int, error)

	CreateBid(ctx context.Context, bid entity.Bid, entries []entity.StatEntry) error
	Bid(ctx context.Context, id uuid.UUID) (entity.Bid, error)
	UpdateBid(ctx context.Context, bid entity.Bid) error
	DeleteBid(ctx context.Context, id uuid.UUID) error
	RejectBid(ctx context.Context, id uuid.UUID, now time.Time) error
	ActiveBids(ctx context.Context, billID uuid.UUID, now time.Time) ([]entity.Bid, error)
	HighestBid(ctx context.Context, billID uuid.UUID, now time.Time) (entity.Bid, error)
	BidsByFinancer(ctx context.Context, financerID uuid.UUID) ([]entity.Bid, error)
	AcceptBid(ctx context.Context, bid entity.Bid, now time.Time, entries []entity.StatEntry) error

	UpsertUser(ctx context.Context, user entity.User) error
	User(ctx context.Context, id uuid.UUID) (entity.User, error)
	AddFunds(ctx context.Context, id uuid.UUID, amount decimal.Decimal, now time.Time) error
	UserStats(ctx context.Context, id uuid.UUID) (map[entity.Stat]decimal.Decimal, error)
}

type Producer interface {
	SendBillFinanced(ctx context.Context, bill entity.Bill, bid entity.Bid)
	SendBillPaid(ctx context.Context, bill entity.Bill)
}

type Service struct {
	repo     Repository
	producer Producer
}

func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
	}
}

var one = decimal.New(1, 0)
