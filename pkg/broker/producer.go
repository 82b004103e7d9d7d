package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/finbridge/billmarket/internal/entity"
)

// Producer emits marketplace notification events. Delivery is best effort and
// fire-and-forget: the lifecycle transition has already committed by the time
// an event is written, so a write failure is logged, never surfaced.
type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	notificationsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		notificationsTopic: topic,
	}
}

type BillFinancedEvent struct {
	Type                string    `json:"type"`
	BillID              uuid.UUID `json:"billID"`
	BillNumber          string    `json:"billNumber"`
	OrganizationID      uuid.UUID `json:"organizationID"`
	FinancerID          uuid.UUID `json:"financerID"`
	FinancingPercentage string    `json:"financingPercentage"`
	FinancedAmount      string    `json:"financedAmount"`
	FinancedAt          time.Time `json:"financedAt"`
}

func (p *Producer) SendBillFinanced(ctx context.Context, bill entity.Bill, bid entity.Bid) {
	event := BillFinancedEvent{
		Type:                "bill_financed",
		BillID:              bill.ID,
		BillNumber:          bill.Number,
		OrganizationID:      bill.OrganizationID,
		FinancerID:          bid.FinancerID,
		FinancingPercentage: bid.FinancingPercentage.String(),
		FinancedAmount:      bid.BidAmount.String(),
		FinancedAt:          bill.FinancedAt,
	}

	p.send(ctx, bill.Number, event)
}

type BillPaidEvent struct {
	Type           string    `json:"type"`
	BillID         uuid.UUID `json:"billID"`
	BillNumber     string    `json:"billNumber"`
	CustomerID     uuid.UUID `json:"customerID"`
	CurrentOwnerID uuid.UUID `json:"currentOwnerID"`
	Amount         string    `json:"amount"`
	PaidAt         time.Time `json:"paidAt"`
}

func (p *Producer) SendBillPaid(ctx context.Context, bill entity.Bill) {
	event := BillPaidEvent{
		Type:           "bill_paid",
		BillID:         bill.ID,
		BillNumber:     bill.Number,
		CustomerID:     bill.CustomerID,
		CurrentOwnerID: bill.CurrentOwnerID,
		Amount:         bill.Amount.String(),
		PaidAt:         bill.PaidAt,
	}

	p.send(ctx, bill.Number, event)
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.notificationsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
