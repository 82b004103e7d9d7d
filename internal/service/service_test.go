package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finbridge/billmarket/internal/entity"
	"github.com/finbridge/billmarket/internal/mocks"
	"github.com/finbridge/billmarket/internal/service"
)

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return service.New(repo, producer), repo, producer
}

func actorCtx(role entity.Role) (context.Context, entity.User) {
	user := entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Role: role,
	}

	return entity.CtxWithActor(context.Background(), user), user
}

var decOne = decimal.New(1, 0)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func statAmount(t *testing.T, entries []entity.StatEntry, userID uuid.UUID, stat entity.Stat) decimal.Decimal {
	t.Helper()

	for _, e := range entries {
		if e.UserID == userID && e.Stat == stat {
			return e.Amount
		}
	}

	t.Fatalf("no %q entry for user %s", stat, userID)

	return decimal.Decimal{}
}
