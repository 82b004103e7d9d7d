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
)

func TestService_AddFunds(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)

	repo.EXPECT().AddFunds(ctx, financer.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, amount decimal.Decimal, _ time.Time) error {
			require.True(t, amount.Equal(dec(t, "1000.5")))

			return nil
		})
	repo.EXPECT().User(ctx, financer.ID).
		Return(entity.User{ID: financer.ID, AvailableFunds: dec(t, "1500.5")}, nil)

	user, err := s.AddFunds(ctx, dec(t, "1000.50"))
	require.NoError(t, err)
	require.True(t, user.AvailableFunds.Equal(dec(t, "1500.5")))
}

func TestService_AddFunds_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		role    entity.Role
		amount  decimal.Decimal
		wantErr error
	}{
		{"organization cannot add funds", entity.RoleOrganization, decimal.New(100, 0), entity.ErrForbidden},
		{"zero amount", entity.RoleFinancer, decimal.Decimal{}, entity.ErrValidation},
		{"negative amount", entity.RoleFinancer, decimal.New(-5, 0), entity.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, _ := newService(t)
			ctx, _ := actorCtx(tt.role)

			_, err := s.AddFunds(ctx, tt.amount)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UserStats_OwnOnly(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	ctx, financer := actorCtx(entity.RoleFinancer)

	stats := map[entity.Stat]decimal.Decimal{
		entity.StatBidsPlaced: decimal.New(3, 0),
		entity.StatBidsWon:    decimal.New(1, 0),
	}

	repo.EXPECT().UserStats(ctx, financer.ID).Return(stats, nil)

	got, err := s.UserStats(ctx, financer.ID)
	require.NoError(t, err)
	require.Equal(t, stats, got)

	_, err = s.UserStats(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_RegisterUser_InvalidRole(t *testing.T) {
	t.Parallel()

	s, _, _ := newService(t)

	err := s.RegisterUser(context.Background(), entity.User{ID: uuid.Must(uuid.NewV4()), Role: "ADMIN"})
	require.ErrorIs(t, err, entity.ErrValidation)
}
