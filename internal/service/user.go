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

// RegisterUser keeps the local actor row in sync with the identity the auth
// service returned. Idempotent; the role is fixed on first sight.
func (s *Service) RegisterUser(ctx context.Context, user entity.User) error {
	err := user.Role.Validate()
	if err != nil {
		return err
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err = s.repo.UpsertUser(ctx, user)
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", user.ID, err)
	}

	return nil
}

func (s *Service) AddFunds(ctx context.Context, amount decimal.Decimal) (entity.User, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return entity.User{}, err
	}

	if actor.Role != entity.RoleFinancer {
		return entity.User{}, fmt.Errorf("%w: user %s role is %q, not %q",
			entity.ErrForbidden, actor.ID, actor.Role, entity.RoleFinancer)
	}

	if !amount.IsPositive() {
		return entity.User{}, fmt.Errorf("%w: amount %s must be positive", entity.ErrValidation, amount)
	}

	err = s.repo.AddFunds(ctx, actor.ID, amount.Round(2), time.Now())
	if err != nil {
		return entity.User{}, fmt.Errorf("add funds to user %s: %w", actor.ID, err)
	}

	user, err := s.repo.User(ctx, actor.ID)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user %s: %w", actor.ID, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Financer %s added %s, available funds %s",
		actor.ID, amount, user.AvailableFunds))

	return user, nil
}

// UserStats returns the actor's own counters.
func (s *Service) UserStats(ctx context.Context, userID uuid.UUID) (map[entity.Stat]decimal.Decimal, error) {
	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if actor.ID != userID {
		return nil, fmt.Errorf("%w: user %s may not view stats of user %s", entity.ErrForbidden, actor.ID, userID)
	}

	return s.Stats(ctx, userID)
}

// Stats returns any user's counters. Reachable for internal callers only, the
// router guards it with the API key.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (map[entity.Stat]decimal.Decimal, error) {
	stats, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get stats of user %s: %w", userID, err)
	}

	return stats, nil
}
