package rewards

import (
	"context"
	"fmt"

	"motorhub/models"
	"motorhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PointsEarned converts a cart subtotal to reward points: perUnit
// points per whole unit of subtotal, floor-rounded. No partial-unit
// credit.
func PointsEarned(subtotal, unit, perUnit int64) int64 {
	if unit <= 0 || subtotal <= 0 {
		return 0
	}
	return subtotal / unit * perUnit
}

// Redeem applies a redemption against a balance. When the amount
// exceeds the balance it reports false and returns the balance
// unchanged; a balance can never go negative.
func Redeem(balance, amount int64) (int64, bool) {
	if amount > balance {
		return balance, false
	}
	return balance - amount, true
}

// RewardsService manages session point balances.
type RewardsService interface {
	Account(ctx context.Context, sessionID string) (models.RewardsAccount, error)
	Grant(ctx context.Context, sessionID string, amount int64, reason models.GrantReason) (models.RewardsAccount, error)
	RedeemPoints(ctx context.Context, sessionID string, amount int64) (models.RewardsAccount, bool, error)
}

// DefaultRewardsService keeps balances in Redis, one integer key per
// session. Sessions are single-writer, so plain get/set suffices.
type DefaultRewardsService struct {
	Client *redis.Client
	Logger *zap.Logger
}

func balanceKey(sessionID string) string {
	return utils.RewardsKeyPrefix + sessionID
}

// Account returns the session's balance; an unknown session has zero.
func (s *DefaultRewardsService) Account(ctx context.Context, sessionID string) (models.RewardsAccount, error) {
	balance, err := s.Client.Get(ctx, balanceKey(sessionID)).Int64()
	if err != nil && err != redis.Nil {
		return models.RewardsAccount{}, fmt.Errorf("failed to read rewards balance: %w", err)
	}
	return models.RewardsAccount{SessionID: sessionID, Balance: balance}, nil
}

// Grant adds amount points. Negative grants are rejected; the balance
// is mutated only through Grant and RedeemPoints.
func (s *DefaultRewardsService) Grant(ctx context.Context, sessionID string, amount int64, reason models.GrantReason) (models.RewardsAccount, error) {
	if amount < 0 {
		return models.RewardsAccount{}, fmt.Errorf("grant amount must be non-negative, got %d", amount)
	}
	balance, err := s.Client.IncrBy(ctx, balanceKey(sessionID), amount).Result()
	if err != nil {
		return models.RewardsAccount{}, fmt.Errorf("failed to grant points: %w", err)
	}
	s.Logger.Info("points granted",
		zap.String("sessionId", sessionID),
		zap.Int64("amount", amount),
		zap.String("reason", string(reason)))
	return models.RewardsAccount{SessionID: sessionID, Balance: balance}, nil
}

// RedeemPoints redeems amount points if the balance covers it. An
// insufficient balance is reported as ok=false with the balance
// untouched, never as an error.
func (s *DefaultRewardsService) RedeemPoints(ctx context.Context, sessionID string, amount int64) (models.RewardsAccount, bool, error) {
	key := balanceKey(sessionID)
	balance, err := s.Client.Get(ctx, key).Int64()
	if err != nil && err != redis.Nil {
		return models.RewardsAccount{}, false, fmt.Errorf("failed to read rewards balance: %w", err)
	}

	newBalance, ok := Redeem(balance, amount)
	if !ok {
		return models.RewardsAccount{SessionID: sessionID, Balance: balance}, false, nil
	}
	if err := s.Client.Set(ctx, key, newBalance, 0).Err(); err != nil {
		return models.RewardsAccount{}, false, fmt.Errorf("failed to store rewards balance: %w", err)
	}
	s.Logger.Info("points redeemed",
		zap.String("sessionId", sessionID),
		zap.Int64("amount", amount),
		zap.Int64("balance", newBalance))
	return models.RewardsAccount{SessionID: sessionID, Balance: newBalance}, true, nil
}
