package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/trackhabit/trackhabit/internal/logger"
	"github.com/trackhabit/trackhabit/internal/models"
)

// RefreshRewards replaces the reward cache with the server's collection,
// degrading to empty on failure.
func (s *Session) RefreshRewards(ctx context.Context) {
	rewards, err := s.client.ListRewards(ctx)
	if err != nil {
		logger.Error("failed to load rewards", "error", err)
		s.Rewards = nil
		return
	}
	s.Rewards = rewards
}

// RefreshUserRewards replaces the redemption cache.
func (s *Session) RefreshUserRewards(ctx context.Context) {
	userRewards, err := s.client.ListUserRewards(ctx, s.User.ID)
	if err != nil {
		logger.Error("failed to load user rewards", "error", err)
		s.UserRewards = nil
		return
	}
	s.UserRewards = userRewards
}

// CreateReward validates fields client-side and appends the created record.
func (s *Session) CreateReward(ctx context.Context, name string, xpCost int, description string) (models.Reward, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || xpCost <= 0 || description == "" {
		return models.Reward{}, fmt.Errorf("reward name, description and a positive XP cost are required")
	}

	reward, err := s.client.CreateReward(ctx, name, xpCost, description)
	if err != nil {
		return models.Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}

	s.Rewards = append(s.Rewards, reward)
	return reward, nil
}

// UpdateReward edits a reward then refreshes the collection to reconcile.
func (s *Session) UpdateReward(ctx context.Context, rewardID int64, name string, xpCost int, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || xpCost <= 0 {
		return fmt.Errorf("reward name and a positive XP cost are required")
	}

	if _, err := s.client.UpdateReward(ctx, rewardID, name, xpCost, description); err != nil {
		return fmt.Errorf("failed to update reward: %w", err)
	}

	for i := range s.Rewards {
		if s.Rewards[i].ID == rewardID {
			s.Rewards[i].Name = name
			s.Rewards[i].XPCost = xpCost
			s.Rewards[i].Description = description
			break
		}
	}
	s.RefreshRewards(ctx)
	s.Notify.Push(fmt.Sprintf("Item %q atualizado com sucesso! ✏️", name))
	return nil
}

// DeleteReward removes the reward from the local cache only.
func (s *Session) DeleteReward(rewardID int64) {
	for i, r := range s.Rewards {
		if r.ID == rewardID {
			s.Rewards = append(s.Rewards[:i], s.Rewards[i+1:]...)
			s.Notify.Push(fmt.Sprintf("Recompensa %q excluída! 🗑️", r.Name))
			return
		}
	}
}

// FindReward looks up a cached reward by id.
func (s *Session) FindReward(rewardID int64) *models.Reward {
	for i := range s.Rewards {
		if s.Rewards[i].ID == rewardID {
			return &s.Rewards[i]
		}
	}
	return nil
}

// FindRewardByName looks up a cached reward by its exact name.
func (s *Session) FindRewardByName(name string) *models.Reward {
	for i := range s.Rewards {
		if s.Rewards[i].Name == name {
			return &s.Rewards[i]
		}
	}
	return nil
}

// Owned reports whether the user already redeemed the reward.
func (s *Session) Owned(rewardID int64) bool {
	for _, ur := range s.UserRewards {
		if ur.RewardID() == rewardID {
			return true
		}
	}
	return false
}

// RedeemReward exchanges XP for a reward. The affordability guard runs
// before the remote call; the local XP decrement and redemption refresh run
// after it, strictly in sequence.
func (s *Session) RedeemReward(ctx context.Context, rewardID int64) error {
	reward := s.FindReward(rewardID)
	if reward == nil {
		return fmt.Errorf("reward not found: %d", rewardID)
	}
	if s.User.XP < reward.XPCost {
		return fmt.Errorf("not enough XP: have %d, need %d", s.User.XP, reward.XPCost)
	}

	userReward, err := s.client.RedeemReward(ctx, s.User.ID, rewardID)
	if err != nil {
		s.Notify.Push(fmt.Sprintf("Erro ao resgatar recompensa: %s", err))
		return fmt.Errorf("failed to redeem reward: %w", err)
	}

	s.User.XP -= reward.XPCost
	s.UserRewards = append(s.UserRewards, userReward)

	// Best-effort sync; the local decrement already happened, so no
	// fallback adjustment on failure.
	if err := s.RefreshUser(ctx); err != nil {
		logger.Warn("failed to refresh user after redemption", "error", err)
	}
	s.RefreshUserRewards(ctx)

	s.Notify.Push(fmt.Sprintf("Recompensa %q resgatada! 🏆", reward.Name))
	s.runHooks()
	return nil
}
