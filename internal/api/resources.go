package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trackhabit/trackhabit/internal/models"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and returns the user record.
func (c *Client) Login(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	_, err := c.do(ctx, http.MethodPost, "/users/login", credentials{username, password}, &user)
	if err != nil {
		return models.User{}, err
	}
	c.online.Store(true)
	return user, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	_, err := c.do(ctx, http.MethodPost, "/users/register", credentials{username, password}, &user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUser re-fetches the user record for authoritative XP and streak values.
func (c *Client) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user)
	return user, err
}

func (c *Client) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	var habits []models.Habit
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/habits", userID), nil, &habits)
	return habits, err
}

type habitFields struct {
	Name    string `json:"name"`
	XPValue int    `json:"xpValue"`
}

func (c *Client) CreateHabit(ctx context.Context, userID int64, name string, xpValue int) (models.Habit, error) {
	var habit models.Habit
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/habits", userID), habitFields{name, xpValue}, &habit)
	return habit, err
}

func (c *Client) UpdateHabit(ctx context.Context, habitID int64, name string, xpValue int) (models.Habit, error) {
	var habit models.Habit
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/habits/%d", habitID), habitFields{name, xpValue}, &habit)
	return habit, err
}

// CompleteHabit records a completion for today. The backend wraps the new
// log entry in a {"habitLog": ...} envelope.
func (c *Client) CompleteHabit(ctx context.Context, userID, habitID int64) (models.HabitLog, error) {
	var envelope struct {
		HabitLog models.HabitLog `json:"habitLog"`
	}
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/habits/%d/complete", userID, habitID), nil, &envelope)
	return envelope.HabitLog, err
}

func (c *Client) ListHabitLogs(ctx context.Context, userID int64) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/habits/history", userID), nil, &logs)
	return logs, err
}

func (c *Client) ListRewards(ctx context.Context) ([]models.Reward, error) {
	var rewards []models.Reward
	_, err := c.do(ctx, http.MethodGet, "/rewards", nil, &rewards)
	return rewards, err
}

type rewardFields struct {
	Name        string `json:"name"`
	XPCost      int    `json:"xpCost"`
	Description string `json:"description"`
}

func (c *Client) CreateReward(ctx context.Context, name string, xpCost int, description string) (models.Reward, error) {
	var reward models.Reward
	_, err := c.do(ctx, http.MethodPost, "/rewards", rewardFields{name, xpCost, description}, &reward)
	return reward, err
}

func (c *Client) UpdateReward(ctx context.Context, rewardID int64, name string, xpCost int, description string) (models.Reward, error) {
	var reward models.Reward
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/rewards/%d", rewardID), rewardFields{name, xpCost, description}, &reward)
	return reward, err
}

func (c *Client) ListUserRewards(ctx context.Context, userID int64) ([]models.UserReward, error) {
	var userRewards []models.UserReward
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/rewards", userID), nil, &userRewards)
	return userRewards, err
}

// RedeemReward exchanges XP for a reward. The backend wraps the redemption
// record in a {"userReward": ...} envelope.
func (c *Client) RedeemReward(ctx context.Context, userID, rewardID int64) (models.UserReward, error) {
	var envelope struct {
		UserReward models.UserReward `json:"userReward"`
	}
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/rewards/%d/redeem", userID, rewardID), nil, &envelope)
	return envelope.UserReward, err
}

func (c *Client) ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error) {
	var achievements []models.Achievement
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/achievements", userID), nil, &achievements)
	return achievements, err
}

func (c *Client) SaveAchievement(ctx context.Context, userID int64, message string) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/achievements", userID), models.Achievement{Message: message}, nil)
	return err
}
