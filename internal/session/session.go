// Package session holds the authenticated user, the in-memory domain caches
// and every mutating operation against them. A Session is the explicit
// context object the CLI and TUI share; there is no ambient global state.
//
// Sessions are not safe for concurrent use by multiple goroutines. All
// operations run on the client's single logical thread; re-entrant
// completion attempts are fenced by per-habit in-flight markers instead.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trackhabit/trackhabit/internal/api"
	"github.com/trackhabit/trackhabit/internal/constants"
	"github.com/trackhabit/trackhabit/internal/feed"
	"github.com/trackhabit/trackhabit/internal/logger"
	"github.com/trackhabit/trackhabit/internal/milestone"
	"github.com/trackhabit/trackhabit/internal/models"
	"github.com/trackhabit/trackhabit/internal/notify"
	"github.com/trackhabit/trackhabit/internal/reset"
	"github.com/trackhabit/trackhabit/internal/storage"
)

// Hook is a post-action step. Hooks run in registration order after every
// mutation that can change stats, replacing the original client's post-hoc
// function wrapping with explicit sequential composition.
type Hook func(s *Session)

// Stats is the derived session stat snapshot the presentation layer renders.
type Stats struct {
	XP         int
	Streak     int
	Level      int
	HabitCount int
}

type Session struct {
	client     *api.Client
	store      storage.Provider
	Notify     *notify.Center
	milestones *milestone.Evaluator
	reset      *reset.Tracker
	now        func() time.Time

	User         *models.User
	Habits       []models.Habit
	Rewards      []models.Reward
	HabitLogs    []models.HabitLog
	UserRewards  []models.UserReward
	Achievements []models.Achievement

	// completing marks habits with an in-flight completion request, closing
	// the guard's re-entrancy gap across the network suspend point.
	completing map[int64]bool

	hooks []Hook
}

func New(client *api.Client, store storage.Provider, center *notify.Center) *Session {
	s := &Session{
		client:     client,
		store:      store,
		Notify:     center,
		milestones: milestone.NewEvaluator(),
		reset:      reset.NewTracker(store),
		now:        time.Now,
		completing: make(map[int64]bool),
	}

	s.hooks = []Hook{(*Session).checkMilestones}

	center.AddSink(s.persistAchievement)

	return s
}

// Client exposes the gateway, e.g. for the doctor command's health probe.
func (s *Session) Client() *api.Client {
	return s.client
}

func validateCredentials(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	if len(username) < constants.MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", constants.MinUsernameLen)
	}
	if len(password) < constants.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLen)
	}
	return nil
}

// Login authenticates, loads every domain collection, applies the daily
// reset check and recomputes stats.
func (s *Session) Login(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}

	user, err := s.client.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	s.User = &user

	s.LoadAll(ctx)
	s.CheckDailyReset()
	s.runHooks()
	s.Notify.Push("Bem-vindo ao TrackHabit! 👋")

	return nil
}

// Register creates a new account. The caller still needs to log in.
func (s *Session) Register(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}
	if _, err := s.client.Register(ctx, strings.TrimSpace(username), strings.TrimSpace(password)); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Resume restores a session for an already authenticated user id, as stored
// in the OS keyring, by re-fetching the user record.
func (s *Session) Resume(ctx context.Context, userID int64) error {
	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	s.User = &user

	s.LoadAll(ctx)
	s.CheckDailyReset()
	s.runHooks()

	return nil
}

// Logout destroys the session-scoped state. The remote record is untouched.
func (s *Session) Logout() {
	s.User = nil
	s.Habits = nil
	s.Rewards = nil
	s.HabitLogs = nil
	s.UserRewards = nil
	s.Achievements = nil
	s.completing = make(map[int64]bool)
	s.milestones.Reset()
	s.Notify.Clear()
}

// LoadAll refreshes every domain collection in sequence. Each refresh fails
// independently: a collection that cannot be loaded degrades to empty with
// a logged error and does not block the others.
func (s *Session) LoadAll(ctx context.Context) {
	if s.User == nil {
		return
	}
	s.RefreshHabits(ctx)
	s.RefreshRewards(ctx)
	s.RefreshHabitLogs(ctx)
	s.RefreshUserRewards(ctx)
	s.RefreshAchievements(ctx)
}

// RefreshUser re-fetches the user record for authoritative XP and streak.
func (s *Session) RefreshUser(ctx context.Context) error {
	if s.User == nil {
		return fmt.Errorf("not logged in")
	}
	user, err := s.client.GetUser(ctx, s.User.ID)
	if err != nil {
		return err
	}
	user.Level = models.CalculateLevel(user.XP)
	s.User = &user
	return nil
}

// RefreshAchievements loads the persisted achievement messages, falling back
// to the local cache when the backend is unreachable. Replayed messages seed
// the milestone evaluator so thresholds crossed in past sessions do not fire
// again.
func (s *Session) RefreshAchievements(ctx context.Context) {
	achievements, err := s.client.ListAchievements(ctx, s.User.ID)
	if err != nil {
		logger.Warn("failed to load achievements, using local cache", "error", err)
		cached, cacheErr := s.store.GetAchievements(s.User.ID)
		if cacheErr != nil {
			logger.Error("failed to read local achievement cache", "error", cacheErr)
			s.Achievements = nil
			return
		}
		achievements = make([]models.Achievement, 0, len(cached))
		for _, c := range cached {
			achievements = append(achievements, models.Achievement{Message: c.Message})
		}
	}
	s.Achievements = achievements

	messages := make([]string, 0, len(achievements))
	for _, a := range achievements {
		messages = append(messages, a.Message)
	}
	s.milestones.Seed(messages)
}

// CheckDailyReset clears local completion flags when the calendar day has
// changed since the persisted marker. Local-only; never calls the backend.
func (s *Session) CheckDailyReset() {
	if s.User == nil {
		return
	}
	didReset, err := s.reset.CheckAndReset(s.User.ID, s.Habits, s.now())
	if err != nil {
		logger.Warn("daily reset check failed", "error", err)
		return
	}
	if didReset {
		s.Notify.Push("Novo dia começou! Hora de formar bons hábitos! 🌅")
	}
}

// Stats computes the derived stat snapshot.
func (s *Session) Stats() Stats {
	if s.User == nil {
		return Stats{Level: 1}
	}
	return Stats{
		XP:         s.User.XP,
		Streak:     s.User.Streak,
		Level:      models.CalculateLevel(s.User.XP),
		HabitCount: len(s.Habits),
	}
}

// Feed composes the full activity feed from the cached collections.
func (s *Session) Feed() []feed.Entry {
	return feed.Compose(s.HabitLogs, s.UserRewards, s.Habits, s.Rewards)
}

// RecentFeed returns the presented slice of the feed.
func (s *Session) RecentFeed() []feed.Entry {
	return feed.Recent(s.Feed(), constants.FeedDisplayLimit)
}

// GrantBonusXP applies a local-only XP bonus (the hidden bonus command).
// The next user re-fetch reconciles with the server's value.
func (s *Session) GrantBonusXP(amount int) {
	if s.User == nil {
		return
	}
	s.User.XP += amount
	s.Notify.Push(fmt.Sprintf("🎮 KONAMI CODE! +%d XP de bônus! 🎮", amount))
	s.runHooks()
}

func (s *Session) runHooks() {
	for _, h := range s.hooks {
		h(s)
	}
}

// checkMilestones is the standing post-action hook: evaluate every threshold
// against the current stats and notify each one exactly once per session.
func (s *Session) checkMilestones() {
	if s.User == nil {
		return
	}
	stats := s.Stats()
	for _, message := range s.milestones.Evaluate(stats.XP, stats.Streak, stats.HabitCount) {
		s.Notify.Push(message)
	}
}

// persistAchievement mirrors every notification to the backend and the local
// cache, best-effort.
func (s *Session) persistAchievement(message string) error {
	if s.User == nil {
		return nil
	}

	cached := storage.CachedAchievement{
		ID:        uuid.New().String(),
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.store.AddAchievement(s.User.ID, cached); err != nil {
		logger.Warn("failed to cache achievement locally", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.SaveAchievement(ctx, s.User.ID, message)
}

func (s *Session) today() string {
	return s.now().Format(constants.DateFormat)
}
