package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trackhabit/trackhabit/internal/constants"
	"github.com/trackhabit/trackhabit/internal/logger"
	"github.com/trackhabit/trackhabit/internal/models"
	"github.com/trackhabit/trackhabit/internal/storage"
)

// ExportBundle snapshots every cached collection with an export timestamp.
func (s *Session) ExportBundle() (models.ExportBundle, error) {
	if s.User == nil {
		return models.ExportBundle{}, fmt.Errorf("not logged in")
	}
	return models.ExportBundle{
		User:        *s.User,
		Habits:      s.Habits,
		Rewards:     s.Rewards,
		HabitLogs:   s.HabitLogs,
		UserRewards: s.UserRewards,
		ExportDate:  s.now().Format(time.RFC3339),
	}, nil
}

// ExportToFile writes the bundle to dir as
// trackhabit_<username>_<date>.json and records the export in the local
// state store.
func (s *Session) ExportToFile(dir string) (string, error) {
	bundle, err := s.ExportBundle()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.json", constants.AppName, s.User.Username, s.now().Format(constants.DateFormat))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	rec := storage.ExportRecord{Path: path, ExportedAt: s.now()}
	if err := s.store.RecordExport(s.User.ID, rec); err != nil {
		logger.Warn("failed to record export", "error", err)
	}

	return path, nil
}
