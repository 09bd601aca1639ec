package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type userState struct {
	LastReset    string              `json:"last_reset,omitempty"`
	Achievements []CachedAchievement `json:"achievements,omitempty"`
	Exports      []ExportRecord      `json:"exports,omitempty"`
}

type jsonState struct {
	Version int `json:"version"`
	// Keyed by decimal user id; JSON object keys must be strings.
	Users map[string]*userState `json:"users"`
}

// JSONStore keeps the local state in a single JSON document. Chosen when the
// state path ends in .json.
type JSONStore struct {
	path  string
	state *jsonState
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("local state already initialized at %s", s.path)
	}

	s.state = &jsonState{
		Version: 1,
		Users:   make(map[string]*userState),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Local state is created lazily; starting empty is fine.
			s.state = &jsonState{Version: 1, Users: make(map[string]*userState)}
			return nil
		}
		return fmt.Errorf("failed to read local state: %w", err)
	}

	s.state = &jsonState{}
	if err := json.Unmarshal(data, s.state); err != nil {
		return fmt.Errorf("failed to parse local state: %w", err)
	}
	if s.state.Users == nil {
		s.state.Users = make(map[string]*userState)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize local state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write local state: %w", err)
	}

	return nil
}

func (s *JSONStore) user(id int64) *userState {
	key := strconv.FormatInt(id, 10)
	u, ok := s.state.Users[key]
	if !ok {
		u = &userState{}
		s.state.Users[key] = u
	}
	return u
}

func (s *JSONStore) GetLastReset(userID int64) (string, error) {
	if s.state == nil {
		return "", fmt.Errorf("local state not loaded")
	}
	return s.user(userID).LastReset, nil
}

func (s *JSONStore) SetLastReset(userID int64, day string) error {
	if s.state == nil {
		return fmt.Errorf("local state not loaded")
	}
	s.user(userID).LastReset = day
	return s.save()
}

func (s *JSONStore) AddAchievement(userID int64, a CachedAchievement) error {
	if s.state == nil {
		return fmt.Errorf("local state not loaded")
	}
	u := s.user(userID)
	u.Achievements = append([]CachedAchievement{a}, u.Achievements...)
	return s.save()
}

func (s *JSONStore) GetAchievements(userID int64) ([]CachedAchievement, error) {
	if s.state == nil {
		return nil, fmt.Errorf("local state not loaded")
	}
	u := s.user(userID)
	out := make([]CachedAchievement, len(u.Achievements))
	copy(out, u.Achievements)
	return out, nil
}

func (s *JSONStore) RecordExport(userID int64, rec ExportRecord) error {
	if s.state == nil {
		return fmt.Errorf("local state not loaded")
	}
	u := s.user(userID)
	u.Exports = append([]ExportRecord{rec}, u.Exports...)
	return s.save()
}

func (s *JSONStore) GetExports(userID int64) ([]ExportRecord, error) {
	if s.state == nil {
		return nil, fmt.Errorf("local state not loaded")
	}
	u := s.user(userID)
	out := make([]ExportRecord, len(u.Exports))
	copy(out, u.Exports)
	return out, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
