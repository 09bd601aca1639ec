package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS reset_markers (
	user_id INTEGER PRIMARY KEY,
	day     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS achievements (
	id         TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL,
	message    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_achievements_user ON achievements(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS exports (
	user_id     INTEGER NOT NULL,
	path        TEXT NOT NULL,
	exported_at TEXT NOT NULL
);
`

// SQLiteStore keeps the local state in a SQLite database. This is the
// default backend.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	// Unlike the remote collections, the local state is created on demand.
	return s.Init()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetLastReset(userID int64) (string, error) {
	var day string
	err := s.db.QueryRow(`SELECT day FROM reset_markers WHERE user_id = ?`, userID).Scan(&day)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read reset marker: %w", err)
	}
	return day, nil
}

func (s *SQLiteStore) SetLastReset(userID int64, day string) error {
	_, err := s.db.Exec(`
		INSERT INTO reset_markers (user_id, day) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET day = excluded.day`, userID, day)
	if err != nil {
		return fmt.Errorf("failed to save reset marker: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddAchievement(userID int64, a CachedAchievement) error {
	_, err := s.db.Exec(`
		INSERT INTO achievements (id, user_id, message, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, userID, a.Message, a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save achievement: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetAchievements(userID int64) ([]CachedAchievement, error) {
	rows, err := s.db.Query(`
		SELECT id, message, created_at FROM achievements
		WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievements: %w", err)
	}
	defer rows.Close()

	var out []CachedAchievement
	for rows.Next() {
		var a CachedAchievement
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Message, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) RecordExport(userID int64, rec ExportRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO exports (user_id, path, exported_at) VALUES (?, ?, ?)`,
		userID, rec.Path, rec.ExportedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetExports(userID int64) ([]ExportRecord, error) {
	rows, err := s.db.Query(`
		SELECT path, exported_at FROM exports
		WHERE user_id = ? ORDER BY exported_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read exports: %w", err)
	}
	defer rows.Close()

	var out []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		var exportedAt string
		if err := rows.Scan(&rec.Path, &exportedAt); err != nil {
			return nil, err
		}
		rec.ExportedAt, err = time.Parse(time.RFC3339, exportedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse exported_at: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
