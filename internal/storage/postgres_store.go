package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS reset_markers (
	user_id BIGINT PRIMARY KEY,
	day     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS achievements (
	id         TEXT PRIMARY KEY,
	user_id    BIGINT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_achievements_user ON achievements(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS exports (
	user_id     BIGINT NOT NULL,
	path        TEXT NOT NULL,
	exported_at TIMESTAMPTZ NOT NULL
);
`

// PostgresStore keeps the local state in PostgreSQL, for people who share
// one client state across machines. Selected when the state path is a
// postgres:// connection string.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected; credentials belong in the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetLastReset(userID int64) (string, error) {
	var day string
	err := s.db.QueryRow(`SELECT day FROM reset_markers WHERE user_id = $1`, userID).Scan(&day)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read reset marker: %w", err)
	}
	return day, nil
}

func (s *PostgresStore) SetLastReset(userID int64, day string) error {
	_, err := s.db.Exec(`
		INSERT INTO reset_markers (user_id, day) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET day = EXCLUDED.day`, userID, day)
	if err != nil {
		return fmt.Errorf("failed to save reset marker: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddAchievement(userID int64, a CachedAchievement) error {
	_, err := s.db.Exec(`
		INSERT INTO achievements (id, user_id, message, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, userID, a.Message, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save achievement: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetAchievements(userID int64) ([]CachedAchievement, error) {
	rows, err := s.db.Query(`
		SELECT id, message, created_at FROM achievements
		WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievements: %w", err)
	}
	defer rows.Close()

	var out []CachedAchievement
	for rows.Next() {
		var a CachedAchievement
		var createdAt time.Time
		if err := rows.Scan(&a.ID, &a.Message, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = createdAt
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) RecordExport(userID int64, rec ExportRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO exports (user_id, path, exported_at) VALUES ($1, $2, $3)`,
		userID, rec.Path, rec.ExportedAt)
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetExports(userID int64) ([]ExportRecord, error) {
	rows, err := s.db.Query(`
		SELECT path, exported_at FROM exports
		WHERE user_id = $1 ORDER BY exported_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read exports: %w", err)
	}
	defer rows.Close()

	var out []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		if err := rows.Scan(&rec.Path, &rec.ExportedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
