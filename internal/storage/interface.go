package storage

import "time"

// CachedAchievement is the offline mirror of a notification message, kept so
// achievements remain visible when the backend is unreachable.
type CachedAchievement struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportRecord remembers where and when an export bundle was written.
type ExportRecord struct {
	Path       string    `json:"path"`
	ExportedAt time.Time `json:"exported_at"`
}

// Provider is the local state store. It holds only client-side state: the
// per-user daily-reset marker, the cached achievement messages, and export
// history. All remote domain data lives behind the REST backend.
//
// Providers are not safe for concurrent use by multiple goroutines without
// external synchronization; the client mutates them from a single logical
// thread.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Daily reset markers. GetLastReset returns "" when no marker has been
	// recorded for the user yet.
	GetLastReset(userID int64) (string, error)
	SetLastReset(userID int64, day string) error

	// Achievement cache, most recent first.
	AddAchievement(userID int64, a CachedAchievement) error
	GetAchievements(userID int64) ([]CachedAchievement, error)

	// Export history, most recent first.
	RecordExport(userID int64, rec ExportRecord) error
	GetExports(userID int64) ([]ExportRecord, error)

	// Utils
	GetConfigPath() string
}
