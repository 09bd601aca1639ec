package constants

import "time"

const (
	AppName            = "trackhabit"
	DefaultKeyringUser = "session"
	Version            = "v0.3.0"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD). Completion dates, reset markers and log
	// entries are all compared at this granularity.
	DateFormat = "2006-01-02"

	// XPPerLevel is the XP span of a single level: level = xp/XPPerLevel + 1.
	XPPerLevel = 100

	// MaxNotifications bounds the transient notification list. Older entries
	// fall off the end, most recent first.
	MaxNotifications = 5

	// FeedDisplayLimit is how many activity entries are presented. The full
	// composed feed is retained for export.
	FeedDisplayLimit = 10

	// ResetCheckInterval is how often the daily reset tracker re-checks the
	// calendar day while the TUI is running.
	ResetCheckInterval = 60 * time.Second

	// Username/password rules enforced client-side before any login or
	// register request is issued.
	MinUsernameLen = 3
	MinPasswordLen = 6

	// Tray notifier constants
	NotifierLockfileName   = "trackhabit-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.trackhabit.tray"
	TrayExecutablePrefix   = "trackhabit-tray"
)
