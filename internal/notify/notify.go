// Package notify keeps the bounded, most-recent-first list of transient
// notification entries shown in the Conquistas panel.
package notify

import (
	"time"

	"github.com/trackhabit/trackhabit/internal/constants"
	"github.com/trackhabit/trackhabit/internal/logger"
)

// Entry is one transient notification.
type Entry struct {
	Message string
	At      time.Time
}

// Sink receives every pushed message as a side channel: the tray forwarder
// and the achievement persister both implement it. Sink failures are logged
// and never surface to the caller.
type Sink func(message string) error

// Center holds the notification list. Not safe for concurrent use; all
// pushes happen on the client's single logical thread.
type Center struct {
	entries []Entry
	max     int
	sinks   []Sink
	now     func() time.Time
}

func NewCenter() *Center {
	return &Center{
		max: constants.MaxNotifications,
		now: time.Now,
	}
}

// AddSink registers a side channel. Sinks run in registration order on every
// push.
func (c *Center) AddSink(s Sink) {
	c.sinks = append(c.sinks, s)
}

// Push prepends a notification, trimming the list to its capacity.
func (c *Center) Push(message string) {
	c.entries = append([]Entry{{Message: message, At: c.now()}}, c.entries...)
	if len(c.entries) > c.max {
		c.entries = c.entries[:c.max]
	}

	logger.Info("notification", "message", message)

	for _, sink := range c.sinks {
		if err := sink(message); err != nil {
			logger.Warn("notification sink failed", "error", err)
		}
	}
}

// Entries returns the current list, most recent first.
func (c *Center) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Clear drops every entry, e.g. on logout.
func (c *Center) Clear() {
	c.entries = nil
}
