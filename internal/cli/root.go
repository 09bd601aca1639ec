package cli

import (
	"context"
	"fmt"

	"github.com/trackhabit/trackhabit/internal/config"
	"github.com/trackhabit/trackhabit/internal/keyring"
	"github.com/trackhabit/trackhabit/internal/session"
	"github.com/trackhabit/trackhabit/internal/storage"
)

// Context is the shared command context kong passes to every Run method.
type Context struct {
	Config  config.Config
	Store   storage.Provider
	Session *session.Session
}

// RequireSession restores the identity stored in the OS keyring and resumes
// the session against the backend. Commands that operate on user data call
// this first.
func (c *Context) RequireSession(ctx context.Context) error {
	ident, err := keyring.GetIdentity()
	if err != nil {
		return err
	}
	if err := c.Session.Resume(ctx, ident.UserID); err != nil {
		return fmt.Errorf("session for %q could not be restored: %w", ident.Username, err)
	}
	return nil
}

// FormatXPDelta renders a feed XP delta with its sign, e.g. "+10 XP".
func FormatXPDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d XP", delta)
	}
	return fmt.Sprintf("%d XP", delta)
}
