package keyring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/trackhabit/trackhabit/internal/constants"
)

var (
	// ErrNotLoggedIn is returned when no session identity is stored.
	ErrNotLoggedIn = errors.New("not logged in, run 'trackhabit login' first")
	// ErrKeyringUnavailable is returned when the OS keyring is not available.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Identity is the persisted session identity. Only the user id and username
// are kept; authoritative stats are always re-fetched from the backend.
type Identity struct {
	UserID   int64
	Username string
}

// GetIdentity retrieves the logged-in identity from the OS keyring.
func GetIdentity() (Identity, error) {
	raw, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return Identity{}, ErrNotLoggedIn
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	id, username, ok := strings.Cut(raw, "|")
	if !ok {
		return Identity{}, errors.New("stored session is malformed")
	}
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return Identity{}, errors.New("stored session is malformed")
	}

	return Identity{UserID: userID, Username: username}, nil
}

// SetIdentity stores the logged-in identity in the OS keyring.
func SetIdentity(ident Identity) error {
	if ident.UserID == 0 || ident.Username == "" {
		return errors.New("identity must have a user id and username")
	}
	raw := strconv.FormatInt(ident.UserID, 10) + "|" + ident.Username
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, raw); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// ClearIdentity removes the stored identity. Clearing an absent entry is not
// an error.
func ClearIdentity() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to clear session from keyring: %w", err)
	}
	return nil
}
