package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetIdentity(t *testing.T) {
	gokeyring.MockInit()

	ident := Identity{UserID: 42, Username: "alice"}
	if err := SetIdentity(ident); err != nil {
		t.Fatalf("SetIdentity: %v", err)
	}

	got, err := GetIdentity()
	if err != nil {
		t.Fatalf("GetIdentity: %v", err)
	}
	if got != ident {
		t.Errorf("GetIdentity() = %+v, want %+v", got, ident)
	}
}

func TestSetIdentityValidation(t *testing.T) {
	gokeyring.MockInit()

	if err := SetIdentity(Identity{Username: "alice"}); err == nil {
		t.Error("identity without user id should be rejected")
	}
	if err := SetIdentity(Identity{UserID: 1}); err == nil {
		t.Error("identity without username should be rejected")
	}
}

func TestGetIdentityNotLoggedIn(t *testing.T) {
	gokeyring.MockInit()

	_ = ClearIdentity()

	_, err := GetIdentity()
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("GetIdentity() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestGetIdentityMalformed(t *testing.T) {
	gokeyring.MockInit()

	if err := gokeyring.Set("trackhabit", "session", "garbage"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := GetIdentity(); err == nil {
		t.Error("malformed stored session should error")
	}
}

func TestClearIdentity(t *testing.T) {
	gokeyring.MockInit()

	if err := SetIdentity(Identity{UserID: 1, Username: "alice"}); err != nil {
		t.Fatalf("SetIdentity: %v", err)
	}
	if err := ClearIdentity(); err != nil {
		t.Fatalf("ClearIdentity: %v", err)
	}
	if _, err := GetIdentity(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("after clear, error = %v, want ErrNotLoggedIn", err)
	}

	// Clearing again is not an error.
	if err := ClearIdentity(); err != nil {
		t.Errorf("second ClearIdentity: %v", err)
	}
}

func TestUsernameWithSeparator(t *testing.T) {
	gokeyring.MockInit()

	// Cut splits on the first separator, so a username containing one
	// round-trips intact.
	ident := Identity{UserID: 7, Username: "a|b"}
	if err := SetIdentity(ident); err != nil {
		t.Fatalf("SetIdentity: %v", err)
	}
	got, err := GetIdentity()
	if err != nil {
		t.Fatalf("GetIdentity: %v", err)
	}
	if got.Username != "a|b" {
		t.Errorf("username = %q, want %q", got.Username, "a|b")
	}
}
