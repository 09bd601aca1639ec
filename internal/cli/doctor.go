package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/trackhabit/trackhabit/internal/keyring"
)

type DoctorCmd struct{}

// Run checks the pieces a working client needs: backend reachability, the
// OS keyring, the local state store and a sane clock. Failures are reported
// together rather than stopping at the first one.
func (cmd *DoctorCmd) Run(appCtx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := appCtx.Session.Client().Health(context.Background()); err != nil {
		fmt.Printf("❌ API reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ API reachable: OK (%s)\n", appCtx.Config.API.BaseURL)
	}

	switch _, err := keyring.GetIdentity(); err {
	case nil:
		fmt.Printf("✓ Keyring session: OK\n")
	case keyring.ErrNotLoggedIn:
		fmt.Printf("⚠ Keyring session: not logged in\n")
	default:
		fmt.Printf("❌ Keyring session: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	}

	if err := appCtx.Store.Load(); err != nil {
		fmt.Printf("❌ Local state store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Local state store: OK (%s)\n", appCtx.Store.GetConfigPath())
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// checkClockTimezone catches grossly wrong clocks, which would corrupt the
// daily reset markers.
func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2023 || now.Year() > 2100 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return fmt.Errorf("no timezone information available")
	}
	return nil
}
