package system

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/backup"
	"github.com/natjohn/wellbee/internal/cli"
	"github.com/natjohn/wellbee/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: profile present
	if _, ok, err := ctx.Store.GetProfile(); err != nil {
		fmt.Printf("❌ Profile readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if !ok {
		fmt.Printf("⚠ Profile present: WARNING (run 'wellbee onboard')\n")
	} else {
		fmt.Printf("✓ Profile present: OK\n")
	}

	// Check 3: trial clock recorded
	if _, ok, err := ctx.Store.GetTrialStart(); err != nil {
		fmt.Printf("❌ Trial clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if !ok {
		fmt.Printf("⚠ Trial clock: WARNING (will be set on next run)\n")
	} else {
		fmt.Printf("✓ Trial clock: OK\n")
	}

	// Check 4: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.ListBackups(); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING (none yet, run 'wellbee backup create')\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 5: keyring available (warning only, chat still works via env var)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING (unavailable, use the environment variable for the chat key)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
