package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a user name and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! You can login now.")
	return nil
}

// Login prompts for credentials and tries the server first. If the server
// is unavailable it falls back to the offline login material saved by the
// last online login. On success the last used ledger is reopened.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.closeWorkspace(ctx)

	var mode Mode
	err = a.authService.OnlineLogin(ctx, userName, password)
	switch {
	case err == nil:
		mode = ModeOnline
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, trying offline login...")
		if err = a.authService.OfflineLogin(ctx, userName, password); err != nil {
			fmt.Fprintf(a.out, "Offline login unsuccessful: %v\n", err)
			a.setMode(ModeDisabled)
			return err
		}
		mode = ModeOffline
	default:
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	a.mu.Lock()
	a.userName = userName
	a.session = mode == ModeOnline
	a.mu.Unlock()
	a.setMode(mode)
	fmt.Fprintf(a.out, "Logged in as %s\n", userName)

	a.reopenLastLedger(ctx)
	return nil
}

// Logout ends the session and wipes the cached login material and
// snapshots.
func (a *App) Logout(ctx context.Context) error {
	a.closeWorkspace(ctx)
	a.authService.Logout(ctx)
	if err := a.authService.ClearOfflineData(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.userName = ""
	a.session = false
	a.mu.Unlock()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
