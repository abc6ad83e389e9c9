package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/profiledash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, starts a session and shows the dashboard.
// A failed sign-in leaves any existing session in place. The password is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.service.Login(ctx, userName, password); err != nil {
		a.report(err)
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return a.Show(ctx)
}

// Logout ends the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		a.report(err)
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
