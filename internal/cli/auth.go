package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"farmstead/internal/models"
	"farmstead/internal/routes"
	"farmstead/internal/session"
)

// getSimpleText, getPassword, getChoice and confirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
	confirm       = Confirm
)

// Login prompts for credentials and tries to authenticate against the
// registered-user table. A mismatch of either field renders the same
// message. On success the session moves to farm setup or straight to the
// dashboard, depending on whether a farm profile is already stored.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			printlnFn("Invalid username or password")
			return nil
		}
		return err
	}

	printlnFn("Welcome back!")
	return a.Open(ctx, routes.Home(a.state()))
}

// Register prompts for the account fields and attempts to create the account.
// A username or email collision renders one generic message, without saying
// which field collided.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	account := models.UserAccount{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: string(password),
	}

	if err := a.session.Register(ctx, account); err != nil {
		if errors.Is(err, session.ErrUserExists) {
			printlnFn("Username or email already exists")
			return nil
		}
		return err
	}

	printlnFn("Account created!")
	return a.Open(ctx, routes.Home(a.state()))
}

// Logout clears the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("You have been logged out")
	return a.Open(ctx, routes.Home(a.state()))
}

// WhoAmI prints the current user and, when present, the farm profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s (%s, %s)", user.FullName, user.Username, user.Email))
	if farm := a.session.CurrentFarm(); farm != nil {
		printlnFn(fmt.Sprintf("%s, %s (%s)", farm.FarmName, farm.FarmLocation, farm.FarmType.Label()))
	}
	return nil
}
