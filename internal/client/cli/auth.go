package cli

import (
	"context"

	"github.com/karimfs/skybook/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for account details and creates an account. On success
// the returned session is persisted and the user lands on the home page.
func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Phone", "", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.auth.Register(ctx, services.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		return err
	}
	if err := a.session.Set(ctx, resp); err != nil {
		return err
	}

	printlnFn("Welcome aboard,", resp.User.FirstName)
	a.NavigateTo(PageHome)
	return nil
}

// login authenticates and persists the session token and user atomically.
func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.auth.Login(ctx, services.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := a.session.Set(ctx, resp); err != nil {
		return err
	}

	printlnFn("Logged in as", resp.User.Email)
	a.NavigateTo(PageHome)
	return nil
}

// logout clears the session unconditionally; it never fails on the user.
func (a *App) logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "clearing session", "error", err)
	}
	a.NavigateTo(PageLogin)
	printlnFn("Logged out")
	return nil
}
