package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/karimfs/skybook/internal/client/services"
)

// showProfile prints the cached account, lets the user edit it and keeps
// the session's cached user in sync afterwards.
func (a *App) showProfile(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	a.NavigateTo(PageProfile)

	user := a.session.User()
	printlnFn(fmt.Sprintf("  %s %s <%s>  phone: %s  role: %s",
		user.FirstName, user.LastName, user.Email, user.Phone, user.Role))

	edit, err := GetOptionalText(a.reader, "Edit profile? (y/N)", "n", a.out)
	if err != nil {
		return err
	}
	if edit != "y" && edit != "Y" {
		return nil
	}

	firstName, err := GetOptionalText(a.reader, "First name", user.FirstName, a.out)
	if err != nil {
		return err
	}
	lastName, err := GetOptionalText(a.reader, "Last name", user.LastName, a.out)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Phone", user.Phone, a.out)
	if err != nil {
		return err
	}

	updated, err := a.users.Update(ctx, user.ID, services.UserRequest{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		return err
	}
	// token stays untouched, only the cached user changes
	if err := a.session.UpdateUser(ctx, *updated); err != nil {
		return err
	}
	a.hub.Success("Profile updated")
	return nil
}

// passengerProfiles manages saved traveler identities: list, add, set the
// default, delete.
func (a *App) passengerProfiles(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		profiles, err := a.profiles.List(ctx)
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			printlnFn("No saved travelers.")
			return nil
		}
		for _, p := range profiles {
			marker := " "
			if p.IsDefault {
				marker = "*"
			}
			printlnFn(fmt.Sprintf("  %s %s  %s %s  %s  passport %s",
				marker, p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.PassportNumber))
		}
		return nil

	case "add":
		req, err := a.readProfileForm()
		if err != nil {
			return err
		}
		profile, err := a.profiles.Create(ctx, *req)
		if err != nil {
			return err
		}
		a.hub.Success("Traveler saved")
		printlnFn("  id:", profile.ID)
		return nil

	case "default":
		if len(args) != 2 {
			return errors.New("usage: travelers default <id>")
		}
		isDefault := true
		if _, err := a.profiles.Update(ctx, args[1], services.PassengerProfileRequest{IsDefault: &isDefault}); err != nil {
			return err
		}
		a.hub.Success("Default traveler updated")
		return nil

	case "delete":
		if len(args) != 2 {
			return errors.New("usage: travelers delete <id>")
		}
		if err := a.profiles.Delete(ctx, args[1]); err != nil {
			return err
		}
		a.hub.Success("Traveler removed")
		return nil

	default:
		return errors.New("usage: travelers [list|add|default <id>|delete <id>]")
	}
}

func (a *App) readProfileForm() (*services.PassengerProfileRequest, error) {
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return nil, err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return nil, err
	}
	dob, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", a.out)
	if err != nil {
		return nil, err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return nil, err
	}
	phone, err := getSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return nil, err
	}
	passport, err := getSimpleText(a.reader, "Passport number", a.out)
	if err != nil {
		return nil, err
	}

	return &services.PassengerProfileRequest{
		FirstName:      firstName,
		LastName:       lastName,
		DateOfBirth:    dob,
		Email:          email,
		Phone:          phone,
		PassportNumber: passport,
	}, nil
}
