package cli

import "errors"

var (
	errLoginRequired = errors.New("please log in first")
	errAdminRequired = errors.New("admin access required")
)

// requireAuth gates a command on an authenticated session and bounces the
// user to the login page otherwise.
func (a *App) requireAuth() error {
	if a.isLoggedIn() {
		return nil
	}
	a.NavigateTo(PageLogin)
	return errLoginRequired
}

// requireAdmin gates a command on the ADMIN role. Non-admin users are sent
// home, not to login.
func (a *App) requireAdmin() error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if a.isAdmin() {
		return nil
	}
	a.NavigateTo(PageHome)
	return errAdminRequired
}
