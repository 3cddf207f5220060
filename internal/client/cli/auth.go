package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/client/services"
	"github.com/mathalama/review-universities/internal/client/tokeninfo"
	"github.com/mathalama/review-universities/internal/common"
)

// Input indirections used to facilitate testing. They point to interactive
// input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getNumber = GetNumber
var getPassword = GetPassword

// Login asks for credentials, exchanges them for a token and hands the token
// to the session. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.authService.Authenticate(ctx, email, string(password))
	if err != nil {
		return err
	}
	return a.startSession(ctx, token)
}

// AdoptToken starts a session from a token obtained elsewhere, e.g. the web
// frontend.
func (a *App) AdoptToken(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("token <jwt>")
	}
	return a.startSession(ctx, args[0])
}

func (a *App) startSession(ctx context.Context, token string) error {
	if err := a.session.Login(ctx, token); err != nil {
		return err
	}
	u := a.session.Snapshot().User
	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(u))
	return nil
}

// Register creates an account. The backend sends a verification mail; login
// is possible only after the address was confirmed.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Firstname, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.Lastname, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if err := a.authService.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created. A verification link was sent to %s; use 'resend' if it does not arrive.\n", req.Email)
	return nil
}

func (a *App) ResendVerification(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.authService.ResendVerification(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Verification mail sent.")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.authService.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If the account exists, a reset link is on its way. Use 'reset' with the token from the mail.")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.ResetPassword(ctx, token, string(password)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed. You can log in now.")
	return nil
}

// Logout never fails; store problems are logged by the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the resolved profile and, when the stored token is a JWT,
// its expiry. The claims are informational only.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.session.RequireUser()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:    %d\n", u.ID)
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "Name:  %s\n", u.FullName())
	fmt.Fprintf(a.out, "Role:  %s\n", u.Role)

	token, err := a.tokens.Load(ctx)
	if err != nil || token == "" {
		return nil
	}
	claims, err := tokeninfo.Inspect(token)
	if err != nil {
		a.log.Debug(ctx, "stored token is not a readable JWT", "error", err)
		return nil
	}
	if claims.ExpiresAt.IsZero() {
		return nil
	}

	now := a.clock.Now()
	if claims.Expired(now) {
		fmt.Fprintf(a.out, "Token: expired at %s\n", claims.ExpiresAt.Format(time.RFC3339))
		return nil
	}
	fmt.Fprintf(a.out, "Token: expires at %s (in %s)\n",
		claims.ExpiresAt.Format(time.RFC3339), claims.Remaining(now).Round(time.Minute))
	return nil
}

// EditProfile prompts for new names; an empty answer keeps the current value.
// Both names are always sent. The change is visible at once and rolled back
// if the backend rejects it.
func (a *App) EditProfile(ctx context.Context) error {
	u, err := a.session.RequireUser()
	if err != nil {
		return err
	}

	first, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", u.Firstname), a.out)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", u.Lastname), a.out)
	if err != nil {
		return err
	}

	req := models.UpdateUserRequest{Firstname: u.Firstname, Lastname: u.Lastname}
	if first != "" {
		req.Firstname = first
	}
	if last != "" {
		req.Lastname = last
	}
	if req.Firstname == u.Firstname && req.Lastname == u.Lastname {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	patch, err := services.ProfilePatch(req)
	if err != nil {
		return err
	}

	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func displayName(u models.User) string {
	if n := u.FullName(); n != "" {
		return n
	}
	return u.Email
}
