// Package services contains the application services of the client. They
// validate input, enforce the session's guards and call the backend; the CLI
// only renders their results.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/models"
)

// AuthService covers the account flows that happen outside of a session:
// obtaining a token, registering, verification mails and password resets.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Ping(ctx context.Context) error
	Close() error
}

type authService struct {
	client client.Client
}

func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// Authenticate exchanges credentials for a bearer token. The token is not
// stored here; the caller hands it to the session.
func (a *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	req := models.AuthenticationRequest{Email: strings.TrimSpace(email), Password: password}
	if err := validateStruct(req); err != nil {
		return "", err
	}
	token, err := a.client.Authenticate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	return token, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (a *authService) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validateVar("email", email, "required,email"); err != nil {
		return err
	}
	if err := a.client.ResendVerification(ctx, email); err != nil {
		return fmt.Errorf("resend verification: %w", err)
	}
	return nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	req := models.ForgotPasswordRequest{Email: strings.TrimSpace(email)}
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := a.client.ForgotPassword(ctx, req); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := models.ResetPasswordRequest{Token: strings.TrimSpace(token), NewPassword: newPassword}
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := a.client.ResetPassword(ctx, req); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

// ProfilePatch validates a filled-in profile form and turns it into a patch
// carrying both names; the backend rejects an update missing either one.
func ProfilePatch(req models.UpdateUserRequest) (models.ProfilePatch, error) {
	req.Firstname = strings.TrimSpace(req.Firstname)
	req.Lastname = strings.TrimSpace(req.Lastname)
	if err := validateStruct(req); err != nil {
		return models.ProfilePatch{}, err
	}
	return req.Patch(), nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close() error {
	return a.client.Close()
}
