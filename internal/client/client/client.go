package client

import (
	"context"

	"github.com/mathalama/review-universities/internal/client/models"
)

// TokenSource yields the bearer token attached to outgoing requests. An
// empty token means the request goes out anonymously.
type TokenSource interface {
	Load(ctx context.Context) (string, error)
}

// Client is the transport-agnostic contract of the review backend.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Me(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error

	Authenticate(ctx context.Context, req models.AuthenticationRequest) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	ListUniversities(ctx context.Context) ([]models.University, error)
	GetUniversity(ctx context.Context, id int64) (models.University, error)
	CreateUniversity(ctx context.Context, req models.CreateUniversityRequest) (models.University, error)
	UpdateUniversity(ctx context.Context, id int64, req models.UpdateUniversityRequest) (models.University, error)
	DeleteUniversity(ctx context.Context, id int64) error

	ListReviews(ctx context.Context) ([]models.Review, error)
	ListUniversityReviews(ctx context.Context, universityID int64) ([]models.Review, error)
	AddReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}
