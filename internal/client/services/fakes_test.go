package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/client/repositories/universities"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.Client for unit tests of the services.
type fakeClient struct {
	CloseErr error
	PingErr  error

	MeRet         models.User
	MeErr         error
	UpdateProfErr error

	AuthenticateRet string
	AuthenticateErr error
	RegisterErr     error
	ResendErr       error
	ForgotErr       error
	ResetErr        error

	UsersRet      []models.User
	UsersErr      error
	DeleteUserErr error

	UniversitiesRet []models.University
	UniversitiesErr error
	UniversityRet   models.University
	UniversityErr   error
	CreateUniErr    error
	UpdateUniErr    error
	DeleteUniErr    error

	ReviewsRet      []models.Review
	ReviewsErr      error
	AllReviewsRet   []models.Review
	AllReviewsErr   error
	AddReviewErr    error
	DeleteReviewErr error

	// recorded arguments
	Calls             []string
	LastAuth          models.AuthenticationRequest
	LastRegister      models.RegisterRequest
	LastResendEmail   string
	LastForgot        models.ForgotPasswordRequest
	LastReset         models.ResetPasswordRequest
	LastDeletedUser   int64
	LastCreateUni     models.CreateUniversityRequest
	LastUpdateUni     models.UpdateUniversityRequest
	LastDeletedUni    int64
	LastReview        models.CreateReviewRequest
	LastDeletedReview int64
}

func (f *fakeClient) called(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Close() error                   { f.called("Close"); return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { f.called("Ping"); return f.PingErr }

func (f *fakeClient) Me(ctx context.Context) (models.User, error) {
	f.called("Me")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	f.called("UpdateProfile")
	return f.UpdateProfErr
}

func (f *fakeClient) Authenticate(ctx context.Context, req models.AuthenticationRequest) (string, error) {
	f.called("Authenticate")
	f.LastAuth = req
	return f.AuthenticateRet, f.AuthenticateErr
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.called("Register")
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) ResendVerification(ctx context.Context, email string) error {
	f.called("ResendVerification")
	f.LastResendEmail = email
	return f.ResendErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	f.called("ForgotPassword")
	f.LastForgot = req
	return f.ForgotErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	f.called("ResetPassword")
	f.LastReset = req
	return f.ResetErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.called("ListUsers")
	return f.UsersRet, f.UsersErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id int64) error {
	f.called("DeleteUser")
	f.LastDeletedUser = id
	return f.DeleteUserErr
}

func (f *fakeClient) ListUniversities(ctx context.Context) ([]models.University, error) {
	f.called("ListUniversities")
	return f.UniversitiesRet, f.UniversitiesErr
}

func (f *fakeClient) GetUniversity(ctx context.Context, id int64) (models.University, error) {
	f.called("GetUniversity")
	return f.UniversityRet, f.UniversityErr
}

func (f *fakeClient) CreateUniversity(ctx context.Context, req models.CreateUniversityRequest) (models.University, error) {
	f.called("CreateUniversity")
	f.LastCreateUni = req
	if f.CreateUniErr != nil {
		return models.University{}, f.CreateUniErr
	}
	return models.University{ID: 100, Name: req.Name, City: req.City, Country: req.Country}, nil
}

func (f *fakeClient) UpdateUniversity(ctx context.Context, id int64, req models.UpdateUniversityRequest) (models.University, error) {
	f.called("UpdateUniversity")
	f.LastUpdateUni = req
	if f.UpdateUniErr != nil {
		return models.University{}, f.UpdateUniErr
	}
	return models.University{ID: id, Name: req.Name, City: req.City}, nil
}

func (f *fakeClient) DeleteUniversity(ctx context.Context, id int64) error {
	f.called("DeleteUniversity")
	f.LastDeletedUni = id
	return f.DeleteUniErr
}

func (f *fakeClient) ListReviews(ctx context.Context) ([]models.Review, error) {
	f.called("ListReviews")
	return f.AllReviewsRet, f.AllReviewsErr
}

func (f *fakeClient) ListUniversityReviews(ctx context.Context, universityID int64) ([]models.Review, error) {
	f.called("ListUniversityReviews")
	return f.ReviewsRet, f.ReviewsErr
}

func (f *fakeClient) AddReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error) {
	f.called("AddReview")
	f.LastReview = req
	if f.AddReviewErr != nil {
		return models.Review{}, f.AddReviewErr
	}
	return models.Review{ID: 1, UniversityID: req.UniversityID, Rating: req.Rating, Text: req.Text}, nil
}

func (f *fakeClient) DeleteReview(ctx context.Context, id int64) error {
	f.called("DeleteReview")
	f.LastDeletedReview = id
	return f.DeleteReviewErr
}

var _ client.Client = (*fakeClient)(nil)

// fakeGuard answers with a fixed user or error.
type fakeGuard struct {
	user     models.User
	userErr  error
	adminErr error
}

func (g fakeGuard) RequireUser() (models.User, error) {
	if g.userErr != nil {
		return models.User{}, g.userErr
	}
	return g.user, nil
}

func (g fakeGuard) RequireAdmin() (models.User, error) {
	if g.userErr != nil {
		return models.User{}, g.userErr
	}
	if g.adminErr != nil {
		return g.user, g.adminErr
	}
	return g.user, nil
}

func setupCache(t *testing.T) (*sql.DB, *universities.SQLiteRepository) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, universities.NewSQLiteRepository(db)
}
