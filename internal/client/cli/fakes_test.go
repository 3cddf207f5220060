package cli

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mathalama/review-universities/internal/client/config"
	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/client/services"
	"github.com/mathalama/review-universities/internal/client/session"
	"github.com/mathalama/review-universities/internal/logging"
)

// ------------ session ------------

type fakeSession struct {
	user      *models.User
	resolving bool

	initCalls   int
	logoutCalls int

	loginToken string
	loginUser  *models.User
	loginErr   error

	lastPatch *models.ProfilePatch
	updateErr error
}

func (f *fakeSession) Initialize(ctx context.Context) { f.initCalls++ }

func (f *fakeSession) Login(ctx context.Context, token string) error {
	f.loginToken = token
	if f.loginErr != nil {
		f.user = nil
		return f.loginErr
	}
	f.user = f.loginUser
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.logoutCalls++
	f.user = nil
}

func (f *fakeSession) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	f.lastPatch = &patch
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.user != nil {
		u := f.user.Apply(patch)
		f.user = &u
	}
	return nil
}

func (f *fakeSession) Snapshot() session.State {
	s := session.State{Resolving: f.resolving}
	if f.user != nil {
		s.User = *f.user
		s.Authenticated = true
	}
	return s
}

func (f *fakeSession) RequireUser() (models.User, error) {
	switch {
	case f.resolving:
		return models.User{}, session.ErrResolving
	case f.user == nil:
		return models.User{}, session.ErrNotAuthenticated
	}
	return *f.user, nil
}

func (f *fakeSession) RequireAdmin() (models.User, error) {
	u, err := f.RequireUser()
	if err != nil {
		return models.User{}, err
	}
	if !u.IsAdmin() {
		return u, session.ErrForbidden
	}
	return u, nil
}

// ------------ auth ------------

type fakeAuth struct {
	mu sync.Mutex

	token        string
	authErr      error
	lastEmail    string
	lastPassword string

	lastRegister models.RegisterRequest
	registerErr  error

	lastResend string
	resendErr  error

	lastForgot string
	forgotErr  error

	lastResetToken    string
	lastResetPassword string
	resetErr          error

	pings   int
	pingErr error
	closed  bool
}

func (f *fakeAuth) Authenticate(ctx context.Context, email, password string) (string, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.token, f.authErr
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) error {
	f.lastRegister = req
	return f.registerErr
}

func (f *fakeAuth) ResendVerification(ctx context.Context, email string) error {
	f.lastResend = email
	return f.resendErr
}

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) error {
	f.lastForgot = email
	return f.forgotErr
}

func (f *fakeAuth) ResetPassword(ctx context.Context, token, newPassword string) error {
	f.lastResetToken, f.lastResetPassword = token, newPassword
	return f.resetErr
}

func (f *fakeAuth) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeAuth) Close() error {
	f.closed = true
	return nil
}

// ------------ catalog ------------

type fakeCatalog struct {
	calls []string

	list    services.UniversityList
	listErr error

	uni       models.University
	uniCached bool
	uniErr    error

	reviews    []models.Review
	reviewsErr error

	lastCreate *models.CreateUniversityRequest
	createErr  error

	lastUpdateID int64
	lastUpdate   *models.UpdateUniversityRequest
	updateErr    error

	lastDeleteUni int64
	deleteUniErr  error

	lastReview *models.CreateReviewRequest
	addErr     error

	lastDeleteReview int64
	deleteReviewErr  error
}

func (f *fakeCatalog) ListUniversities(ctx context.Context) (services.UniversityList, error) {
	f.calls = append(f.calls, "ListUniversities")
	return f.list, f.listErr
}

func (f *fakeCatalog) GetUniversity(ctx context.Context, id int64) (models.University, bool, error) {
	f.calls = append(f.calls, "GetUniversity")
	return f.uni, f.uniCached, f.uniErr
}

func (f *fakeCatalog) CreateUniversity(ctx context.Context, req models.CreateUniversityRequest) (models.University, error) {
	f.calls = append(f.calls, "CreateUniversity")
	f.lastCreate = &req
	if f.createErr != nil {
		return models.University{}, f.createErr
	}
	return models.University{ID: 99, Name: req.Name, City: req.City, Country: req.Country}, nil
}

func (f *fakeCatalog) UpdateUniversity(ctx context.Context, id int64, req models.UpdateUniversityRequest) (models.University, error) {
	f.calls = append(f.calls, "UpdateUniversity")
	f.lastUpdateID, f.lastUpdate = id, &req
	if f.updateErr != nil {
		return models.University{}, f.updateErr
	}
	return models.University{ID: id, Name: req.Name}, nil
}

func (f *fakeCatalog) DeleteUniversity(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "DeleteUniversity")
	f.lastDeleteUni = id
	return f.deleteUniErr
}

func (f *fakeCatalog) ListReviews(ctx context.Context, universityID int64) ([]models.Review, error) {
	f.calls = append(f.calls, "ListReviews")
	return f.reviews, f.reviewsErr
}

func (f *fakeCatalog) AddReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error) {
	f.calls = append(f.calls, "AddReview")
	f.lastReview = &req
	if f.addErr != nil {
		return models.Review{}, f.addErr
	}
	return models.Review{ID: 5, Rating: req.Rating, Text: req.Text, Tags: req.Tags}, nil
}

func (f *fakeCatalog) DeleteReview(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "DeleteReview")
	f.lastDeleteReview = id
	return f.deleteReviewErr
}

// ------------ admin ------------

type fakeAdmin struct {
	users    []models.User
	usersErr error

	lastDeleteUser int64
	deleteUserErr  error
	deleteCalls    int

	reviews    []models.Review
	reviewsErr error
}

func (f *fakeAdmin) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeAdmin) DeleteUser(ctx context.Context, id int64) error {
	f.deleteCalls++
	f.lastDeleteUser = id
	return f.deleteUserErr
}

func (f *fakeAdmin) ListAllReviews(ctx context.Context) ([]models.Review, error) {
	return f.reviews, f.reviewsErr
}

// ------------ token store ------------

type memTokens struct {
	token string
	err   error
}

func (m *memTokens) Load(ctx context.Context) (string, error) { return m.token, m.err }
func (m *memTokens) Save(ctx context.Context, token string) error {
	m.token = token
	return m.err
}
func (m *memTokens) Clear(ctx context.Context) error {
	m.token = ""
	return m.err
}

// ------------ app ------------

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	app     *App
	out     *bytes.Buffer
	session *fakeSession
	auth    *fakeAuth
	catalog *fakeCatalog
	admin   *fakeAdmin
	tokens  *memTokens
	clock   *clockwork.FakeClock
}

// newTestEnv builds an App over fakes; lines are what the user types.
func newTestEnv(lines ...string) *testEnv {
	e := &testEnv{
		out:     &bytes.Buffer{},
		session: &fakeSession{},
		auth:    &fakeAuth{},
		catalog: &fakeCatalog{},
		admin:   &fakeAdmin{},
		tokens:  &memTokens{},
		clock:   clockwork.NewFakeClockAt(testNow),
	}
	e.app = &App{
		config:      &config.Config{OnlineCheckInterval: time.Second},
		log:         logging.NewNop(),
		tokens:      e.tokens,
		session:     e.session,
		authService: e.auth,
		catalog:     e.catalog,
		admin:       e.admin,
		clock:       e.clock,
		reader:      input(lines...),
		out:         e.out,
	}
	return e
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func userAnn() *models.User {
	return &models.User{ID: 1, Email: "ann@example.com", Firstname: "Ann", Lastname: "Lee", Role: models.RoleUser}
}

func adminBob() *models.User {
	return &models.User{ID: 2, Email: "bob@example.com", Firstname: "Bob", Lastname: "Stone", Role: models.RoleAdmin}
}
