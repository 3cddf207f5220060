package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/logging"
)

// IdentityClient is the part of the backend the manager talks to. The token
// is attached by the transport, not passed here.
type IdentityClient interface {
	Me(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error
}

// State is a consistent copy of the session at one instant.
type State struct {
	User          models.User
	Authenticated bool
	Resolving     bool
}

type Manager struct {
	client IdentityClient
	store  TokenStore
	log    logging.Logger

	mu        sync.RWMutex
	user      *models.User
	resolving bool

	initOnce sync.Once
	ready    chan struct{}
}

func NewManager(c IdentityClient, s TokenStore, l logging.Logger) *Manager {
	return &Manager{
		client:    c,
		store:     s,
		log:       l,
		resolving: true,
		ready:     make(chan struct{}),
	}
}

// Initialize hydrates the session from the token store. Only the first call
// does anything; it returns after the single resolution attempt finished.
func (m *Manager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		defer m.markResolved()

		token, err := m.store.Load(ctx)
		if err != nil {
			m.log.Warn(ctx, "token store unreadable, starting logged out", "error", err)
			return
		}
		if token == "" {
			m.log.Debug(ctx, "no stored token")
			return
		}

		u, err := m.client.Me(ctx)
		if err != nil {
			m.log.Warn(ctx, "stored token rejected, logging out", "error", err)
			if cerr := m.store.Clear(ctx); cerr != nil {
				m.log.Error(ctx, "failed to clear stored token", "error", cerr)
			}
			m.setUser(nil)
			return
		}

		m.setUser(&u)
		m.log.Info(ctx, "session restored", "user_id", u.ID, "role", u.Role)
	})
}

func (m *Manager) markResolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resolving {
		m.resolving = false
		close(m.ready)
	}
}

// Login persists token and resolves the user it belongs to. When the lookup
// fails the token stays stored, no user is set and the error is returned.
func (m *Manager) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := m.store.Save(ctx, token); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	u, err := m.client.Me(ctx)
	if err != nil {
		m.setUser(nil)
		m.log.Warn(ctx, "identity lookup after login failed", "error", err)
		return fmt.Errorf("login: %w", err)
	}

	m.setUser(&u)
	m.log.Info(ctx, "logged in", "user_id", u.ID, "role", u.Role)
	return nil
}

// Logout forgets the token and the user. Store failures are logged only.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored token", "error", err)
	}
	m.setUser(nil)
	m.log.Info(ctx, "logged out")
}

// UpdateProfile applies patch optimistically and confirms it with the
// backend. On failure the profile seen at the start of this call is restored
// and the error returned. Without a user it does nothing.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}
	previous := *m.user
	next := previous.Apply(patch)
	m.user = &next
	m.mu.Unlock()

	if err := m.client.UpdateProfile(ctx, patch); err != nil {
		m.mu.Lock()
		// a logout during the call wins over the rollback
		if m.user != nil {
			m.user = &previous
		}
		m.mu.Unlock()
		m.log.Warn(ctx, "profile update rejected, rolled back", "user_id", previous.ID, "error", err)
		return fmt.Errorf("update profile: %w", err)
	}

	m.log.Debug(ctx, "profile updated", "user_id", previous.ID)
	return nil
}

func (m *Manager) setUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
}

func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

func (m *Manager) IsResolving() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resolving
}

// Ready is closed once the initial resolution has finished.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := State{Resolving: m.resolving}
	if m.user != nil {
		s.User = *m.user
		s.Authenticated = true
	}
	return s
}

func (m *Manager) RequireUser() (models.User, error) {
	s := m.Snapshot()
	switch {
	case s.Resolving:
		return models.User{}, ErrResolving
	case !s.Authenticated:
		return models.User{}, ErrNotAuthenticated
	}
	return s.User, nil
}

func (m *Manager) RequireAdmin() (models.User, error) {
	u, err := m.RequireUser()
	if err != nil {
		return models.User{}, err
	}
	if !u.IsAdmin() {
		return u, ErrForbidden
	}
	return u, nil
}
