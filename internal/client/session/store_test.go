package session

import (
	"context"
	"errors"
	"testing"

	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/client/repositories/metadata"
	"github.com/mathalama/review-universities/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *MetadataTokenStore {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMetadataTokenStore(metadata.NewSQLiteRepository(db))
}

func TestMetadataTokenStore_RoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	tok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.Save(ctx, "jwt-1"))
	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", tok)

	require.NoError(t, s.Save(ctx, "jwt-2"))
	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-2", tok)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

type brokenRepo struct{ err error }

func (b brokenRepo) Get(context.Context, string) ([]byte, error) { return nil, b.err }
func (b brokenRepo) Set(context.Context, string, []byte) error   { return b.err }
func (b brokenRepo) Delete(context.Context, string) error        { return b.err }
func (b brokenRepo) Clear(context.Context) error                 { return b.err }

func TestMetadataTokenStore_PropagatesRepoErrors(t *testing.T) {
	boom := errors.New("io error")
	s := NewMetadataTokenStore(brokenRepo{err: boom})
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Save(ctx, "x"), boom)
	require.ErrorIs(t, s.Clear(ctx), boom)
}

// The token outlives the in-memory session: a second manager over the same
// store restores the user.
func TestManager_WithSQLiteStore_SurvivesRestart(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	c := &fakeIdentity{meUser: models.User{ID: 5, Email: "b@uni.kz", Role: models.RoleUser}}

	first := NewManager(c, store, logging.NewNop())
	first.Initialize(ctx)
	require.NoError(t, first.Login(ctx, "persisted"))

	second := NewManager(c, store, logging.NewNop())
	second.Initialize(ctx)
	u, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(5), u.ID)

	second.Logout(ctx)
	third := NewManager(c, store, logging.NewNop())
	third.Initialize(ctx)
	assert.False(t, third.IsAuthenticated())
}

var _ client.TokenSource = (*MetadataTokenStore)(nil)
