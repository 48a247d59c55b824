package session

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/taskflowhq/taskflow-cli/internal/client/localdb"
	"github.com/taskflowhq/taskflow-cli/internal/client/models"
	"github.com/taskflowhq/taskflow-cli/internal/client/repositories/metadata"
	"github.com/taskflowhq/taskflow-cli/internal/common"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := localdb.Open(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T, db *sql.DB) *Store {
	t.Helper()
	return NewStore(metadata.NewSQLiteRepository(db), logging.NewTextLogger(io.Discard, "error"))
}

func TestStore_SetAndIsAuthenticated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newTestDB(t))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Identity())

	id := &models.Identity{ID: 1, Name: "Alice", Email: "alice@example.org", Role: models.RoleManager}
	s.Set(ctx, id)

	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.Identity())
	assert.Equal(t, *id, *s.Identity())
}

func TestStore_IdentityReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newTestDB(t))
	s.Set(ctx, &models.Identity{ID: 1, Name: "Alice", Role: models.RoleAdmin})

	got := s.Identity()
	got.Name = "Mallory"

	assert.Equal(t, "Alice", s.Identity().Name)
}

func TestStore_RoundTripThroughRestart(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	first := newTestStore(t, db)
	id := &models.Identity{ID: 42, Name: "Bob", Email: "bob@example.org", Token: "tok", Role: models.RoleMember}
	first.Set(ctx, id)

	// simulated restart: a fresh store hydrating from the same database
	second := newTestStore(t, db)
	second.Load(ctx)

	require.NotNil(t, second.Identity())
	assert.Equal(t, *id, *second.Identity())
}

func TestStore_LogoutClearsDurableEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	first := newTestStore(t, db)
	first.Set(ctx, &models.Identity{ID: 1, Role: models.RoleAdmin})
	first.Logout(ctx)
	assert.False(t, first.IsAuthenticated())

	// logout when already logged out is a no-op
	first.Logout(ctx)

	second := newTestStore(t, db)
	second.Load(ctx)
	assert.False(t, second.IsAuthenticated())
}

func TestStore_CorruptEntryDiscarded(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := metadata.NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, common.IdentityStorageKey, []byte("{not json")))

	s := newTestStore(t, db)
	require.NotPanics(t, func() { s.Load(ctx) })
	assert.False(t, s.IsAuthenticated())

	// the corrupt entry has been removed
	data, err := repo.Get(ctx, common.IdentityStorageKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}

// makeUnsignedJWT builds a syntactically valid JWT with the given expiry and
// an empty signature, enough for an unverified claim parse.
func makeUnsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	enc := func(v any) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := enc(map[string]string{"alg": "none", "typ": "JWT"})
	claims := enc(map[string]any{"exp": exp.Unix(), "sub": "1"})
	return fmt.Sprintf("%s.%s.", header, claims)
}

func TestStore_TokenExpiry(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newTestDB(t))

	_, ok := s.TokenExpiry()
	assert.False(t, ok, "no identity means no expiry")

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s.Set(ctx, &models.Identity{ID: 1, Token: makeUnsignedJWT(t, exp), Role: models.RoleManager})

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())

	s.Set(ctx, &models.Identity{ID: 1, Token: "garbage", Role: models.RoleManager})
	_, ok = s.TokenExpiry()
	assert.False(t, ok)
}
