package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/karimfs/skybook/internal/client/models"
	"github.com/karimfs/skybook/internal/client/storage"
	"github.com/karimfs/skybook/internal/logging"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newManager(t *testing.T, db *sql.DB) *Manager {
	t.Helper()
	return NewManager(db, logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func testUser() models.User {
	return models.User{
		ID:        "u1",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleClient,
		IsActive:  true,
	}
}

func storedValue(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	v, err := storage.NewSQLiteStore(db).Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func TestManager_SetAndLoad(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	m := newManager(t, db)
	require.NoError(t, m.Set(ctx, &models.AuthResponse{AccessToken: "tok", User: testUser()}))

	require.Equal(t, "tok", m.Token())
	require.True(t, m.IsAuthenticated())

	// a fresh manager over the same storage rehydrates without the network
	m2 := newManager(t, db)
	require.NoError(t, m2.Load(ctx))
	require.Equal(t, "tok", m2.Token())
	require.True(t, m2.IsAuthenticated())
	require.Equal(t, "jane@example.com", m2.User().Email)
}

func TestManager_Load_OrphanedTokenClearsBoth(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	require.NoError(t, storage.NewSQLiteStore(db).Set(ctx, storage.KeyToken, []byte("lonely")))

	m := newManager(t, db)
	require.NoError(t, m.Load(ctx))

	require.False(t, m.IsAuthenticated())
	require.Equal(t, "", m.Token())
	require.Nil(t, storedValue(t, db, storage.KeyToken))
}

func TestManager_Load_OrphanedUserClearsBoth(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	userData, _ := json.Marshal(testUser())
	require.NoError(t, storage.NewSQLiteStore(db).Set(ctx, storage.KeyUser, userData))

	m := newManager(t, db)
	require.NoError(t, m.Load(ctx))

	require.False(t, m.IsAuthenticated())
	require.Nil(t, storedValue(t, db, storage.KeyUser))
}

func TestManager_Load_MalformedUserTreatedAsLoggedOut(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	st := storage.NewSQLiteStore(db)
	require.NoError(t, st.Set(ctx, storage.KeyToken, []byte("tok")))
	require.NoError(t, st.Set(ctx, storage.KeyUser, []byte("{not json")))

	m := newManager(t, db)
	require.NoError(t, m.Load(ctx))
	require.False(t, m.IsAuthenticated())
	require.Nil(t, storedValue(t, db, storage.KeyToken))
}

func TestManager_Clear_RemovesBothTogether(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	m := newManager(t, db)
	require.NoError(t, m.Set(ctx, &models.AuthResponse{AccessToken: "tok", User: testUser()}))
	require.NoError(t, m.Clear(ctx))

	require.False(t, m.IsAuthenticated())
	require.Equal(t, "", m.Token())
	require.Nil(t, storedValue(t, db, storage.KeyToken))
	require.Nil(t, storedValue(t, db, storage.KeyUser))
}

func TestManager_UpdateUser_KeepsToken(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	m := newManager(t, db)
	require.NoError(t, m.Set(ctx, &models.AuthResponse{AccessToken: "tok", User: testUser()}))

	updated := testUser()
	updated.FirstName = "Janet"
	require.NoError(t, m.UpdateUser(ctx, updated))

	require.Equal(t, "tok", m.Token())
	require.Equal(t, "Janet", m.User().FirstName)
	require.Equal(t, []byte("tok"), storedValue(t, db, storage.KeyToken))
}

func TestManager_IsAdmin(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	m := newManager(t, db)
	require.False(t, m.IsAdmin())

	admin := testUser()
	admin.Role = models.RoleAdmin
	require.NoError(t, m.Set(ctx, &models.AuthResponse{AccessToken: "tok", User: admin}))
	require.True(t, m.IsAdmin())
}
