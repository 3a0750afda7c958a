// Package session holds the authenticated client session: the bearer token
// and the user it belongs to. The pair is the single source of truth for
// "is somebody logged in" and is always written and cleared together.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/karimfs/skybook/internal/client/models"
	"github.com/karimfs/skybook/internal/client/storage"
	"github.com/karimfs/skybook/internal/dbx"
	"github.com/karimfs/skybook/internal/logging"
)

// Manager caches the current session in memory and mirrors it into durable
// storage so it survives restarts. It implements api.TokenStore.
//
// Invariant: token and user are set and cleared together. A stored token
// without a user (or vice versa) is treated as "not authenticated" and
// wiped on load.
type Manager struct {
	db  *sql.DB
	log logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewManager(db *sql.DB, log logging.Logger) *Manager {
	return &Manager{db: db, log: log.With("component", "session")}
}

func (m *Manager) store() storage.Store {
	return storage.NewSQLiteStore(m.db)
}

// Load rehydrates the session from durable storage. Stored credentials are
// trusted without a network round-trip; a revoked token is only discovered
// on the next failing request. Malformed or half-present data is cleared
// and treated as logged out.
func (m *Manager) Load(ctx context.Context) error {
	st := m.store()

	token, err := st.Get(ctx, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("failed to read stored token: %w", err)
	}
	userData, err := st.Get(ctx, storage.KeyUser)
	if err != nil {
		return fmt.Errorf("failed to read stored user: %w", err)
	}

	if len(token) == 0 || len(userData) == 0 {
		if len(token) != 0 || len(userData) != 0 {
			m.log.Warn(ctx, "orphaned session data found, clearing")
			return m.Clear(ctx)
		}
		return nil
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		m.log.Warn(ctx, "stored user is malformed, clearing session")
		return m.Clear(ctx)
	}

	m.mu.Lock()
	m.token = string(token)
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Set persists a fresh session. Token and user are written in a single
// transaction; on any failure nothing is persisted or cached.
func (m *Manager) Set(ctx context.Context, auth *models.AuthResponse) error {
	userData, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteStore(tx)
		if err := st.Set(ctx, storage.KeyToken, []byte(auth.AccessToken)); err != nil {
			return err
		}
		return st.Set(ctx, storage.KeyUser, userData)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.token = auth.AccessToken
	user := auth.User
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Clear drops the session unconditionally, both cached and stored. It never
// leaves one half behind.
func (m *Manager) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteStore(tx)
		if err := st.Delete(ctx, storage.KeyToken); err != nil {
			return err
		}
		return st.Delete(ctx, storage.KeyUser)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	return nil
}

// UpdateUser replaces the cached and stored user after a profile edit. The
// token is left untouched.
func (m *Manager) UpdateUser(ctx context.Context, user models.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := m.store().Set(ctx, storage.KeyUser, userData); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Token returns the current bearer token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns a copy of the current user, or nil when logged out.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated is derived from the cached user, not the token, so an
// orphaned token never counts as a login.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// IsAdmin reports whether the current user carries the ADMIN role.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == models.RoleAdmin
}
