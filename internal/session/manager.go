// Package session resolves which Staff record the current client acts as.
//
// The manager is a small state machine: unauthenticated until a persisted
// session restores, an auto-detect heuristic matches, an explicit login names
// a staff id, or an external identity assertion resolves. Sessions are
// snapshots: editing the underlying Staff record later does not change an
// already-issued session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/events"
	"github.com/govkit/governance-service/internal/storage"
	"github.com/govkit/governance-service/internal/store"
)

// Manager owns the current session and its persistence.
type Manager struct {
	store      *store.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	audience   string

	mu      sync.RWMutex
	current *domain.UserSession
}

// NewManager builds a session manager over the store's backend. A non-empty
// audience restricts identity logins to tokens issued for that client id.
func NewManager(st *store.Store, dispatcher events.Dispatcher, logger *zap.Logger, audience string) *Manager {
	return &Manager{store: st, dispatcher: dispatcher, logger: logger, audience: audience}
}

// Current returns the active session, if any.
func (m *Manager) Current() (domain.UserSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return domain.UserSession{}, false
	}
	return *m.current, true
}

// IsAdmin reports whether the active session has the Admin role.
func (m *Manager) IsAdmin() bool {
	current, ok := m.Current()
	return ok && current.IsAdmin()
}

// IsManager reports whether the active session has Manager or Admin role.
func (m *Manager) IsManager() bool {
	current, ok := m.Current()
	return ok && current.IsManager()
}

// Restore loads a previously persisted session. The restored record is not
// re-validated against the Staff collection; a stale session is still a
// session. Malformed persisted data reads as "no session".
func (m *Manager) Restore(ctx context.Context) (bool, error) {
	raw, err := m.store.Backend().Read(ctx, storage.KeySession)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var sess domain.UserSession
	if err := json.Unmarshal(raw, &sess); err != nil || sess.ID == "" {
		m.logger.Warn("persisted session is malformed, treating as absent")
		return false, nil
	}

	m.setCurrent(sess)
	return true, m.emit(ctx, sess, "App Opened", "User opened the application")
}

// AutoDetect tries the stored username hint first, then falls back to the
// first Admin-role staff entry. When neither matches the manager stays
// unauthenticated and the caller presents a manual chooser.
//
// An explicit logout leaves a marker that suppresses the admin fallback on
// the next start, so a logged-out user lands on the chooser instead of being
// re-authenticated. A stored hint is a standing instruction and still wins.
func (m *Manager) AutoDetect(ctx context.Context) (bool, error) {
	if hint, ok, err := m.usernameHint(ctx); err != nil {
		return false, err
	} else if ok {
		staff, found, err := m.store.Staff.MatchHint(ctx, hint)
		if err != nil {
			return false, err
		}
		if found {
			return true, m.establish(ctx, domain.SessionFromStaff(staff), "Auto-Login", "User auto-logged in based on stored hint")
		}
	}

	if out, err := m.loggedOut(ctx); err != nil {
		return false, err
	} else if out {
		return false, nil
	}

	admin, found, err := m.store.Staff.FirstAdmin(ctx)
	if err != nil || !found {
		return false, err
	}
	return true, m.establish(ctx, domain.SessionFromStaff(admin), "Auto-Login", "User auto-logged in based on credentials")
}

// Login establishes a session for the named staff id. An id that does not
// resolve leaves the current state untouched and reports ok=false.
func (m *Manager) Login(ctx context.Context, staffID string) (domain.UserSession, bool, error) {
	staff, found, err := m.store.Staff.Get(ctx, staffID)
	if err != nil {
		return domain.UserSession{}, false, err
	}
	if !found {
		return domain.UserSession{}, false, nil
	}
	sess := domain.SessionFromStaff(staff)
	return sess, true, m.establish(ctx, sess, "Login", "User logged in")
}

// LoginWithIdentity resolves an external identity assertion. A matching staff
// email (case-insensitive) logs that member in; an unmatched email produces a
// low-privilege session with a synthesized id. The raw credential is cached
// alongside the session and cleared again on logout.
func (m *Manager) LoginWithIdentity(ctx context.Context, credential string) (domain.UserSession, error) {
	claims, err := DecodeIdentityToken(credential, m.audience)
	if err != nil {
		return domain.UserSession{}, err
	}

	var sess domain.UserSession
	staff, found, err := m.store.Staff.FindByEmail(ctx, claims.Email)
	if err != nil {
		return domain.UserSession{}, err
	}
	if found {
		sess = domain.SessionFromStaff(staff)
	} else {
		name := claims.Name
		if name == "" {
			name, _, _ = strings.Cut(claims.Email, "@")
		}
		sess = domain.UserSession{
			ID:       "ext_" + uuid.NewString(),
			Name:     name,
			Email:    claims.Email,
			UserRole: domain.RoleUser,
		}
	}

	if err := m.store.Backend().Write(ctx, storage.KeyIdentityTok, []byte(credential)); err != nil {
		m.logger.Warn("could not cache identity token", zap.Error(err))
	}

	details := fmt.Sprintf("User logged in via external identity (%s)", claims.Email)
	return sess, m.establish(ctx, sess, "Google Login", details)
}

// Logout clears the session. The logout audit entry is written before the
// persisted record disappears, while a user is still attributable.
func (m *Manager) Logout(ctx context.Context) error {
	current, ok := m.Current()
	if ok {
		if err := m.emit(ctx, current, "Logout", "User logged out"); err != nil {
			m.logger.Warn("logout audit entry failed", zap.Error(err))
		}
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Backend().Write(ctx, storage.KeyLoggedOut, []byte("1")); err != nil {
		m.logger.Warn("could not record logout marker", zap.Error(err))
	}

	if err := m.store.Backend().Delete(ctx, storage.KeySession); err != nil {
		return err
	}
	return m.store.Backend().Delete(ctx, storage.KeyIdentityTok)
}

// SetUsernameHint stores the manual hint used by AutoDetect.
func (m *Manager) SetUsernameHint(ctx context.Context, hint string) error {
	return m.store.Backend().Write(ctx, storage.KeyUsernameHint, []byte(hint))
}

func (m *Manager) usernameHint(ctx context.Context) (string, bool, error) {
	raw, err := m.store.Backend().Read(ctx, storage.KeyUsernameHint)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	hint := strings.TrimSpace(string(raw))
	return hint, hint != "", nil
}

func (m *Manager) loggedOut(ctx context.Context) (bool, error) {
	_, err := m.store.Backend().Read(ctx, storage.KeyLoggedOut)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// establish persists the session, makes it current, and emits the audit event.
func (m *Manager) establish(ctx context.Context, sess domain.UserSession, action, details string) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := m.store.Backend().Write(ctx, storage.KeySession, raw); err != nil {
		return err
	}
	if err := m.store.Backend().Delete(ctx, storage.KeyLoggedOut); err != nil {
		m.logger.Warn("could not clear logout marker", zap.Error(err))
	}
	m.setCurrent(sess)
	return m.emit(ctx, sess, action, details)
}

func (m *Manager) setCurrent(sess domain.UserSession) {
	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()
}

func (m *Manager) emit(ctx context.Context, sess domain.UserSession, action, details string) error {
	return m.dispatcher.Publish(ctx, events.Event{
		Type:       events.EventSessionChange,
		Actor:      events.Actor{UserID: sess.ID, UserName: sess.Name},
		EntityType: domain.EntityApp,
		Action:     action,
		Details:    details,
		Timestamp:  m.store.Now(),
	})
}
