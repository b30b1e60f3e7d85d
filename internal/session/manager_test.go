package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/govkit/governance-service/internal/audit"
	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/events"
	"github.com/govkit/governance-service/internal/storage"
	"github.com/govkit/governance-service/internal/store"
)

type fixture struct {
	backend  *storage.Memory
	store    *store.Store
	log      *audit.Log
	sessions *Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := storage.NewMemory()
	st := store.New(backend)
	dispatcher := events.NewInMemoryDispatcher()
	log := audit.NewLog(backend)
	audit.SubscribeRecorder(dispatcher, log)
	return &fixture{
		backend:  backend,
		store:    st,
		log:      log,
		sessions: NewManager(st, dispatcher, zap.NewNop(), ""),
	}
}

func (f *fixture) seedStaff(t *testing.T, members ...domain.Staff) {
	t.Helper()
	require.NoError(t, f.store.Staff.SetAll(context.Background(), members))
}

func lastAction(t *testing.T, log *audit.Log) domain.AuditEntry {
	t.Helper()
	entries, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0]
}

func TestLoginEstablishesSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t, domain.Staff{
		ID: "1", Name: "Sarah Johnson", Email: "sarah.j@company.com", UserRole: domain.RoleAdmin,
	})

	sess, ok, err := f.sessions.Login(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Sarah Johnson", sess.Name)
	assert.True(t, f.sessions.IsAdmin())

	entry := lastAction(t, f.log)
	assert.Equal(t, "Login", entry.Action)
	assert.Equal(t, "1", entry.UserID)

	// session is a snapshot: later staff edits do not leak in
	require.NoError(t, f.store.Staff.Update(ctx, "1", func(s *domain.Staff) {
		s.Name = "Renamed"
	}))
	current, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "Sarah Johnson", current.Name)
}

func TestLoginUnknownStaffLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, ok, err := f.sessions.Login(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	_, active := f.sessions.Current()
	assert.False(t, active)
}

func TestRestorePersistedSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	raw, err := json.Marshal(domain.UserSession{ID: "2", Name: "Michael Chen", UserRole: domain.RoleManager})
	require.NoError(t, err)
	require.NoError(t, f.backend.Write(ctx, storage.KeySession, raw))

	restored, err := f.sessions.Restore(ctx)
	require.NoError(t, err)
	require.True(t, restored)

	current, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "Michael Chen", current.Name)
	assert.True(t, f.sessions.IsManager())
	assert.False(t, f.sessions.IsAdmin())

	assert.Equal(t, "App Opened", lastAction(t, f.log).Action)
}

func TestRestoreMalformedSessionReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.backend.Write(ctx, storage.KeySession, []byte("{broken")))

	restored, err := f.sessions.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestAutoDetectPrefersHint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t,
		domain.Staff{ID: "1", Name: "Sarah Johnson", Email: "sarah.j@company.com", UserRole: domain.RoleAdmin},
		domain.Staff{ID: "3", Name: "Emma Wilson", Email: "emma.w@company.com", UserRole: domain.RoleUser},
	)
	require.NoError(t, f.sessions.SetUsernameHint(ctx, "emma.w"))

	detected, err := f.sessions.AutoDetect(ctx)
	require.NoError(t, err)
	require.True(t, detected)

	current, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "3", current.ID)
	assert.Equal(t, "Auto-Login", lastAction(t, f.log).Action)
}

func TestAutoDetectFallsBackToFirstAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t,
		domain.Staff{ID: "3", Name: "Emma Wilson", Email: "emma.w@company.com", UserRole: domain.RoleUser},
		domain.Staff{ID: "1", Name: "Sarah Johnson", Email: "sarah.j@company.com", UserRole: domain.RoleAdmin},
	)

	detected, err := f.sessions.AutoDetect(ctx)
	require.NoError(t, err)
	require.True(t, detected)

	current, _ := f.sessions.Current()
	assert.Equal(t, "1", current.ID)
}

func TestAutoDetectNoCandidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t, domain.Staff{ID: "3", Name: "Emma Wilson", UserRole: domain.RoleUser})

	detected, err := f.sessions.AutoDetect(ctx)
	require.NoError(t, err)
	assert.False(t, detected)
}

func TestLogoutClearsSessionAndRecordsFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t, domain.Staff{ID: "1", Name: "Sarah Johnson", UserRole: domain.RoleAdmin})

	_, ok, err := f.sessions.Login(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.sessions.Logout(ctx))

	_, active := f.sessions.Current()
	assert.False(t, active)

	entry := lastAction(t, f.log)
	assert.Equal(t, "Logout", entry.Action)
	assert.Equal(t, "1", entry.UserID)

	// persisted record is gone, so a fresh manager cannot restore
	fresh := NewManager(f.store, events.NewInMemoryDispatcher(), zap.NewNop(), "")
	restored, err := fresh.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestLogoutStaysLoggedOutAcrossRestart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t, domain.Staff{
		ID: "1", Name: "Sarah Johnson", Email: "sarah.j@company.com", UserRole: domain.RoleAdmin,
	})

	_, ok, err := f.sessions.Login(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, f.sessions.Logout(ctx))

	// next start: nothing restores and the admin fallback stays quiet
	fresh := NewManager(f.store, events.NewInMemoryDispatcher(), zap.NewNop(), "")
	restored, err := fresh.Restore(ctx)
	require.NoError(t, err)
	require.False(t, restored)

	detected, err := fresh.AutoDetect(ctx)
	require.NoError(t, err)
	assert.False(t, detected)

	_, active := fresh.Current()
	assert.False(t, active)

	// an explicit login lifts the suppression again
	_, ok, err = fresh.Login(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, f.backend.Delete(ctx, storage.KeySession))

	third := NewManager(f.store, events.NewInMemoryDispatcher(), zap.NewNop(), "")
	detected, err = third.AutoDetect(ctx)
	require.NoError(t, err)
	assert.True(t, detected)
}

func TestAutoDetectHintSurvivesLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t,
		domain.Staff{ID: "1", Name: "Sarah Johnson", Email: "sarah.j@company.com", UserRole: domain.RoleAdmin},
		domain.Staff{ID: "3", Name: "Emma Wilson", Email: "emma.w@company.com", UserRole: domain.RoleUser},
	)
	require.NoError(t, f.sessions.SetUsernameHint(ctx, "emma.w"))

	_, ok, err := f.sessions.Login(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, f.sessions.Logout(ctx))

	fresh := NewManager(f.store, events.NewInMemoryDispatcher(), zap.NewNop(), "")
	detected, err := fresh.AutoDetect(ctx)
	require.NoError(t, err)
	require.True(t, detected)

	current, ok := fresh.Current()
	require.True(t, ok)
	assert.Equal(t, "3", current.ID)
}

// unsignedToken builds a JWT-shaped credential without a real signature, the
// way an identity provider response looks before verification.
func unsignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func TestLoginWithIdentityMatchesStaffEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t, domain.Staff{
		ID: "2", Name: "Michael Chen", Email: "michael.c@company.com", UserRole: domain.RoleManager,
	})

	cred := unsignedToken(t, map[string]any{"email": "Michael.C@company.com", "name": "Michael Chen"})
	sess, err := f.sessions.LoginWithIdentity(ctx, cred)
	require.NoError(t, err)
	assert.Equal(t, "2", sess.ID)
	assert.Equal(t, domain.RoleManager, sess.UserRole)
	assert.Equal(t, "Google Login", lastAction(t, f.log).Action)
}

func TestLoginWithIdentityUnknownEmailIsGuest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cred := unsignedToken(t, map[string]any{"email": "guest@elsewhere.com"})
	sess, err := f.sessions.LoginWithIdentity(ctx, cred)
	require.NoError(t, err)
	assert.Contains(t, sess.ID, "ext_")
	assert.Equal(t, domain.RoleUser, sess.UserRole)
	assert.Equal(t, "guest", sess.Name)
}

func TestLoginWithIdentityRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.sessions.LoginWithIdentity(ctx, "not-a-token")
	require.Error(t, err)

	_, active := f.sessions.Current()
	assert.False(t, active)
}

func TestLoginWithIdentityChecksAudience(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedStaff(t, domain.Staff{
		ID: "2", Name: "Michael Chen", Email: "michael.c@company.com", UserRole: domain.RoleManager,
	})
	mgr := NewManager(f.store, events.NewInMemoryDispatcher(), zap.NewNop(), "client-123")

	_, err := mgr.LoginWithIdentity(ctx, unsignedToken(t, map[string]any{
		"email": "michael.c@company.com", "aud": "someone-else",
	}))
	require.Error(t, err)
	_, active := mgr.Current()
	assert.False(t, active)

	sess, err := mgr.LoginWithIdentity(ctx, unsignedToken(t, map[string]any{
		"email": "michael.c@company.com", "aud": "client-123",
	}))
	require.NoError(t, err)
	assert.Equal(t, "2", sess.ID)
}
