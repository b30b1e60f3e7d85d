// Package audit keeps the append-only trail of user-attributed actions.
// Entries are immutable once written: there is no update or delete path, and
// every read derives its ordering from insertion order, newest first.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/storage"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// DefaultRecentLimit caps Recent when the caller passes no limit.
const DefaultRecentLimit = 100

// Log is the audit trail over one storage key.
type Log struct {
	backend storage.Backend
	mu      sync.Mutex
	now     func() time.Time
}

// NewLog builds an audit log over the given backend.
func NewLog(backend storage.Backend) *Log {
	return NewLogWithClock(backend, time.Now)
}

// NewLogWithClock builds an audit log with an injected clock for tests.
func NewLogWithClock(backend storage.Backend, now func() time.Time) *Log {
	return &Log{backend: backend, now: now}
}

// Append records one action. The entry id is the wall-clock milliseconds plus
// a random suffix, matching the stored format of existing trails.
func (l *Log) Append(ctx context.Context, userID, userName, action string, entityType domain.EntityType, entityID, details string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll(ctx)
	if err != nil {
		return err
	}

	ts := l.now()
	entries = append(entries, domain.AuditEntry{
		ID:         fmt.Sprintf("%d_%s", ts.UnixMilli(), uuid.NewString()[:8]),
		UserID:     userID,
		UserName:   userName,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  ts,
	})

	raw, err := json.Marshal(entries)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := l.backend.Write(ctx, storage.KeyAuditLogs, raw); err != nil {
		return apperrors.NewStorageUnreadable(storage.KeyAuditLogs, err)
	}
	return nil
}

// All returns every entry in insertion order.
func (l *Log) All(ctx context.Context) ([]domain.AuditEntry, error) {
	return l.readAll(ctx)
}

// Recent returns the last limit entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	entries, err := l.readAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return reversed(entries), nil
}

// ByUser returns all entries for a user, newest first.
func (l *Log) ByUser(ctx context.Context, userID string) ([]domain.AuditEntry, error) {
	entries, err := l.readAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			matched = append(matched, e)
		}
	}
	return reversed(matched), nil
}

// ByEntity returns all entries for a specific entity, newest first.
func (l *Log) ByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	entries, err := l.readAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if e.EntityType == entityType && e.EntityID == entityID {
			matched = append(matched, e)
		}
	}
	return reversed(matched), nil
}

// ActivityStats computes point-in-time counts over 7 and 30 day windows
// ending at the clock's current reading.
func (l *Log) ActivityStats(ctx context.Context) (domain.ActivityStats, error) {
	entries, err := l.readAll(ctx)
	if err != nil {
		return domain.ActivityStats{}, err
	}

	now := l.now()
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)
	thirtyDaysAgo := now.Add(-30 * 24 * time.Hour)

	users7 := make(map[string]struct{})
	users30 := make(map[string]struct{})
	stats := domain.ActivityStats{TotalActions: len(entries)}

	for _, e := range entries {
		if !e.Timestamp.Before(thirtyDaysAgo) {
			stats.ActionsLast30Days++
			users30[e.UserID] = struct{}{}
		}
		if !e.Timestamp.Before(sevenDaysAgo) {
			stats.ActionsLast7Days++
			users7[e.UserID] = struct{}{}
		}
	}
	stats.UniqueUsersLast7Days = len(users7)
	stats.UniqueUsersLast30Days = len(users30)
	return stats, nil
}

func (l *Log) readAll(ctx context.Context) ([]domain.AuditEntry, error) {
	raw, err := l.backend.Read(ctx, storage.KeyAuditLogs)
	if errors.Is(err, storage.ErrNotFound) {
		return []domain.AuditEntry{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageUnreadable(storage.KeyAuditLogs, err)
	}
	var entries []domain.AuditEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []domain.AuditEntry{}, nil
	}
	return entries, nil
}

func reversed(entries []domain.AuditEntry) []domain.AuditEntry {
	out := make([]domain.AuditEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
