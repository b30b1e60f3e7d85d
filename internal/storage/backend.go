package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/govkit/governance-service/internal/config"
)

// ErrNotFound is returned by Read when a key has never been written. Callers
// treat it as "empty collection", not as a failure.
var ErrNotFound = errors.New("storage: key not found")

// Backend is the injected key/value layer every collection persists through.
// One key holds one serialized collection (or auxiliary record); there are no
// cross-key transactions and concurrent writers follow last-writer-wins.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Storage keys, one logical namespace per collection plus auxiliary records.
const (
	KeyStaff        = "gov_staff"
	KeyWorkstreams  = "gov_workstreams"
	KeyDeliverables = "gov_deliverables"
	KeyPTO          = "gov_pto"
	KeyHoursLogs    = "gov_hours_logs"
	KeyAuditLogs    = "gov_audit_logs"
	KeySession      = "currentUser"
	KeyUsernameHint = "gov_username_hint"
	KeyIdentityTok  = "gov_identity_token"
	KeyLoggedOut    = "gov_logged_out"
)

// Open builds the backend selected by configuration.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile:
		return NewFile(cfg.FilePath, logger)
	case config.DriverRedis:
		return NewRedis(cfg.Redis, logger), nil
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg.Postgres, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
