package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "governance.json")

	f, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, f.Write(ctx, KeyStaff, []byte(`[{"id":"1"}]`)))
	require.NoError(t, f.Write(ctx, KeyUsernameHint, []byte("sarah johnson")))
	require.NoError(t, f.Close())

	// a second instance over the same path sees both values
	reopened, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)

	got, err := reopened.Read(ctx, KeyStaff)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)

	hint, err := reopened.Read(ctx, KeyUsernameHint)
	require.NoError(t, err)
	assert.Equal(t, []byte("sarah johnson"), hint)
}

func TestFileBackendMissingKey(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(filepath.Join(t.TempDir(), "governance.json"), zap.NewNop())
	require.NoError(t, err)

	_, err = f.Read(ctx, "never-written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackendDelete(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(filepath.Join(t.TempDir(), "governance.json"), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, f.Write(ctx, KeySession, []byte(`{"id":"1"}`)))
	require.NoError(t, f.Delete(ctx, KeySession))
	_, err = f.Read(ctx, KeySession)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again stays a no-op
	require.NoError(t, f.Delete(ctx, KeySession))
}

func TestFileBackendCorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "governance.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

	f, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)

	_, err = f.Read(ctx, KeyStaff)
	assert.ErrorIs(t, err, ErrNotFound)

	// the backend stays writable after starting empty
	require.NoError(t, f.Write(ctx, KeyStaff, []byte(`[]`)))
}
