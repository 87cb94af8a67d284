package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestOpen(t *testing.T) {
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "index.db"), nil)
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestOpen_MissingDirFailsWithoutRetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.db")
	_, err := Open(context.Background(), path, nil)
	require.Error(t, err)
	require.False(t, isLocked(err))
}

func TestIsLocked(t *testing.T) {
	require.True(t, isLocked(fmt.Errorf("failed to open bolt db: %w", bbolt.ErrTimeout)))
	require.False(t, isLocked(fmt.Errorf("failed to open bolt db: %w", context.Canceled)))
}
