package authlog_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"theatre-booking/internal/authlog"
	"theatre-booking/internal/models"
)

func setupTestDB(t *testing.T) *authlog.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, bunDB.ResetModel(context.Background(), (*models.AuthLogEntry)(nil)))

	t.Cleanup(func() { bunDB.Close() })
	return &authlog.DB{Bun: bunDB}
}

func TestAppendAndRecent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, 1, "register", "127.0.0.1", "agent-a"))
	require.NoError(t, store.Append(ctx, 1, "login", "127.0.0.1", "agent-a"))
	require.NoError(t, store.Append(ctx, 2, "login", "10.0.0.2", "agent-b"))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "login", entries[0].Action)
	assert.Equal(t, int64(2), entries[0].UserID.Int64)
	assert.Equal(t, "register", entries[2].Action)

	limited, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestAppendWithoutActor(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, 0, "login", "127.0.0.1", "agent"))

	entries, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].UserID.Valid)
	assert.Equal(t, sql.NullInt64{}, entries[0].UserID)
	assert.WithinDuration(t, time.Now(), entries[0].CreatedAt, time.Minute)
}
