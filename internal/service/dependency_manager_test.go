package service

import (
	"context"
	"testing"
	"time"

	"github.com/rmorlok/syncstore/internal/apredis"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/database"
	"github.com/stretchr/testify/require"
)

func newTestDependencyManager(t *testing.T) (*DependencyManager, apredis.Client) {
	t.Helper()

	cfg, _ := database.MustApplyBlankTestDbConfig(t, nil)
	cfg, r := apredis.MustApplyTestConfig(cfg)

	dm := NewDependencyManager("test", cfg)
	dm.r = r
	t.Cleanup(func() {
		if dm.db != nil {
			_ = dm.db.Close()
		}
	})

	return dm, r
}

func TestMigrateDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		dm, r := newTestDependencyManager(t)
		require.NoError(t, dm.MigrateDatabase(ctx))
		require.NoError(t, dm.MigrateDatabase(ctx))

		exists, err := r.Exists(ctx, database.MigrateMutexKeyName).Result()
		require.NoError(t, err)
		require.Zero(t, exists)
	})

	t.Run("waits for the lock", func(t *testing.T) {
		dm, r := newTestDependencyManager(t)

		held := apredis.NewMutex(r, database.MigrateMutexKeyName, apredis.MutexOptionLockFor(time.Minute), apredis.MutexOptionNoRetry())
		require.NoError(t, held.Lock(ctx))

		done := make(chan error, 1)
		go func() {
			done <- dm.MigrateDatabase(ctx)
		}()

		select {
		case err := <-done:
			t.Fatalf("migration finished while the lock was held: %v", err)
		case <-time.After(250 * time.Millisecond):
		}

		require.NoError(t, held.Unlock(ctx))

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("migration did not complete after the lock was released")
		}
	})

	t.Run("gives up when the context ends", func(t *testing.T) {
		dm, r := newTestDependencyManager(t)

		held := apredis.NewMutex(r, database.MigrateMutexKeyName, apredis.MutexOptionLockFor(time.Minute), apredis.MutexOptionNoRetry())
		require.NoError(t, held.Lock(ctx))
		defer held.Unlock(ctx)

		shortCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()
		require.Error(t, dm.MigrateDatabase(shortCtx))
	})
}

func TestAutoMigrateDatabase(t *testing.T) {
	ctx := context.Background()
	dm, _ := newTestDependencyManager(t)

	require.False(t, dm.GetConfigRoot().Database.GetAutoMigrate())
	require.NoError(t, dm.AutoMigrateDatabase(ctx))

	if sqlite, ok := dm.GetConfigRoot().Database.InnerVal.(*config.DatabaseSqlite); ok {
		sqlite.AutoMigrate = true
		require.True(t, dm.GetConfigRoot().Database.GetAutoMigrate())
		require.NoError(t, dm.AutoMigrateDatabase(ctx))
	}

	require.True(t, dm.GetDatabase().Ping(ctx))
}
