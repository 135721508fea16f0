package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/aplog"
	"github.com/rmorlok/syncstore/internal/apredis"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/database"
	"github.com/rmorlok/syncstore/internal/secrets"
)

// DependencyManager lazily builds the shared dependencies of a service from its configuration.
type DependencyManager struct {
	serviceId  string
	cfg        config.C
	logBuilder aplog.Builder
	logger     *slog.Logger
	r          apredis.Client
	db         database.DB
	hydrator   secrets.Hydrator
}

func NewDependencyManager(serviceId string, cfg config.C) *DependencyManager {
	return &DependencyManager{
		serviceId: serviceId,
		cfg:       cfg,
	}
}

func (dm *DependencyManager) GetConfig() config.C {
	return dm.cfg
}

func (dm *DependencyManager) GetConfigRoot() *config.Root {
	return dm.cfg.GetRoot()
}

func (dm *DependencyManager) GetServiceId() string {
	return dm.serviceId
}

func (dm *DependencyManager) GetLogBuilder() aplog.Builder {
	if dm.logBuilder == nil {
		dm.logBuilder = aplog.NewBuilder(dm.cfg.GetRootLogger())
	}

	return dm.logBuilder
}

func (dm *DependencyManager) GetLogger() *slog.Logger {
	if dm.logger == nil {
		dm.logger = dm.GetLogBuilder().WithService(dm.serviceId).Build()
	}

	return dm.logger
}

func (dm *DependencyManager) GetRedisClient() apredis.Client {
	if dm.r == nil {
		var err error
		dm.r, err = apredis.NewForRoot(context.Background(), dm.GetConfigRoot())
		if err != nil {
			panic(err)
		}
	}

	return dm.r
}

func (dm *DependencyManager) GetDatabase() database.DB {
	if dm.db == nil {
		var err error
		dm.db, err = database.NewConnectionForRoot(dm.GetConfigRoot(), dm.GetLogger())
		if err != nil {
			panic(err)
		}
	}

	return dm.db
}

func (dm *DependencyManager) GetSecretsHydrator() secrets.Hydrator {
	if dm.hydrator == nil {
		dm.hydrator = secrets.NewHydrator(dm.GetDatabase(), dm.GetLogger())
	}

	return dm.hydrator
}

// MigrateDatabase migrates the database while holding the migration lock in redis, so that only one process
// migrates at a time.
func (dm *DependencyManager) MigrateDatabase(ctx context.Context) error {
	lockFor := dm.GetConfigRoot().Database.GetAutoMigrationLockDuration()

	m := apredis.NewMutex(
		dm.GetRedisClient(),
		database.MigrateMutexKeyName,
		apredis.MutexOptionLockFor(lockFor),
		apredis.MutexOptionRetryFor(lockFor+1*time.Second),
		apredis.MutexOptionRetryExponentialBackoff(100*time.Millisecond, 5*time.Second),
		apredis.MutexOptionDetailedLockMetadata(),
	)

	if err := m.Lock(ctx); err != nil {
		return errors.Wrap(err, "failed to establish lock for database migration")
	}
	defer func() {
		if err := m.Unlock(context.Background()); err != nil {
			dm.GetLogger().Warn("failed to release database migration lock", "error", err)
		}
	}()

	return dm.GetDatabase().Migrate(ctx)
}

// AutoMigrateDatabase migrates the database if the configuration enables auto migration.
func (dm *DependencyManager) AutoMigrateDatabase(ctx context.Context) error {
	if !dm.GetConfigRoot().Database.GetAutoMigrate() {
		return nil
	}

	return dm.MigrateDatabase(ctx)
}

// Close releases the connections that have been opened.
func (dm *DependencyManager) Close() error {
	var err error

	if dm.db != nil {
		err = dm.db.Close()
	}

	if dm.r != nil {
		if rErr := dm.r.Close(); rErr != nil && err == nil {
			err = rErr
		}
	}

	return err
}
