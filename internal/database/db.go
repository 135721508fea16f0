package database

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/config"
)

// NewConnectionForRoot creates a new database connection from the specified configuration. The type of the database
// returned will be determined by the configuration.
func NewConnectionForRoot(root *config.Root, logger *slog.Logger) (DB, error) {
	if root == nil || root.Database == nil || root.Database.InnerVal == nil {
		return nil, errors.New("database is not configured")
	}

	var secretKey config.KeyDataType
	if root.GlobalAESKey != nil {
		secretKey = root.GlobalAESKey
	}

	switch dbConfig := root.Database.InnerVal.(type) {
	case *config.DatabaseSqlite:
		return NewSqliteConnection(dbConfig, secretKey, logger)
	case *config.DatabasePostgres:
		return NewPostgresConnection(dbConfig, secretKey, logger)
	default:
		return nil, errors.Errorf("database provider '%s' not supported", root.Database.GetProvider())
	}
}

// NewSqliteConnection creates a new database connection to a SQLite database.
//
// Parameters:
// - dbConfig: the configuration for the SQLite database
// - secretKey: the AES key used to secure cursors
func NewSqliteConnection(dbConfig *config.DatabaseSqlite, secretKey config.KeyDataType, l *slog.Logger) (DB, error) {
	path, err := homedir.Expand(dbConfig.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand path; could not load sqlite database path '%s'", dbConfig.Path)
	}

	if _, err = os.Stat(path); err != nil {
		// Attempt to create file
		file, err := os.Create(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load sqlite database path '%s'; failed to create", dbConfig.Path)
		}
		_ = file.Close()
	}

	expanded := *dbConfig
	expanded.Path = path

	db, err := sql.Open(expanded.GetDriver(), expanded.GetDsn())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database '%s'", expanded.GetDsn())
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrapf(err, "failed to ping sqlite database '%s'", expanded.GetDsn())
	}

	return newService(&expanded, db, secretKey, l), nil
}

// NewPostgresConnection creates a new database connection to a Postgres database using the pgx driver.
func NewPostgresConnection(dbConfig *config.DatabasePostgres, secretKey config.KeyDataType, l *slog.Logger) (DB, error) {
	db, err := sql.Open(dbConfig.GetDriver(), dbConfig.GetDsn())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open postgres database '%s'", dbConfig.Database)
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrapf(err, "failed to ping postgres database '%s'", dbConfig.Database)
	}

	return newService(dbConfig, db, secretKey, l), nil
}

func newService(cfg config.DatabaseImpl, db *sql.DB, secretKey config.KeyDataType, l *slog.Logger) *service {
	return &service{
		cfg:       cfg,
		sq:        sq.StatementBuilder.PlaceholderFormat(cfg.GetPlaceholderFormat()),
		db:        db,
		secretKey: secretKey,
		logger:    l,
	}
}

type service struct {
	cfg       config.DatabaseImpl
	sq        sq.StatementBuilderType
	db        *sql.DB
	secretKey config.KeyDataType // the AES key used to secure cursors
	logger    *slog.Logger
}

func (s *service) Ping(ctx context.Context) bool {
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("failed to ping database", "error", err)
		return false
	}

	if _, err := s.db.ExecContext(ctx, "SELECT 1"); err != nil {
		s.logger.Error("failed to ping database with query", "error", err)
		return false
	}

	return true
}

func (s *service) Close() error {
	return s.db.Close()
}

var _ DB = (*service)(nil)
