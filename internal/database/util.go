package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/sqlh"
)

// transaction runs fn inside a transaction, rolling back if fn returns an error or panics.
func (s *service) transaction(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("panic in transaction; rolling back", "panic", p)
			if err2 := tx.Rollback(); err2 != nil {
				s.logger.Error("error rolling back transaction after panic", "error", err2)
			}
			panic(p)
		} else if err != nil {
			s.logger.Error("error in transaction; rolling back", "error", err)
			if err2 := tx.Rollback(); err2 != nil {
				s.logger.Error("error rolling back transaction after error", "error", err2)
			}
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

// checkAffected turns an insert or update that touched no rows into an error.
func checkAffected(result sql.Result, what string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return errors.Wrapf(ErrNotFound, "no %s rows affected", what)
	}

	if affected > 1 {
		return errors.Wrapf(ErrViolation, "%d %s rows affected; expected one", affected, what)
	}

	return nil
}

// countRows runs a single-column count query. A query that returns no row counts as zero.
func countRows(ctx context.Context, b sq.SelectBuilder) (int64, error) {
	n, _, err := sqlh.ScanWithDefault[int64](b.QueryRowContext(ctx), 0)
	return n, err
}
