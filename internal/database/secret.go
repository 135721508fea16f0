package database

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/apctx"
)

const SecretsTable = "secrets"

// SecretCoordinatePrefix marks coordinates that are stored in the secrets table.
const SecretCoordinatePrefix = "syncstore_secret_"

func validateSecretCoordinate(coordinate string) error {
	if !strings.HasPrefix(coordinate, SecretCoordinatePrefix) || len(coordinate) == len(SecretCoordinatePrefix) {
		return errors.Wrapf(ErrInvalidArgument, "invalid secret coordinate '%s'", coordinate)
	}

	return nil
}

// WriteSecret stores a secret payload at a coordinate, replacing any existing value.
func (s *service) WriteSecret(ctx context.Context, coordinate string, payload string) error {
	if err := validateSecretCoordinate(coordinate); err != nil {
		return err
	}

	now := apctx.NowUTC(ctx)
	_, err := s.sq.
		Insert(SecretsTable).
		Columns("coordinate", "payload", "created_at", "updated_at").
		Values(coordinate, payload, now, now).
		Suffix("ON CONFLICT (coordinate) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to write secret")
	}

	return nil
}

func (s *service) ReadSecret(ctx context.Context, coordinate string) (string, error) {
	if err := validateSecretCoordinate(coordinate); err != nil {
		return "", err
	}

	var payload string
	err := s.sq.
		Select("payload").
		From(SecretsTable).
		Where(sq.Eq{"coordinate": coordinate}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}

		return "", errors.Wrap(err, "failed to read secret")
	}

	return payload, nil
}

func (s *service) DeleteSecret(ctx context.Context, coordinate string) error {
	if err := validateSecretCoordinate(coordinate); err != nil {
		return err
	}

	result, err := s.sq.
		Delete(SecretsTable).
		Where(sq.Eq{"coordinate": coordinate}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete secret")
	}

	return checkAffected(result, "secret")
}
