package database

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/apctx"
)

type AutoPropagationStatus string

const (
	AutoPropagationStatusIgnore             AutoPropagationStatus = "ignore"
	AutoPropagationStatusPropagateColumns   AutoPropagationStatus = "propagate_columns"
	AutoPropagationStatusPropagateFully     AutoPropagationStatus = "propagate_fully"
	AutoPropagationStatusDisableConnections AutoPropagationStatus = "disable"
)

type BackfillPreference string

const (
	BackfillPreferenceEnabled  BackfillPreference = "enabled"
	BackfillPreferenceDisabled BackfillPreference = "disabled"
)

const SchemaManagementTable = "schema_management"

// SchemaManagement holds how schema changes detected on a connection's source are applied. A connection has at
// most one row.
type SchemaManagement struct {
	Id                    uuid.UUID
	ConnectionId          uuid.UUID
	AutoPropagationStatus AutoPropagationStatus
	BackfillPreference    BackfillPreference
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (sm *SchemaManagement) cols() []string {
	return []string{
		"id",
		"connection_id",
		"auto_propagation_status",
		"backfill_preference",
		"created_at",
		"updated_at",
	}
}

func (sm *SchemaManagement) fields() []any {
	return []any{
		&sm.Id,
		&sm.ConnectionId,
		&sm.AutoPropagationStatus,
		&sm.BackfillPreference,
		&sm.CreatedAt,
		&sm.UpdatedAt,
	}
}

func (sm *SchemaManagement) values() []any {
	return []any{
		sm.Id,
		sm.ConnectionId,
		sm.AutoPropagationStatus,
		sm.BackfillPreference,
		sm.CreatedAt,
		sm.UpdatedAt,
	}
}

func (s *service) CreateSchemaManagement(ctx context.Context, sm *SchemaManagement) error {
	if sm == nil {
		return errors.New("schema management is required")
	}

	if sm.ConnectionId == uuid.Nil {
		return errors.Wrap(ErrInvalidArgument, "schema management connection id is required")
	}

	cpy := *sm
	if cpy.Id == uuid.Nil {
		cpy.Id = apctx.GetUuidGenerator(ctx).New()
	}
	if cpy.AutoPropagationStatus == "" {
		cpy.AutoPropagationStatus = AutoPropagationStatusIgnore
	}
	if cpy.BackfillPreference == "" {
		cpy.BackfillPreference = BackfillPreferenceDisabled
	}
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(SchemaManagementTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create schema management")
	}

	if err := checkAffected(result, "schema management"); err != nil {
		return err
	}

	*sm = cpy
	return nil
}

// GetSchemaManagement loads the schema management row of a connection. More than one row for the same connection
// is an integrity violation.
func (s *service) GetSchemaManagement(ctx context.Context, connectionId uuid.UUID) (*SchemaManagement, error) {
	rows, err := s.sq.
		Select((&SchemaManagement{}).cols()...).
		From(SchemaManagementTable).
		Where(sq.Eq{"connection_id": connectionId}).
		Limit(2).
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get schema management")
	}
	defer rows.Close()

	var results []SchemaManagement
	for rows.Next() {
		var sm SchemaManagement
		if err := rows.Scan(sm.fields()...); err != nil {
			return nil, errors.Wrap(err, "failed to scan schema management")
		}
		results = append(results, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to get schema management")
	}

	switch len(results) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &results[0], nil
	default:
		return nil, errors.Wrapf(ErrViolation, "multiple schema management rows for connection '%s'", connectionId)
	}
}
