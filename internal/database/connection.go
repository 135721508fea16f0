package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/apctx"
)

type ConnectionStatus string

const (
	ConnectionStatusActive     ConnectionStatus = "active"
	ConnectionStatusInactive   ConnectionStatus = "inactive"
	ConnectionStatusDeprecated ConnectionStatus = "deprecated"
)

func IsValidConnectionStatus[T string | ConnectionStatus](status T) bool {
	switch ConnectionStatus(status) {
	case ConnectionStatusActive,
		ConnectionStatusInactive,
		ConnectionStatusDeprecated:
		return true
	default:
		return false
	}
}

const ConnectionsTable = "connections"

// Connection syncs data from a source actor to a destination actor.
type Connection struct {
	Id            uuid.UUID
	Name          string
	SourceId      uuid.UUID
	DestinationId uuid.UUID
	Status        ConnectionStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Connection) cols() []string {
	return []string{
		"id",
		"name",
		"source_id",
		"destination_id",
		"status",
		"created_at",
		"updated_at",
	}
}

func (c *Connection) fields() []any {
	return []any{
		&c.Id,
		&c.Name,
		&c.SourceId,
		&c.DestinationId,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func (c *Connection) values() []any {
	return []any{
		c.Id,
		c.Name,
		c.SourceId,
		c.DestinationId,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	}
}

func (c *Connection) Validate() error {
	result := &multierror.Error{}

	if c.Id == uuid.Nil {
		result = multierror.Append(result, errors.New("connection id is required"))
	}

	if c.Name == "" {
		result = multierror.Append(result, errors.New("connection name is required"))
	}

	if c.SourceId == uuid.Nil {
		result = multierror.Append(result, errors.New("connection source id is required"))
	}

	if c.DestinationId == uuid.Nil {
		result = multierror.Append(result, errors.New("connection destination id is required"))
	}

	if !IsValidConnectionStatus(c.Status) {
		result = multierror.Append(result, errors.Errorf("invalid connection status '%s'", c.Status))
	}

	return result.ErrorOrNil()
}

func (s *service) CreateConnection(ctx context.Context, c *Connection) error {
	if c == nil {
		return errors.New("connection is required")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	src, err := s.GetActor(ctx, c.SourceId)
	if err != nil {
		return errors.Wrapf(err, "failed to load source '%s'", c.SourceId)
	}

	dst, err := s.GetActor(ctx, c.DestinationId)
	if err != nil {
		return errors.Wrapf(err, "failed to load destination '%s'", c.DestinationId)
	}

	if src.ActorType != ActorTypeSource {
		return errors.Wrapf(ErrInvalidArgument, "actor '%s' is not a source", src.Id)
	}

	if dst.ActorType != ActorTypeDestination {
		return errors.Wrapf(ErrInvalidArgument, "actor '%s' is not a destination", dst.Id)
	}

	if src.WorkspaceId != dst.WorkspaceId {
		return errors.Wrap(ErrInvalidArgument, "source and destination belong to different workspaces")
	}

	cpy := *c
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(ConnectionsTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create connection")
	}

	if err := checkAffected(result, "connection"); err != nil {
		return err
	}

	*c = cpy
	return nil
}

func (s *service) GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error) {
	var result Connection
	err := s.sq.
		Select(result.cols()...).
		From(ConnectionsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(result.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get connection")
	}

	return &result, nil
}

func (s *service) SetConnectionStatus(ctx context.Context, id uuid.UUID, status ConnectionStatus) error {
	if !IsValidConnectionStatus(status) {
		return errors.Wrapf(ErrInvalidArgument, "invalid connection status '%s'", status)
	}

	result, err := s.sq.
		Update(ConnectionsTable).
		Set("status", status).
		Set("updated_at", apctx.NowUTC(ctx)).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to update connection status")
	}

	return checkAffected(result, "connection")
}

// DeprecateConnection soft-deletes a connection. Deprecated connections are hidden from listings unless deleted
// rows are explicitly requested.
func (s *service) DeprecateConnection(ctx context.Context, id uuid.UUID) error {
	return s.SetConnectionStatus(ctx, id, ConnectionStatusDeprecated)
}

// DisableConnections sets every active connection in ids to inactive and returns the ids that changed.
func (s *service) DisableConnections(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var changed []uuid.UUID
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		rows, err := s.sq.
			Select("id").
			From(ConnectionsTable).
			Where(sq.Eq{"id": ids, "status": ConnectionStatusActive}).
			OrderBy("id").
			RunWith(tx).
			QueryContext(ctx)
		if err != nil {
			return err
		}

		for rows.Next() {
			var id uuid.UUID
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			changed = append(changed, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		if len(changed) == 0 {
			return nil
		}

		_, err = s.sq.
			Update(ConnectionsTable).
			Set("status", ConnectionStatusInactive).
			Set("updated_at", apctx.NowUTC(ctx)).
			Where(sq.Eq{"id": changed}).
			RunWith(tx).
			ExecContext(ctx)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to disable connections")
	}

	return changed, nil
}

// ListConnectionIdsForWorkspace returns the ids of every connection whose source lives in the workspace,
// regardless of status.
func (s *service) ListConnectionIdsForWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.sq.
		Select("c.id").
		From(ConnectionsTable + " c").
		Join(ActorsTable + " src ON src.id = c.source_id").
		Where(sq.Eq{"src.workspace_id": workspaceId}).
		OrderBy("c.id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connection ids")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan connection id")
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ListConnectionsByActor returns the connections that read from or write to the actor.
func (s *service) ListConnectionsByActor(ctx context.Context, actorId uuid.UUID, includeDeprecated bool) ([]Connection, error) {
	where := sq.And{sq.Or{sq.Eq{"source_id": actorId}, sq.Eq{"destination_id": actorId}}}
	if !includeDeprecated {
		where = append(where, sq.NotEq{"status": ConnectionStatusDeprecated})
	}

	rows, err := s.sq.
		Select((&Connection{}).cols()...).
		From(ConnectionsTable).
		Where(where).
		OrderBy("name", "id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections for actor")
	}
	defer rows.Close()

	var results []Connection
	for rows.Next() {
		var c Connection
		if err := rows.Scan(c.fields()...); err != nil {
			return nil, errors.Wrap(err, "failed to scan connection")
		}
		results = append(results, c)
	}

	return results, rows.Err()
}
