package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/apctx"
)

const ActorsTable = "actors"

// ActorConfiguration is the JSON configuration of a source or destination. Secret values are stored as
// coordinate references rather than inline.
type ActorConfiguration json.RawMessage

func (c *ActorConfiguration) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = nil
	case string:
		*c = ActorConfiguration(v)
	case []byte:
		*c = append(ActorConfiguration{}, v...)
	default:
		return errors.Errorf("cannot scan %T into ActorConfiguration", value)
	}

	return nil
}

func (c ActorConfiguration) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}

	return string(c), nil
}

func (c ActorConfiguration) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("{}"), nil
	}

	return []byte(c), nil
}

func (c *ActorConfiguration) UnmarshalJSON(data []byte) error {
	*c = append(ActorConfiguration{}, data...)
	return nil
}

func (c ActorConfiguration) Validate() error {
	if len(c) == 0 {
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(c, &obj); err != nil {
		return errors.Wrap(err, "actor configuration must be a JSON object")
	}

	return nil
}

// Actor is a configured source or destination within a workspace.
type Actor struct {
	Id                uuid.UUID
	WorkspaceId       uuid.UUID
	ActorDefinitionId uuid.UUID
	Name              string
	ActorType         ActorType
	Configuration     ActorConfiguration
	Tombstone         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (a *Actor) cols() []string {
	return []string{
		"id",
		"workspace_id",
		"actor_definition_id",
		"name",
		"actor_type",
		"configuration",
		"tombstone",
		"created_at",
		"updated_at",
	}
}

func (a *Actor) fields() []any {
	return []any{
		&a.Id,
		&a.WorkspaceId,
		&a.ActorDefinitionId,
		&a.Name,
		&a.ActorType,
		&a.Configuration,
		&a.Tombstone,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}

func (a *Actor) values() []any {
	return []any{
		a.Id,
		a.WorkspaceId,
		a.ActorDefinitionId,
		a.Name,
		a.ActorType,
		a.Configuration,
		a.Tombstone,
		a.CreatedAt,
		a.UpdatedAt,
	}
}

func (a *Actor) Validate() error {
	result := &multierror.Error{}

	if a.Id == uuid.Nil {
		result = multierror.Append(result, errors.New("actor id is required"))
	}

	if a.WorkspaceId == uuid.Nil {
		result = multierror.Append(result, errors.New("actor workspace id is required"))
	}

	if a.ActorDefinitionId == uuid.Nil {
		result = multierror.Append(result, errors.New("actor definition id is required"))
	}

	if a.Name == "" {
		result = multierror.Append(result, errors.New("actor name is required"))
	}

	if !IsValidActorType(a.ActorType) {
		result = multierror.Append(result, errors.Errorf("invalid actor type '%s'", a.ActorType))
	}

	if err := a.Configuration.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (s *service) CreateActor(ctx context.Context, a *Actor) error {
	if a == nil {
		return errors.New("actor is required")
	}

	if err := a.Validate(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	def, err := s.GetActorDefinition(ctx, a.ActorDefinitionId)
	if err != nil {
		return errors.Wrapf(err, "failed to load actor definition '%s'", a.ActorDefinitionId)
	}

	if def.ActorType != a.ActorType {
		return errors.Wrapf(ErrInvalidArgument, "actor type '%s' does not match definition type '%s'", a.ActorType, def.ActorType)
	}

	cpy := *a
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(ActorsTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create actor")
	}

	if err := checkAffected(result, "actor"); err != nil {
		return err
	}

	*a = cpy
	return nil
}

// GetActor loads an actor. Secret references in the configuration are returned as-is.
func (s *service) GetActor(ctx context.Context, id uuid.UUID) (*Actor, error) {
	var result Actor
	err := s.sq.
		Select(result.cols()...).
		From(ActorsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(result.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get actor")
	}

	return &result, nil
}

// ListActorsForWorkspace lists the actors of a workspace ordered by name, optionally restricted to one actor type.
func (s *service) ListActorsForWorkspace(ctx context.Context, workspaceId uuid.UUID, actorType *ActorType, includeTombstone bool) ([]Actor, error) {
	where := sq.And{sq.Eq{"workspace_id": workspaceId}}
	if actorType != nil {
		where = append(where, sq.Eq{"actor_type": *actorType})
	}
	if !includeTombstone {
		where = append(where, sq.Eq{"tombstone": false})
	}

	rows, err := s.sq.
		Select((&Actor{}).cols()...).
		From(ActorsTable).
		Where(where).
		OrderBy("name", "id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}
	defer rows.Close()

	var results []Actor
	for rows.Next() {
		var a Actor
		if err := rows.Scan(a.fields()...); err != nil {
			return nil, errors.Wrap(err, "failed to scan actor")
		}
		results = append(results, a)
	}

	return results, rows.Err()
}

// TombstoneActor marks an actor as deleted without removing the row.
func (s *service) TombstoneActor(ctx context.Context, id uuid.UUID) error {
	result, err := s.sq.
		Update(ActorsTable).
		Set("tombstone", true).
		Set("updated_at", apctx.NowUTC(ctx)).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to tombstone actor")
	}

	return checkAffected(result, "actor")
}
