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

type ActorType string

const (
	ActorTypeSource      ActorType = "source"
	ActorTypeDestination ActorType = "destination"
)

func IsValidActorType[T string | ActorType](t T) bool {
	switch ActorType(t) {
	case ActorTypeSource, ActorTypeDestination:
		return true
	default:
		return false
	}
}

const ActorDefinitionsTable = "actor_definitions"

// ActorDefinition is a connector image that sources or destinations are created from.
type ActorDefinition struct {
	Id               uuid.UUID
	Name             string
	ActorType        ActorType
	DockerRepository string
	DockerImageTag   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ad *ActorDefinition) cols() []string {
	return []string{
		"id",
		"name",
		"actor_type",
		"docker_repository",
		"docker_image_tag",
		"created_at",
		"updated_at",
	}
}

func (ad *ActorDefinition) fields() []any {
	return []any{
		&ad.Id,
		&ad.Name,
		&ad.ActorType,
		&ad.DockerRepository,
		&ad.DockerImageTag,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	}
}

func (ad *ActorDefinition) values() []any {
	return []any{
		ad.Id,
		ad.Name,
		ad.ActorType,
		ad.DockerRepository,
		ad.DockerImageTag,
		ad.CreatedAt,
		ad.UpdatedAt,
	}
}

func (ad *ActorDefinition) Validate() error {
	result := &multierror.Error{}

	if ad.Id == uuid.Nil {
		result = multierror.Append(result, errors.New("actor definition id is required"))
	}

	if ad.Name == "" {
		result = multierror.Append(result, errors.New("actor definition name is required"))
	}

	if !IsValidActorType(ad.ActorType) {
		result = multierror.Append(result, errors.Errorf("invalid actor type '%s'", ad.ActorType))
	}

	if ad.DockerRepository == "" {
		result = multierror.Append(result, errors.New("actor definition docker repository is required"))
	}

	if ad.DockerImageTag == "" {
		result = multierror.Append(result, errors.New("actor definition docker image tag is required"))
	}

	return result.ErrorOrNil()
}

func (s *service) CreateActorDefinition(ctx context.Context, ad *ActorDefinition) error {
	if ad == nil {
		return errors.New("actor definition is required")
	}

	if err := ad.Validate(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	cpy := *ad
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(ActorDefinitionsTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create actor definition")
	}

	if err := checkAffected(result, "actor definition"); err != nil {
		return err
	}

	*ad = cpy
	return nil
}

func (s *service) GetActorDefinition(ctx context.Context, id uuid.UUID) (*ActorDefinition, error) {
	var result ActorDefinition
	err := s.sq.
		Select(result.cols()...).
		From(ActorDefinitionsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(result.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get actor definition")
	}

	return &result, nil
}
