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

const OrganizationsTable = "organizations"

type Organization struct {
	Id        uuid.UUID
	Name      string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Organization) cols() []string {
	return []string{
		"id",
		"name",
		"email",
		"created_at",
		"updated_at",
	}
}

func (o *Organization) fields() []any {
	return []any{
		&o.Id,
		&o.Name,
		&o.Email,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}

func (o *Organization) values() []any {
	return []any{
		o.Id,
		o.Name,
		o.Email,
		o.CreatedAt,
		o.UpdatedAt,
	}
}

func (o *Organization) Validate() error {
	result := &multierror.Error{}

	if o.Id == uuid.Nil {
		result = multierror.Append(result, errors.New("organization id is required"))
	}

	if o.Name == "" {
		result = multierror.Append(result, errors.New("organization name is required"))
	}

	return result.ErrorOrNil()
}

func (s *service) CreateOrganization(ctx context.Context, o *Organization) error {
	if o == nil {
		return errors.New("organization is required")
	}

	if err := o.Validate(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	cpy := *o
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(OrganizationsTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create organization")
	}

	if err := checkAffected(result, "organization"); err != nil {
		return err
	}

	*o = cpy
	return nil
}

func (s *service) GetOrganization(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var result Organization
	err := s.sq.
		Select(result.cols()...).
		From(OrganizationsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(result.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get organization")
	}

	return &result, nil
}
