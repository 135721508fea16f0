package database

import (
	"context"
	"database/sql"
	"regexp"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/apctx"
)

const WorkspacesTable = "workspaces"

var workspaceSlugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Workspace struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Name           string
	Slug           string
	Tombstone      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (w *Workspace) cols() []string {
	return []string{
		"id",
		"organization_id",
		"name",
		"slug",
		"tombstone",
		"created_at",
		"updated_at",
	}
}

func (w *Workspace) fields() []any {
	return []any{
		&w.Id,
		&w.OrganizationId,
		&w.Name,
		&w.Slug,
		&w.Tombstone,
		&w.CreatedAt,
		&w.UpdatedAt,
	}
}

func (w *Workspace) values() []any {
	return []any{
		w.Id,
		w.OrganizationId,
		w.Name,
		w.Slug,
		w.Tombstone,
		w.CreatedAt,
		w.UpdatedAt,
	}
}

func (w *Workspace) Validate() error {
	result := &multierror.Error{}

	if w.Id == uuid.Nil {
		result = multierror.Append(result, errors.New("workspace id is required"))
	}

	if w.OrganizationId == uuid.Nil {
		result = multierror.Append(result, errors.New("workspace organization id is required"))
	}

	if w.Name == "" {
		result = multierror.Append(result, errors.New("workspace name is required"))
	}

	if !workspaceSlugRegex.MatchString(w.Slug) {
		result = multierror.Append(result, errors.Errorf("invalid workspace slug '%s'", w.Slug))
	}

	return result.ErrorOrNil()
}

func (s *service) CreateWorkspace(ctx context.Context, w *Workspace) error {
	if w == nil {
		return errors.New("workspace is required")
	}

	if err := w.Validate(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	cpy := *w
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(WorkspacesTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create workspace")
	}

	if err := checkAffected(result, "workspace"); err != nil {
		return err
	}

	*w = cpy
	return nil
}

func (s *service) GetWorkspace(ctx context.Context, id uuid.UUID) (*Workspace, error) {
	var result Workspace
	err := s.sq.
		Select(result.cols()...).
		From(WorkspacesTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(result.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get workspace")
	}

	return &result, nil
}
