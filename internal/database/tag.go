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
	"github.com/rmorlok/syncstore/internal/util"
)

const (
	TagsTable           = "tags"
	ConnectionTagsTable = "connection_tags"
)

var tagColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Tag is a workspace-scoped label that can be attached to connections.
type Tag struct {
	Id          uuid.UUID `json:"id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Tag) cols() []string {
	return []string{
		"id",
		"workspace_id",
		"name",
		"color",
		"created_at",
		"updated_at",
	}
}

func (t *Tag) fields() []any {
	return []any{
		&t.Id,
		&t.WorkspaceId,
		&t.Name,
		&t.Color,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}

func (t *Tag) values() []any {
	return []any{
		t.Id,
		t.WorkspaceId,
		t.Name,
		t.Color,
		t.CreatedAt,
		t.UpdatedAt,
	}
}

func (t *Tag) Validate() error {
	result := &multierror.Error{}

	if t.Id == uuid.Nil {
		result = multierror.Append(result, errors.New("tag id is required"))
	}

	if t.WorkspaceId == uuid.Nil {
		result = multierror.Append(result, errors.New("tag workspace id is required"))
	}

	if t.Name == "" {
		result = multierror.Append(result, errors.New("tag name is required"))
	}

	if !tagColorRegex.MatchString(t.Color) {
		result = multierror.Append(result, errors.Errorf("invalid tag color '%s'", t.Color))
	}

	return result.ErrorOrNil()
}

func (s *service) CreateTag(ctx context.Context, t *Tag) error {
	if t == nil {
		return errors.New("tag is required")
	}

	if err := t.Validate(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	existing, err := countRows(ctx, s.sq.
		Select("COUNT(*)").
		From(TagsTable).
		Where(sq.Eq{"workspace_id": t.WorkspaceId, "name": t.Name}).
		RunWith(s.db))
	if err != nil {
		return errors.Wrap(err, "failed to check for existing tag")
	}
	if existing > 0 {
		return errors.Wrapf(ErrDuplicate, "tag '%s' already exists in workspace", t.Name)
	}

	cpy := *t
	now := apctx.NowUTC(ctx)
	cpy.CreatedAt = now
	cpy.UpdatedAt = now

	result, err := s.sq.
		Insert(TagsTable).
		Columns(cpy.cols()...).
		Values(cpy.values()...).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create tag")
	}

	if err := checkAffected(result, "tag"); err != nil {
		return err
	}

	*t = cpy
	return nil
}

func (s *service) ListTagsForWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]Tag, error) {
	rows, err := s.sq.
		Select((&Tag{}).cols()...).
		From(TagsTable).
		Where(sq.Eq{"workspace_id": workspaceId}).
		OrderBy("name", "id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}
	defer rows.Close()

	var results []Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(t.fields()...); err != nil {
			return nil, errors.Wrap(err, "failed to scan tag")
		}
		results = append(results, t)
	}

	return results, rows.Err()
}

// AddTagsToConnection attaches tags to a connection. Tags already attached are left alone.
func (s *service) AddTagsToConnection(ctx context.Context, connectionId uuid.UUID, tagIds []uuid.UUID) error {
	if len(tagIds) == 0 {
		return nil
	}

	return s.transaction(ctx, func(tx *sql.Tx) error {
		now := apctx.NowUTC(ctx)
		for _, tagId := range tagIds {
			_, err := s.sq.
				Insert(ConnectionTagsTable).
				Columns("connection_id", "tag_id", "created_at").
				Values(connectionId, tagId, now).
				Suffix("ON CONFLICT (connection_id, tag_id) DO NOTHING").
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return errors.Wrapf(err, "failed to add tag '%s' to connection '%s'", tagId, connectionId)
			}
		}

		return nil
	})
}

func (s *service) RemoveTagFromConnection(ctx context.Context, connectionId uuid.UUID, tagId uuid.UUID) error {
	result, err := s.sq.
		Delete(ConnectionTagsTable).
		Where(sq.Eq{"connection_id": connectionId, "tag_id": tagId}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to remove tag from connection")
	}

	return checkAffected(result, "connection tag")
}

// getTagsForConnections loads the tags of every listed connection, keyed by connection id.
func (s *service) getTagsForConnections(ctx context.Context, runner sq.BaseRunner, connectionIds []uuid.UUID) (map[uuid.UUID][]Tag, error) {
	result := make(map[uuid.UUID][]Tag, len(connectionIds))
	if len(connectionIds) == 0 {
		return result, nil
	}

	rows, err := s.sq.
		Select(append([]string{"ct.connection_id"}, util.PrependAll("t.", (&Tag{}).cols())...)...).
		From(ConnectionTagsTable+" ct").
		Join(TagsTable+" t ON t.id = ct.tag_id").
		Where(sq.Eq{"ct.connection_id": connectionIds}).
		OrderBy("ct.connection_id", "t.name", "t.id").
		RunWith(runner).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load connection tags")
	}
	defer rows.Close()

	for rows.Next() {
		var connectionId uuid.UUID
		var t Tag
		if err := rows.Scan(append([]any{&connectionId}, t.fields()...)...); err != nil {
			return nil, errors.Wrap(err, "failed to scan connection tag")
		}
		result[connectionId] = append(result[connectionId], t)
	}

	return result, rows.Err()
}
