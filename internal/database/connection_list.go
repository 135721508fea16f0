package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/sqlh"
	"github.com/rmorlok/syncstore/internal/util"
	"github.com/rmorlok/syncstore/internal/util/pagination"
)

// ConnectionWithJobInfo is a connection row of a listing, joined with its actors and its most recent sync job.
type ConnectionWithJobInfo struct {
	Connection              Connection
	WorkspaceId             uuid.UUID
	SourceName              string
	DestinationName         string
	SourceDefinitionId      uuid.UUID
	DestinationDefinitionId uuid.UUID
	LatestJobStatus         *JobStatus
	LatestJobCreatedAt      *time.Time
	Tags                    []Tag
}

// ConnectionPage is one page of a connection listing. Next is nil once the listing is exhausted.
type ConnectionPage struct {
	Connections []ConnectionWithJobInfo
	Next        *CursorPagination
}

var connectionWithJobInfoCols = append(
	util.PrependAll("c.", (&Connection{}).cols()),
	colSourceWorkspaceId,
	"src.name",
	"dst.name",
	"src.actor_definition_id",
	"dst.actor_definition_id",
	colLatestJobStatus,
	colLatestJobCreated,
)

type connectionWithJobInfoScan struct {
	row           ConnectionWithJobInfo
	latestCreated sqlh.NullTime
}

func (cs *connectionWithJobInfoScan) fields() []any {
	return append(
		cs.row.Connection.fields(),
		&cs.row.WorkspaceId,
		&cs.row.SourceName,
		&cs.row.DestinationName,
		&cs.row.SourceDefinitionId,
		&cs.row.DestinationDefinitionId,
		&cs.row.LatestJobStatus,
		&cs.latestCreated,
	)
}

func (cs *connectionWithJobInfoScan) result() ConnectionWithJobInfo {
	r := cs.row
	r.LatestJobCreatedAt = cs.latestCreated.Ptr()
	return r
}

func scanConnectionsWithJobInfo(rows *sql.Rows) ([]ConnectionWithJobInfo, error) {
	defer rows.Close()

	var results []ConnectionWithJobInfo
	for rows.Next() {
		var cs connectionWithJobInfoScan
		if err := rows.Scan(cs.fields()...); err != nil {
			return nil, errors.Wrap(err, "failed to scan connection")
		}
		results = append(results, cs.result())
	}

	return results, rows.Err()
}

// normalizePageSize applies the default page size to zero and caps oversized requests.
func normalizePageSize(pageSize int) (int, error) {
	if pageSize < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "invalid page size %d", pageSize)
	}

	if pageSize == 0 {
		return config.DefaultListPageSize, nil
	}

	return util.Clamp(pageSize, 1, config.MaxListPageSize), nil
}

// connectionListQuery builds the select for one page: filter and cursor boundary, listing order, page size limit.
func (s *service) connectionListQuery(query StandardSyncQuery, cursor *Cursor, pageSize int) (sq.SelectBuilder, error) {
	order, err := ResolveConnectionOrder(cursor.SortKey, cursor.Ascending)
	if err != nil {
		return sq.SelectBuilder{}, errors.Wrapf(err, "cannot resolve order for cursor %s", cursor.id())
	}

	boundary, err := buildCursorCondition(cursor)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	b := fromConnectionListing(s.sq.Select(connectionWithJobInfoCols...)).
		Where(buildConnectionFilterConditions(query, cursor.Filters))
	if boundary != nil {
		b = b.Where(boundary)
	}

	return b.
		OrderBy(orderByClauses(order)...).
		Limit(uint64(pageSize)), nil
}

// connectionCountQuery builds the count for the same filter as connectionListQuery, without boundary or order.
func (s *service) connectionCountQuery(query StandardSyncQuery, filters *Filters) sq.SelectBuilder {
	return fromConnectionListing(s.sq.Select("COUNT(*)")).
		Where(buildConnectionFilterConditions(query, filters))
}

// ListWorkspaceConnectionsCursorPaginated returns the page of connections after the cursor. A nil cursor starts at
// the first page ordered by connection name. The page and its tags are read in one transaction; nothing is held
// between pages, so concurrent changes can cause rows to be skipped or repeated across pages.
func (s *service) ListWorkspaceConnectionsCursorPaginated(ctx context.Context, query StandardSyncQuery, p CursorPagination) (*ConnectionPage, error) {
	cursor := p.Cursor
	if cursor == nil {
		cursor = NewCursor(SortKeyConnectionName, true, nil)
	}

	if err := cursor.Filters.Validate(); err != nil {
		return nil, err
	}

	pageSize, err := normalizePageSize(p.PageSize)
	if err != nil {
		return nil, err
	}

	q, err := s.connectionListQuery(query, cursor, pageSize)
	if err != nil {
		return nil, err
	}

	var results []ConnectionWithJobInfo
	err = s.transaction(ctx, func(tx *sql.Tx) error {
		rows, err := q.RunWith(tx).QueryContext(ctx)
		if err != nil {
			return err
		}

		results, err = scanConnectionsWithJobInfo(rows)
		if err != nil {
			return err
		}

		return s.hydrateTags(ctx, tx, results)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	page := &ConnectionPage{Connections: results}
	if len(results) > 0 {
		page.Next = &CursorPagination{
			Cursor:   NextCursor(&results[len(results)-1], cursor.SortKey, cursor.Ascending, cursor.Filters),
			PageSize: pageSize,
		}
	}

	return page, nil
}

// CountWorkspaceConnections counts every connection a full listing with the same query and filters would return.
func (s *service) CountWorkspaceConnections(ctx context.Context, query StandardSyncQuery, filters *Filters) (int, error) {
	if err := filters.Validate(); err != nil {
		return 0, err
	}

	n, err := countRows(ctx, s.connectionCountQuery(query, filters).RunWith(s.db))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count connections")
	}

	return int(n), nil
}

// EnumerateWorkspaceConnections pages through a listing from the given position, calling back once per non-empty
// page until the listing is exhausted, the callback asks to stop, or an error occurs.
func (s *service) EnumerateWorkspaceConnections(
	ctx context.Context,
	query StandardSyncQuery,
	p CursorPagination,
	callback func(pagination.PageResult[ConnectionWithJobInfo]) (keepGoing bool, err error),
) error {
	next := &p
	keepGoing := true

	for keepGoing && next != nil {
		page, err := s.ListWorkspaceConnectionsCursorPaginated(ctx, query, *next)
		if err != nil {
			return err
		}

		if len(page.Connections) == 0 {
			return nil
		}

		keepGoing, err = callback(pagination.PageResult[ConnectionWithJobInfo]{
			Results: page.Connections,
			HasMore: page.Next != nil,
		})
		if err != nil {
			return err
		}

		next = page.Next
	}

	return nil
}

// GetConnectionWithJobInfo loads a single connection as it would appear in a listing, regardless of status.
func (s *service) GetConnectionWithJobInfo(ctx context.Context, id uuid.UUID) (*ConnectionWithJobInfo, error) {
	var result *ConnectionWithJobInfo
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		rows, err := fromConnectionListing(s.sq.Select(connectionWithJobInfoCols...)).
			Where(sq.Eq{colConnectionId: id}).
			RunWith(tx).
			QueryContext(ctx)
		if err != nil {
			return err
		}

		results, err := scanConnectionsWithJobInfo(rows)
		if err != nil {
			return err
		}

		switch len(results) {
		case 0:
			return ErrNotFound
		case 1:
		default:
			return errors.Wrapf(ErrViolation, "connection '%s' matched %d listing rows", id, len(results))
		}

		if err := s.hydrateTags(ctx, tx, results); err != nil {
			return err
		}

		result = &results[0]
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "failed to get connection '%s'", id)
	}

	return result, nil
}

func (s *service) hydrateTags(ctx context.Context, runner sq.BaseRunner, rows []ConnectionWithJobInfo) error {
	if len(rows) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Connection.Id)
	}

	tags, err := s.getTagsForConnections(ctx, runner, ids)
	if err != nil {
		return err
	}

	for i := range rows {
		rows[i].Tags = tags[rows[i].Connection.Id]
	}

	return nil
}
