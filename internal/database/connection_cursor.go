package database

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
)

// Cursor is the position of a connection listing. It carries the sort, the filters, and the sort-key value plus
// id of the last row already returned. Only the positional field of the active sort key is set.
type Cursor struct {
	SortKey         SortKey    `json:"sort_key"`
	Ascending       bool       `json:"ascending"`
	ConnectionName  *string    `json:"connection_name,omitempty"`
	SourceName      *string    `json:"source_name,omitempty"`
	DestinationName *string    `json:"destination_name,omitempty"`
	LastSync        *time.Time `json:"last_sync,omitempty"`
	CursorId        *uuid.UUID `json:"cursor_id,omitempty"`
	Filters         *Filters   `json:"filters,omitempty"`
}

// CursorPagination is a cursor plus the number of rows to return from it.
type CursorPagination struct {
	Cursor   *Cursor `json:"cursor,omitempty"`
	PageSize int     `json:"page_size,omitempty"`
}

// LastSyncEpochSeconds is the anchor's last sync time in seconds since the epoch, or nil if the anchor never
// synced or the cursor is not positioned by last sync.
func (c *Cursor) LastSyncEpochSeconds() *int64 {
	if c == nil || c.LastSync == nil {
		return nil
	}

	secs := c.LastSync.Unix()
	return &secs
}

func (c *Cursor) id() string {
	if c == nil || c.CursorId == nil {
		return "<none>"
	}
	return c.CursorId.String()
}

func copyFilters(filters *Filters) *Filters {
	if filters == nil {
		return nil
	}

	return deepcopy.Copy(filters).(*Filters)
}

// NewCursor starts a listing at the first page.
func NewCursor(sortKey SortKey, ascending bool, filters *Filters) *Cursor {
	return &Cursor{
		SortKey:   sortKey,
		Ascending: ascending,
		Filters:   copyFilters(filters),
	}
}

// NextCursor positions a listing immediately after row.
func NextCursor(row *ConnectionWithJobInfo, sortKey SortKey, ascending bool, filters *Filters) *Cursor {
	c := NewCursor(sortKey, ascending, filters)
	if row == nil {
		return c
	}

	id := row.Connection.Id
	c.CursorId = &id

	switch sortKey {
	case SortKeyConnectionName:
		name := row.Connection.Name
		c.ConnectionName = &name
	case SortKeySourceName:
		name := row.SourceName
		c.SourceName = &name
	case SortKeyDestinationName:
		name := row.DestinationName
		c.DestinationName = &name
	case SortKeyLastSync:
		if row.LatestJobCreatedAt != nil {
			t := row.LatestJobCreatedAt.UTC()
			c.LastSync = &t
		}
	}

	return c
}

// BuildCursorPagination builds the cursor for the page after the anchor connection. The anchor is re-read so the
// cursor reflects its current sort-key value; if it no longer exists the error wraps ErrNotFound and the listing
// must restart from the first page. An anchor outside workspaceId is treated as missing. A nil anchor starts at the
// first page.
func (s *service) BuildCursorPagination(
	ctx context.Context,
	workspaceId uuid.UUID,
	anchorId *uuid.UUID,
	sortKey SortKey,
	filters *Filters,
	ascending bool,
	pageSize int,
) (*CursorPagination, error) {
	if !IsValidSortKey(sortKey) {
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid sort key '%s' for cursor %s", sortKey, anchorIdString(anchorId))
	}

	if anchorId == nil {
		return &CursorPagination{
			Cursor:   NewCursor(sortKey, ascending, filters),
			PageSize: pageSize,
		}, nil
	}

	anchor, err := s.GetConnectionWithJobInfo(ctx, *anchorId)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load cursor anchor connection '%s'", anchorId)
	}

	if anchor.WorkspaceId != workspaceId {
		return nil, errors.Wrapf(ErrNotFound, "cursor anchor connection '%s' is not in workspace '%s'", anchorId, workspaceId)
	}

	return &CursorPagination{
		Cursor:   NextCursor(anchor, sortKey, ascending, filters),
		PageSize: pageSize,
	}, nil
}

func anchorIdString(id *uuid.UUID) string {
	if id == nil {
		return "<none>"
	}
	return id.String()
}

// buildCursorCondition builds the predicate that admits only rows after the cursor in listing order. A nil result
// means the cursor is at the first page.
func buildCursorCondition(c *Cursor) (sq.Sqlizer, error) {
	if c == nil || c.CursorId == nil {
		return nil, nil
	}

	id := *c.CursorId

	switch c.SortKey {
	case SortKeyConnectionName:
		if c.ConnectionName == nil {
			return nil, nil
		}
		return keysetBoundary(colConnectionName, lowerArg, *c.ConnectionName, id, c.Ascending), nil
	case SortKeySourceName:
		if c.SourceName == nil {
			return nil, nil
		}
		return keysetBoundary(colSourceName, lowerArg, *c.SourceName, id, c.Ascending), nil
	case SortKeyDestinationName:
		if c.DestinationName == nil {
			return nil, nil
		}
		return keysetBoundary(colDestinationName, lowerArg, *c.DestinationName, id, c.Ascending), nil
	case SortKeyLastSync:
		if c.Ascending {
			return buildCursorConditionLastSyncAsc(c.LastSync, id), nil
		}
		return buildCursorConditionLastSyncDesc(c.LastSync, id), nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid sort key '%s' for cursor %s", c.SortKey, c.id())
	}
}

// lowerArg case-folds a bound name the same way the name columns are folded.
const lowerArg = "LOWER(CAST(? AS TEXT))"

// keysetBoundary expands (expr, c.id) > (value, id) into a comparison that every supported database evaluates
// the same way. Descending uses <.
func keysetBoundary(expr, placeholder string, value interface{}, id uuid.UUID, ascending bool) sq.Sqlizer {
	op := ">"
	if !ascending {
		op = "<"
	}

	return sq.Or{
		sq.Expr(fmt.Sprintf("%s %s %s", expr, op, placeholder), value),
		sq.And{
			sq.Expr(fmt.Sprintf("%s = %s", expr, placeholder), value),
			sq.Expr(fmt.Sprintf("%s %s ?", colConnectionId, op), id),
		},
	}
}

// buildCursorConditionLastSyncDesc handles descending last sync, where never-synced rows trail every synced row.
// From a synced anchor, the remaining rows are older syncs, same-time syncs with a lower id, and every never-synced
// row. From a never-synced anchor only never-synced rows with a lower id remain.
func buildCursorConditionLastSyncDesc(lastSync *time.Time, id uuid.UUID) sq.Sqlizer {
	if lastSync == nil {
		return sq.And{
			sq.Expr(colLatestJobCreated + " IS NULL"),
			sq.Expr(colConnectionId+" < ?", id),
		}
	}

	t := lastSync.UTC()
	return sq.Or{
		sq.Expr(colLatestJobCreated+" < ?", t),
		sq.And{
			sq.Expr(colLatestJobCreated+" = ?", t),
			sq.Expr(colConnectionId+" < ?", id),
		},
		sq.Expr(colLatestJobCreated + " IS NULL"),
	}
}

// buildCursorConditionLastSyncAsc handles ascending last sync, where never-synced rows lead.
func buildCursorConditionLastSyncAsc(lastSync *time.Time, id uuid.UUID) sq.Sqlizer {
	if lastSync == nil {
		return sq.Or{
			sq.And{
				sq.Expr(colLatestJobCreated + " IS NULL"),
				sq.Expr(colConnectionId+" > ?", id),
			},
			sq.Expr(colLatestJobCreated + " IS NOT NULL"),
		}
	}

	return keysetBoundary(colLatestJobCreated, "?", lastSync.UTC(), id, true)
}
