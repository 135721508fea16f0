package database

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/util/pagination"
)

// SortKey is the logical field a connection listing is ordered by.
type SortKey string

const (
	SortKeyConnectionName  SortKey = "CONNECTION_NAME"
	SortKeySourceName      SortKey = "SOURCE_NAME"
	SortKeyDestinationName SortKey = "DESTINATION_NAME"
	SortKeyLastSync        SortKey = "LAST_SYNC"
)

func IsValidSortKey[T string | SortKey](k T) bool {
	switch SortKey(k) {
	case SortKeyConnectionName,
		SortKeySourceName,
		SortKeyDestinationName,
		SortKeyLastSync:
		return true
	default:
		return false
	}
}

// NullsOrder places nulls relative to non-null values in an ORDER BY term.
type NullsOrder string

const (
	NullsDefault NullsOrder = ""
	NullsFirst   NullsOrder = "NULLS FIRST"
	NullsLast    NullsOrder = "NULLS LAST"
)

// Column expressions over the connection listing FROM clause.
const (
	colConnectionId      = "c.id"
	colConnectionName    = "LOWER(c.name)"
	colSourceName        = "LOWER(src.name)"
	colDestinationName   = "LOWER(dst.name)"
	colLatestJobCreated  = "lj.created_at"
	colLatestJobStatus   = "lj.status"
	colConnectionStatus  = "c.status"
	colSourceWorkspaceId = "src.workspace_id"
)

// OrderField is one term of an ORDER BY clause.
type OrderField struct {
	Expr      string
	Direction pagination.OrderBy
	Nulls     NullsOrder
}

func (f OrderField) String() string {
	s := fmt.Sprintf("%s %s", f.Expr, f.Direction.String())
	if f.Nulls != NullsDefault {
		s += " " + string(f.Nulls)
	}
	return s
}

// ResolveConnectionOrder maps a sort key onto the ORDER BY terms for a connection listing. The connection id is
// always the last term, in the same direction as the key, so that the order is total.
//
// Never-synced connections sort as the oldest: first when ascending by last sync, last when descending.
func ResolveConnectionOrder(sortKey SortKey, ascending bool) ([]OrderField, error) {
	dir := pagination.OrderByFromAscending(ascending)

	var primary OrderField
	switch sortKey {
	case SortKeyConnectionName:
		primary = OrderField{Expr: colConnectionName, Direction: dir}
	case SortKeySourceName:
		primary = OrderField{Expr: colSourceName, Direction: dir}
	case SortKeyDestinationName:
		primary = OrderField{Expr: colDestinationName, Direction: dir}
	case SortKeyLastSync:
		nulls := NullsLast
		if ascending {
			nulls = NullsFirst
		}
		primary = OrderField{Expr: colLatestJobCreated, Direction: dir, Nulls: nulls}
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid sort key '%s'", sortKey)
	}

	return []OrderField{
		primary,
		{Expr: colConnectionId, Direction: dir},
	}, nil
}

func orderByClauses(fields []OrderField) []string {
	clauses := make([]string, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, f.String())
	}
	return clauses
}
