package mock

import (
	"fmt"

	"github.com/rmorlok/syncstore/internal/database"
)

// CursorPaginationMatcher matches a database.CursorPagination by its listing position. Empty fields match anything.
type CursorPaginationMatcher struct {
	ExpectedSortKey   database.SortKey
	ExpectedAscending *bool
	ExpectedPageSize  int
}

func (m CursorPaginationMatcher) Matches(x interface{}) bool {
	p, ok := x.(database.CursorPagination)
	if !ok {
		return false
	}

	if m.ExpectedPageSize != 0 && p.PageSize != m.ExpectedPageSize {
		return false
	}

	if m.ExpectedSortKey == "" && m.ExpectedAscending == nil {
		return true
	}

	if p.Cursor == nil {
		return false
	}

	if m.ExpectedSortKey != "" && p.Cursor.SortKey != m.ExpectedSortKey {
		return false
	}

	if m.ExpectedAscending != nil && p.Cursor.Ascending != *m.ExpectedAscending {
		return false
	}

	return true
}

func (m CursorPaginationMatcher) String() string {
	return fmt.Sprintf("is CursorPagination with SortKey=%q, Ascending=%v, PageSize=%d", m.ExpectedSortKey, m.ExpectedAscending, m.ExpectedPageSize)
}
